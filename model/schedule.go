package model

import "time"

type JobType string

const (
	JobWeeklyReport    JobType = "weekly-report"
	JobWaiverWireAlert JobType = "waiver-wire-alert"
)

type DeliveryStatus string

const (
	// StatusPending marks a claimed delivery whose send is still in
	// flight. A pending entry suppresses repeat sends for its week the
	// same way a finished one does.
	StatusPending DeliveryStatus = "pending"
	StatusSuccess DeliveryStatus = "success"
	StatusFailed  DeliveryStatus = "failed"
)

// ScheduleConfig is the per-league delivery configuration. Enabled is the
// master switch; WeeklyReports and WaiverWireAlerts are independent
// sub-toggles that only matter while Enabled is true.
type ScheduleConfig struct {
	LeagueKey        string `json:"leagueKey"`
	RecipientEmail   string `json:"recipientEmail"`
	Enabled          bool   `json:"enabled"`
	WeeklyReports    bool   `json:"weeklyReports"`
	WaiverWireAlerts bool   `json:"waiverWireAlerts"`
	Timezone         string `json:"timezone"`
}

// ScheduleUpdate is a partial-field merge for an existing schedule. Nil
// fields are left untouched.
type ScheduleUpdate struct {
	RecipientEmail   *string `json:"recipientEmail,omitempty"`
	Enabled          *bool   `json:"enabled,omitempty"`
	WeeklyReports    *bool   `json:"weeklyReports,omitempty"`
	WaiverWireAlerts *bool   `json:"waiverWireAlerts,omitempty"`
	Timezone         *string `json:"timezone,omitempty"`
}

func (s *ScheduleConfig) Apply(u ScheduleUpdate) {
	if u.RecipientEmail != nil {
		s.RecipientEmail = *u.RecipientEmail
	}
	if u.Enabled != nil {
		s.Enabled = *u.Enabled
	}
	if u.WeeklyReports != nil {
		s.WeeklyReports = *u.WeeklyReports
	}
	if u.WaiverWireAlerts != nil {
		s.WaiverWireAlerts = *u.WaiverWireAlerts
	}
	if u.Timezone != nil {
		s.Timezone = *u.Timezone
	}
}

// NotificationHistory is an immutable record of one delivery attempt,
// successful or not.
type NotificationHistory struct {
	ID        string         `json:"id"`
	Type      JobType        `json:"type"`
	LeagueKey string         `json:"leagueKey"`
	Week      int            `json:"week"`
	SentAt    time.Time      `json:"sentAt"`
	Status    DeliveryStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
}

// JobResult is the per-league outcome of one batch notification run.
type JobResult struct {
	LeagueKey string         `json:"leagueKey"`
	Week      int            `json:"week"`
	Status    DeliveryStatus `json:"status"`
	Error     string         `json:"error,omitempty"`
}
