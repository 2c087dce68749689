// Package scheduler owns per-league delivery configuration and history:
// it decides whether a league is due a notification and when the next
// timed run should fire. It performs no I/O of its own beyond the
// injected store.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/roast_reporter/model"
	"github.com/mww/roast_reporter/store"
)

// DefaultSeasonStart approximates the NFL season kickoff used to derive
// the current week. It ignores bye weeks and playoff scheduling; callers
// that need a different anchor pass their own date to New.
var DefaultSeasonStart = time.Date(2025, time.September, 4, 0, 0, 0, 0, time.UTC)

const (
	lastWeek = 18

	weeklyReportDay  = time.Tuesday
	weeklyReportHour = 10
	waiverAlertDay   = time.Wednesday
	waiverAlertHour  = 8
)

// Scheduler is constructed once at process start and shared by every
// trigger. The mutex serializes Claim's eligibility-check / history-append
// pair so two concurrent triggers cannot both claim the same league, job,
// and week.
type Scheduler struct {
	mu          sync.Mutex
	clock       clock.Clock
	store       store.Store
	seasonStart time.Time
}

func New(clock clock.Clock, store store.Store, seasonStart time.Time) *Scheduler {
	return &Scheduler{
		clock:       clock,
		store:       store,
		seasonStart: seasonStart,
	}
}

func (s *Scheduler) AddSchedule(ctx context.Context, config *model.ScheduleConfig) error {
	if config.LeagueKey == "" {
		return errors.New("leagueKey must be provided")
	}
	if config.RecipientEmail == "" {
		return errors.New("recipientEmail must be provided")
	}
	return s.store.SaveSchedule(ctx, config)
}

func (s *Scheduler) GetSchedule(ctx context.Context, leagueKey string) (*model.ScheduleConfig, error) {
	return s.store.GetSchedule(ctx, leagueKey)
}

// UpdateSchedule merges the set fields of u into an existing schedule.
// Updating an unknown league key is a no-op; callers that need to signal
// "not found" should use GetSchedule first.
func (s *Scheduler) UpdateSchedule(ctx context.Context, leagueKey string, u model.ScheduleUpdate) error {
	existing, err := s.store.GetSchedule(ctx, leagueKey)
	if err != nil {
		if errors.Is(err, store.ErrScheduleNotFound) {
			return nil
		}
		return err
	}

	existing.Apply(u)
	return s.store.SaveSchedule(ctx, existing)
}

func (s *Scheduler) RemoveSchedule(ctx context.Context, leagueKey string) error {
	return s.store.DeleteSchedule(ctx, leagueKey)
}

func (s *Scheduler) ListSchedules(ctx context.Context) ([]model.ScheduleConfig, error) {
	return s.store.ListSchedules(ctx)
}

func (s *Scheduler) EnabledSchedules(ctx context.Context) ([]model.ScheduleConfig, error) {
	all, err := s.store.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}

	enabled := make([]model.ScheduleConfig, 0, len(all))
	for _, sc := range all {
		if sc.Enabled {
			enabled = append(enabled, sc)
		}
	}
	return enabled, nil
}

// ShouldSend reports whether a notification attempt is due: the schedule
// must exist, be enabled, have the matching sub-toggle on, and have no
// history entry - pending, successful, or failed - for this league, job
// type, and current week. A failed attempt therefore still suppresses
// retries until the week advances.
//
// ShouldSend is a read-only query and makes no reservation: a trigger
// that intends to send must use Claim instead, which holds the lock
// across the check and the history append.
func (s *Scheduler) ShouldSend(ctx context.Context, jobType model.JobType, leagueKey string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due, _, err := s.dueLocked(ctx, jobType, leagueKey)
	return due, err
}

// Claim atomically checks eligibility and, when due, appends a pending
// history entry before releasing the lock. The returned entry is the
// caller's reservation: exactly one of any set of concurrent claimants
// for the same league, job, and week gets a non-nil entry. The caller
// finishes the attempt with Resolve. A nil entry with a nil error means
// the league is not due.
func (s *Scheduler) Claim(ctx context.Context, jobType model.JobType, leagueKey string) (*model.NotificationHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due, week, err := s.dueLocked(ctx, jobType, leagueKey)
	if err != nil || !due {
		return nil, err
	}

	entry := s.newHistoryEntry(jobType, leagueKey, week, model.StatusPending, "")
	if err := s.store.AddHistory(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Resolve finalizes a claimed attempt with its outcome. The pending
// entry keeps suppressing repeat sends either way; Resolve only makes
// the recorded status truthful.
func (s *Scheduler) Resolve(ctx context.Context, claimID string, status model.DeliveryStatus, errText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.UpdateHistory(ctx, claimID, status, errText)
}

// dueLocked is the eligibility check. Callers must hold s.mu.
func (s *Scheduler) dueLocked(ctx context.Context, jobType model.JobType, leagueKey string) (bool, int, error) {
	schedule, err := s.store.GetSchedule(ctx, leagueKey)
	if err != nil {
		if errors.Is(err, store.ErrScheduleNotFound) {
			return false, 0, nil
		}
		return false, 0, err
	}

	if !schedule.Enabled {
		return false, 0, nil
	}
	switch jobType {
	case model.JobWeeklyReport:
		if !schedule.WeeklyReports {
			return false, 0, nil
		}
	case model.JobWaiverWireAlert:
		if !schedule.WaiverWireAlerts {
			return false, 0, nil
		}
	default:
		return false, 0, fmt.Errorf("unknown job type: %s", jobType)
	}

	week := s.CurrentWeek()
	history, err := s.store.ListHistoryForLeague(ctx, leagueKey)
	if err != nil {
		return false, 0, err
	}
	for _, h := range history {
		if h.Type == jobType && h.Week == week {
			return false, 0, nil
		}
	}
	return true, week, nil
}

// RecordResult appends one finished delivery attempt to the history,
// bypassing the claim flow. Failures are first-class entries so the
// weekly eligibility check only has to look for presence.
func (s *Scheduler) RecordResult(ctx context.Context, jobType model.JobType, leagueKey string, week int, status model.DeliveryStatus, errText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.AddHistory(ctx, s.newHistoryEntry(jobType, leagueKey, week, status, errText))
}

func (s *Scheduler) newHistoryEntry(jobType model.JobType, leagueKey string, week int, status model.DeliveryStatus, errText string) *model.NotificationHistory {
	now := s.clock.Now()
	return &model.NotificationHistory{
		ID:        fmt.Sprintf("%s-%s-%d-%d", jobType, leagueKey, week, now.UnixMilli()),
		Type:      jobType,
		LeagueKey: leagueKey,
		Week:      week,
		SentAt:    now,
		Status:    status,
		Error:     errText,
	}
}

func (s *Scheduler) History(ctx context.Context) ([]model.NotificationHistory, error) {
	return s.store.ListHistory(ctx)
}

func (s *Scheduler) HistoryForLeague(ctx context.Context, leagueKey string) ([]model.NotificationHistory, error) {
	return s.store.ListHistoryForLeague(ctx, leagueKey)
}

// RecentHistory returns entries from the trailing day window, inclusive
// of the lower bound.
func (s *Scheduler) RecentHistory(ctx context.Context, days int) ([]model.NotificationHistory, error) {
	cutoff := s.clock.Now().AddDate(0, 0, -days)
	return s.store.ListHistorySince(ctx, cutoff)
}

// CurrentWeek derives the week number from days elapsed since the season
// start, in 7-day buckets clamped to [1, 18]. This is an approximation:
// it knows nothing about bye weeks or schedule shifts.
func (s *Scheduler) CurrentWeek() int {
	elapsed := s.clock.Now().Sub(s.seasonStart)
	days := int(math.Ceil(math.Abs(elapsed.Hours()) / 24))

	week := (days + 6) / 7
	if week < 1 {
		return 1
	}
	if week > lastWeek {
		return lastWeek
	}
	return week
}

// NextRun computes the next future firing time for a job type:
// weekly reports go out Tuesday 10:00, waiver alerts Wednesday 08:00, in
// the clock's local time. If the target instant is now or in the past it
// rolls forward a week, so the result is always strictly in the future.
func (s *Scheduler) NextRun(jobType model.JobType) time.Time {
	day, hour := weeklyReportDay, weeklyReportHour
	if jobType == model.JobWaiverWireAlert {
		day, hour = waiverAlertDay, waiverAlertHour
	}

	now := s.clock.Now()
	offset := (int(day) - int(now.Weekday()) + 7) % 7
	next := time.Date(now.Year(), now.Month(), now.Day()+offset, hour, 0, 0, 0, now.Location())

	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
