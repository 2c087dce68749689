package store

import (
	"context"
	"errors"
	"time"

	"github.com/mww/roast_reporter/model"
)

// HistoryLimit is the global cap on retained notification history. The
// cap is not partitioned by league: once the total passes the limit the
// oldest entries are dropped regardless of which league they belong to.
const HistoryLimit = 100

var ErrScheduleNotFound = errors.New("schedule not found")

// Store persists schedule configuration and notification history. The
// scheduler works against this interface so the in-memory default and a
// durable implementation are interchangeable.
type Store interface {
	// SaveSchedule inserts or replaces the schedule for its league key.
	SaveSchedule(ctx context.Context, s *model.ScheduleConfig) error
	GetSchedule(ctx context.Context, leagueKey string) (*model.ScheduleConfig, error)
	// DeleteSchedule is a no-op for an unknown league key.
	DeleteSchedule(ctx context.Context, leagueKey string) error
	ListSchedules(ctx context.Context) ([]model.ScheduleConfig, error)

	// AddHistory appends one delivery record and evicts the oldest
	// entries beyond HistoryLimit.
	AddHistory(ctx context.Context, h *model.NotificationHistory) error
	// UpdateHistory sets the status and error text of an existing entry.
	// Updating an unknown id is a no-op.
	UpdateHistory(ctx context.Context, id string, status model.DeliveryStatus, errText string) error
	ListHistory(ctx context.Context) ([]model.NotificationHistory, error)
	ListHistoryForLeague(ctx context.Context, leagueKey string) ([]model.NotificationHistory, error)
	// ListHistorySince returns entries sent at or after the cutoff.
	ListHistorySince(ctx context.Context, cutoff time.Time) ([]model.NotificationHistory, error)
}
