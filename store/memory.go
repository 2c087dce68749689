package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mww/roast_reporter/model"
)

// NewMemory returns the default in-process store. All operations are
// guarded by one mutex so schedule reads and history appends from
// concurrent triggers are linearizable relative to each other.
func NewMemory() Store {
	return &memoryStore{
		schedules: make(map[string]model.ScheduleConfig),
	}
}

type memoryStore struct {
	mu        sync.RWMutex
	schedules map[string]model.ScheduleConfig
	history   []model.NotificationHistory
}

func (m *memoryStore) SaveSchedule(_ context.Context, s *model.ScheduleConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[s.LeagueKey] = *s
	return nil
}

func (m *memoryStore) GetSchedule(_ context.Context, leagueKey string) (*model.ScheduleConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.schedules[leagueKey]
	if !ok {
		return nil, ErrScheduleNotFound
	}
	return &s, nil
}

func (m *memoryStore) DeleteSchedule(_ context.Context, leagueKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.schedules, leagueKey)
	return nil
}

func (m *memoryStore) ListSchedules(_ context.Context) ([]model.ScheduleConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.ScheduleConfig, 0, len(m.schedules))
	for _, s := range m.schedules {
		result = append(result, s)
	}
	// Map iteration order is random; keep the listing stable.
	sort.Slice(result, func(i, j int) bool {
		return result[i].LeagueKey < result[j].LeagueKey
	})
	return result, nil
}

func (m *memoryStore) AddHistory(_ context.Context, h *model.NotificationHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.history = append(m.history, *h)
	if len(m.history) > HistoryLimit {
		m.history = m.history[len(m.history)-HistoryLimit:]
	}
	return nil
}

func (m *memoryStore) UpdateHistory(_ context.Context, id string, status model.DeliveryStatus, errText string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.history {
		if m.history[i].ID == id {
			m.history[i].Status = status
			m.history[i].Error = errText
			return nil
		}
	}
	return nil
}

func (m *memoryStore) ListHistory(_ context.Context) ([]model.NotificationHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.NotificationHistory, len(m.history))
	copy(result, m.history)
	return result, nil
}

func (m *memoryStore) ListHistoryForLeague(_ context.Context, leagueKey string) ([]model.NotificationHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.NotificationHistory, 0, 8)
	for _, h := range m.history {
		if h.LeagueKey == leagueKey {
			result = append(result, h)
		}
	}
	return result, nil
}

func (m *memoryStore) ListHistorySince(_ context.Context, cutoff time.Time) ([]model.NotificationHistory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]model.NotificationHistory, 0, 8)
	for _, h := range m.history {
		if !h.SentAt.Before(cutoff) {
			result = append(result, h)
		}
	}
	return result, nil
}
