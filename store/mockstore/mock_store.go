package mockstore

import (
	"context"
	"time"

	"github.com/mww/roast_reporter/model"
	"github.com/stretchr/testify/mock"
)

type Store struct {
	mock.Mock
}

func (s *Store) SaveSchedule(ctx context.Context, sc *model.ScheduleConfig) error {
	args := s.Called(ctx, sc)
	return args.Error(0)
}

func (s *Store) GetSchedule(ctx context.Context, leagueKey string) (*model.ScheduleConfig, error) {
	args := s.Called(ctx, leagueKey)

	var sc *model.ScheduleConfig
	if args.Get(0) != nil {
		sc = args.Get(0).(*model.ScheduleConfig)
	}
	return sc, args.Error(1)
}

func (s *Store) DeleteSchedule(ctx context.Context, leagueKey string) error {
	args := s.Called(ctx, leagueKey)
	return args.Error(0)
}

func (s *Store) ListSchedules(ctx context.Context) ([]model.ScheduleConfig, error) {
	args := s.Called(ctx)

	var r []model.ScheduleConfig
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ScheduleConfig)
	}
	return r, args.Error(1)
}

func (s *Store) AddHistory(ctx context.Context, h *model.NotificationHistory) error {
	args := s.Called(ctx, h)
	return args.Error(0)
}

func (s *Store) UpdateHistory(ctx context.Context, id string, status model.DeliveryStatus, errText string) error {
	args := s.Called(ctx, id, status, errText)
	return args.Error(0)
}

func (s *Store) ListHistory(ctx context.Context) ([]model.NotificationHistory, error) {
	args := s.Called(ctx)

	var r []model.NotificationHistory
	if args.Get(0) != nil {
		r = args.Get(0).([]model.NotificationHistory)
	}
	return r, args.Error(1)
}

func (s *Store) ListHistoryForLeague(ctx context.Context, leagueKey string) ([]model.NotificationHistory, error) {
	args := s.Called(ctx, leagueKey)

	var r []model.NotificationHistory
	if args.Get(0) != nil {
		r = args.Get(0).([]model.NotificationHistory)
	}
	return r, args.Error(1)
}

func (s *Store) ListHistorySince(ctx context.Context, cutoff time.Time) ([]model.NotificationHistory, error) {
	args := s.Called(ctx, cutoff)

	var r []model.NotificationHistory
	if args.Get(0) != nil {
		r = args.Get(0).([]model.NotificationHistory)
	}
	return r, args.Error(1)
}
