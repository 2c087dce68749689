package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mww/roast_reporter/containers"
	"github.com/mww/roast_reporter/model"
)

var (
	// A test global store instance to use for all of the tests instead of setting up a new one each time.
	testStore Store

	// a counter to generate new league keys for each test. To help keep them separated.
	leagueCtr = int32(0)
)

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testStore, err = New(context.Background(), container.ConnectionString())
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func nextLeagueKey() string {
	return fmt.Sprintf("461.l.%d", atomic.AddInt32(&leagueCtr, 1))
}

func TestPostgres_scheduleSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()

	s := &model.ScheduleConfig{
		LeagueKey:        key,
		RecipientEmail:   "manager@example.com",
		Enabled:          true,
		WeeklyReports:    true,
		WaiverWireAlerts: false,
		Timezone:         "America/New_York",
	}
	if err := testStore.SaveSchedule(ctx, s); err != nil {
		t.Fatalf("error saving schedule: %v", err)
	}

	got, err := testStore.GetSchedule(ctx, key)
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if *got != *s {
		t.Errorf("expected %+v, got %+v", s, got)
	}
}

func TestPostgres_scheduleUpsert(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()

	s := &model.ScheduleConfig{
		LeagueKey:      key,
		RecipientEmail: "manager@example.com",
		Enabled:        true,
		WeeklyReports:  true,
		Timezone:       "America/New_York",
	}
	if err := testStore.SaveSchedule(ctx, s); err != nil {
		t.Fatalf("error saving schedule: %v", err)
	}

	s.RecipientEmail = "other@example.com"
	s.Enabled = false
	if err := testStore.SaveSchedule(ctx, s); err != nil {
		t.Fatalf("error updating schedule: %v", err)
	}

	got, err := testStore.GetSchedule(ctx, key)
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if got.RecipientEmail != "other@example.com" || got.Enabled {
		t.Errorf("upsert did not replace fields: %+v", got)
	}
}

func TestPostgres_scheduleNotFound(t *testing.T) {
	ctx := context.Background()

	if _, err := testStore.GetSchedule(ctx, "999.l.404"); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected not found error, got: %v", err)
	}

	// Deleting an unknown key must not error.
	if err := testStore.DeleteSchedule(ctx, "999.l.404"); err != nil {
		t.Errorf("unexpected error deleting unknown league: %v", err)
	}
}

func TestPostgres_scheduleDelete(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()

	s := &model.ScheduleConfig{LeagueKey: key, RecipientEmail: "manager@example.com"}
	if err := testStore.SaveSchedule(ctx, s); err != nil {
		t.Fatalf("error saving schedule: %v", err)
	}
	if err := testStore.DeleteSchedule(ctx, key); err != nil {
		t.Fatalf("error deleting schedule: %v", err)
	}
	if _, err := testStore.GetSchedule(ctx, key); !errors.Is(err, ErrScheduleNotFound) {
		t.Errorf("expected not found after delete, got: %v", err)
	}
}

func TestPostgres_history(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()
	base := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC)

	entries := []model.NotificationHistory{
		{ID: key + "-a", Type: model.JobWeeklyReport, LeagueKey: key, Week: 4, SentAt: base, Status: model.StatusSuccess},
		{ID: key + "-b", Type: model.JobWaiverWireAlert, LeagueKey: key, Week: 4, SentAt: base.Add(24 * time.Hour), Status: model.StatusFailed, Error: "smtp timeout"},
	}
	for i := range entries {
		if err := testStore.AddHistory(ctx, &entries[i]); err != nil {
			t.Fatalf("error adding history: %v", err)
		}
	}

	got, err := testStore.ListHistoryForLeague(ctx, key)
	if err != nil {
		t.Fatalf("error listing history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}

	if got[0].ID != key+"-a" || got[1].ID != key+"-b" {
		t.Errorf("entries out of insertion order: %+v", got)
	}
	if got[1].Status != model.StatusFailed || got[1].Error != "smtp timeout" {
		t.Errorf("failure fields not round-tripped: %+v", got[1])
	}
	if !got[0].SentAt.Equal(base) {
		t.Errorf("expected SentAt %v, got %v", base, got[0].SentAt)
	}
}

func TestPostgres_updateHistory(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()

	entry := model.NotificationHistory{
		ID: key + "-a", Type: model.JobWeeklyReport, LeagueKey: key, Week: 4,
		SentAt: time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC),
		Status: model.StatusPending,
	}
	if err := testStore.AddHistory(ctx, &entry); err != nil {
		t.Fatalf("error adding history: %v", err)
	}

	if err := testStore.UpdateHistory(ctx, key+"-a", model.StatusSuccess, ""); err != nil {
		t.Fatalf("error updating history: %v", err)
	}
	got, err := testStore.ListHistoryForLeague(ctx, key)
	if err != nil {
		t.Fatalf("error listing history: %v", err)
	}
	if len(got) != 1 || got[0].Status != model.StatusSuccess {
		t.Errorf("update not applied: %+v", got)
	}

	if err := testStore.UpdateHistory(ctx, "nope", model.StatusSuccess, ""); err != nil {
		t.Errorf("expected no error for unknown id: %v", err)
	}
}

func TestPostgres_historySince(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()
	// Far enough in the future to not collide with other tests' entries.
	base := time.Date(2030, time.January, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		h := &model.NotificationHistory{
			ID:        fmt.Sprintf("%s-since-%d", key, i),
			Type:      model.JobWeeklyReport,
			LeagueKey: key,
			Week:      i + 1,
			SentAt:    base.Add(time.Duration(i) * 24 * time.Hour),
			Status:    model.StatusSuccess,
		}
		if err := testStore.AddHistory(ctx, h); err != nil {
			t.Fatalf("error adding history: %v", err)
		}
	}

	got, err := testStore.ListHistorySince(ctx, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("error listing history: %v", err)
	}
	// Cutoff is inclusive, so the second and third entries qualify.
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Week != 2 || got[1].Week != 3 {
		t.Errorf("wrong entries: %+v", got)
	}
}

func TestPostgres_historyCap(t *testing.T) {
	ctx := context.Background()
	key := nextLeagueKey()
	base := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < HistoryLimit+5; i++ {
		h := &model.NotificationHistory{
			ID:        fmt.Sprintf("%s-cap-%d", key, i),
			Type:      model.JobWeeklyReport,
			LeagueKey: key,
			Week:      5,
			SentAt:    base.Add(time.Duration(i) * time.Minute),
			Status:    model.StatusSuccess,
		}
		if err := testStore.AddHistory(ctx, h); err != nil {
			t.Fatalf("error adding history: %v", err)
		}
	}

	all, err := testStore.ListHistory(ctx)
	if err != nil {
		t.Fatalf("error listing history: %v", err)
	}
	if len(all) != HistoryLimit {
		t.Fatalf("expected %d entries, got %d", HistoryLimit, len(all))
	}
	// The newest entry always survives the trim.
	last := all[len(all)-1]
	if last.ID != fmt.Sprintf("%s-cap-%d", key, HistoryLimit+4) {
		t.Errorf("expected newest entry last, got %s", last.ID)
	}
}
