package controller

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/roast_reporter/email"
	"github.com/mww/roast_reporter/model"
	"github.com/mww/roast_reporter/platforms/yahoo"
	"github.com/mww/roast_reporter/scheduler"
	"github.com/mww/roast_reporter/waiver"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Schedule management. UpdateSchedule and GetSchedule surface
	// scheduler.ErrScheduleNotFound-style absence so the web layer can
	// return a 404.
	AddSchedule(ctx context.Context, config *model.ScheduleConfig) error
	GetSchedule(ctx context.Context, leagueKey string) (*model.ScheduleConfig, error)
	UpdateSchedule(ctx context.Context, leagueKey string, u model.ScheduleUpdate) (*model.ScheduleConfig, error)
	RemoveSchedule(ctx context.Context, leagueKey string) error
	Status(ctx context.Context) (*Status, error)

	// History reads. leagueKey == "" means all leagues; days <= 0 means
	// no time filter.
	History(ctx context.Context, leagueKey string, days int) ([]model.NotificationHistory, error)

	// Manual triggers. These run the analysis but do not send anything
	// and do not touch delivery history.
	AnalyzeWeek(ctx context.Context, leagueKey string, week int) (*model.WeeklyReport, error)
	AnalyzeWaiverWire(ctx context.Context, leagueKey string, week int) ([]model.WaiverWireRecommendation, error)

	// Batch runs over every enabled league. One league's failure is
	// recorded and does not abort the rest.
	RunWeeklyReports(ctx context.Context) ([]model.JobResult, error)
	RunWaiverAlerts(ctx context.Context) ([]model.JobResult, error)

	RunPeriodicNotificationJobs(shutdown chan bool, wg *sync.WaitGroup)
}

// Status is the one-call overview the dashboard renders: configuration,
// recent activity, and when the next timed runs fire.
type Status struct {
	Schedules   []model.ScheduleConfig      `json:"schedules"`
	History     []model.NotificationHistory `json:"history"`
	NextRuns    NextRuns                    `json:"nextRuns"`
	CurrentWeek int                         `json:"currentWeek"`
}

type NextRuns struct {
	WeeklyReport    time.Time `json:"weeklyReport"`
	WaiverWireAlert time.Time `json:"waiverWireAlert"`
}

// statusHistoryDays is the trailing window shown in Status.
const statusHistoryDays = 30

type controller struct {
	clock      clock.Clock
	sched      *scheduler.Scheduler
	yahoo      *yahoo.Client
	httpClient *http.Client
	mailer     email.Sender
	candidates waiver.CandidateSource
	season     string
}

func New(clock clock.Clock, sched *scheduler.Scheduler, yahooClient *yahoo.Client, httpClient *http.Client, mailer email.Sender, candidates waiver.CandidateSource, season string) (C, error) {
	c := &controller{
		clock:      clock,
		sched:      sched,
		yahoo:      yahooClient,
		httpClient: httpClient,
		mailer:     mailer,
		candidates: candidates,
		season:     season,
	}
	return c, nil
}

func (c *controller) Status(ctx context.Context) (*Status, error) {
	schedules, err := c.sched.ListSchedules(ctx)
	if err != nil {
		return nil, err
	}
	history, err := c.sched.RecentHistory(ctx, statusHistoryDays)
	if err != nil {
		return nil, err
	}

	return &Status{
		Schedules: schedules,
		History:   history,
		NextRuns: NextRuns{
			WeeklyReport:    c.sched.NextRun(model.JobWeeklyReport),
			WaiverWireAlert: c.sched.NextRun(model.JobWaiverWireAlert),
		},
		CurrentWeek: c.sched.CurrentWeek(),
	}, nil
}

func (c *controller) History(ctx context.Context, leagueKey string, days int) ([]model.NotificationHistory, error) {
	if days <= 0 {
		if leagueKey != "" {
			return c.sched.HistoryForLeague(ctx, leagueKey)
		}
		return c.sched.History(ctx)
	}

	entries, err := c.sched.RecentHistory(ctx, days)
	if err != nil {
		return nil, err
	}
	if leagueKey == "" {
		return entries, nil
	}

	filtered := make([]model.NotificationHistory, 0, len(entries))
	for _, h := range entries {
		if h.LeagueKey == leagueKey {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}
