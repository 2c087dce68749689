package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/mww/roast_reporter/model"
	"github.com/mww/roast_reporter/waiver"
)

// AnalyzeWaiverWire scores the current candidate pool against the
// league's available-player list without sending anything. week <= 0
// means the current week.
func (c *controller) AnalyzeWaiverWire(ctx context.Context, leagueKey string, week int) ([]model.WaiverWireRecommendation, error) {
	if leagueKey == "" {
		return nil, fmt.Errorf("leagueKey must be provided")
	}
	if week <= 0 {
		week = c.sched.CurrentWeek()
	}

	candidates, err := c.candidates(leagueKey, week)
	if err != nil {
		return nil, fmt.Errorf("error getting waiver candidates for %s: %w", leagueKey, err)
	}

	available, err := c.yahoo.GetAvailablePlayers(c.httpClient, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("error getting available players for %s: %w", leagueKey, err)
	}

	return waiver.Analyze(candidates, available, week), nil
}

// RunWaiverAlerts sends the waiver wire alert to every enabled league
// that is still due one this week. A league whose analysis turns up no
// recommendations still counts as a successful run.
func (c *controller) RunWaiverAlerts(ctx context.Context) ([]model.JobResult, error) {
	schedules, err := c.sched.EnabledSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	results := make([]model.JobResult, 0, len(schedules))
	for _, sc := range schedules {
		claim, err := c.sched.Claim(ctx, model.JobWaiverWireAlert, sc.LeagueKey)
		if err != nil {
			return results, fmt.Errorf("error claiming waiver alert for %s: %w", sc.LeagueKey, err)
		}
		if claim == nil {
			continue
		}

		result := model.JobResult{
			LeagueKey: sc.LeagueKey,
			Week:      claim.Week,
			Status:    model.StatusSuccess,
		}
		if err := c.sendWaiverAlert(ctx, sc, claim.Week); err != nil {
			log.Printf("waiver alert for %s failed: %v", sc.LeagueKey, err)
			result.Status = model.StatusFailed
			result.Error = err.Error()
		}

		if err := c.sched.Resolve(ctx, claim.ID, result.Status, result.Error); err != nil {
			log.Printf("error recording waiver alert result for %s: %v", sc.LeagueKey, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *controller) sendWaiverAlert(ctx context.Context, sc model.ScheduleConfig, week int) error {
	recs, err := c.AnalyzeWaiverWire(ctx, sc.LeagueKey, week)
	if err != nil {
		return err
	}

	leagueName, err := c.yahoo.GetLeagueName(c.httpClient, sc.LeagueKey)
	if err != nil {
		return fmt.Errorf("error getting league name for %s: %w", sc.LeagueKey, err)
	}

	return c.mailer.SendWaiverAlert(recs, leagueName, week, sc.RecipientEmail)
}
