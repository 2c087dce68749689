package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/mww/roast_reporter/analyzer"
	"github.com/mww/roast_reporter/model"
)

// AnalyzeWeek builds the weekly report for one league without sending
// anything. week <= 0 means the current week.
func (c *controller) AnalyzeWeek(ctx context.Context, leagueKey string, week int) (*model.WeeklyReport, error) {
	if leagueKey == "" {
		return nil, fmt.Errorf("leagueKey must be provided")
	}
	if week <= 0 {
		week = c.sched.CurrentWeek()
	}

	leagueName, err := c.yahoo.GetLeagueName(c.httpClient, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("error getting league name for %s: %w", leagueKey, err)
	}

	teams, err := c.yahoo.GetTeams(c.httpClient, leagueKey)
	if err != nil {
		return nil, fmt.Errorf("error getting teams for %s: %w", leagueKey, err)
	}

	matchups, err := c.yahoo.GetScoreboard(c.httpClient, leagueKey, week)
	if err != nil {
		return nil, fmt.Errorf("error getting scoreboard for %s week %d: %w", leagueKey, week, err)
	}

	a := analyzer.New(c.season)
	return a.AnalyzeWeek(matchups, teams, week, leagueName), nil
}

// RunWeeklyReports sends the weekly report to every enabled league that
// is still due one this week. Each league gets exactly one history entry
// per attempt, success or failure, and a failing league never stops the
// rest of the batch.
func (c *controller) RunWeeklyReports(ctx context.Context) ([]model.JobResult, error) {
	schedules, err := c.sched.EnabledSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}

	results := make([]model.JobResult, 0, len(schedules))
	for _, sc := range schedules {
		// Claim reserves this league's slot for the week, so a
		// concurrent trigger (the in-process timer and the external
		// cron route can overlap) never sends twice.
		claim, err := c.sched.Claim(ctx, model.JobWeeklyReport, sc.LeagueKey)
		if err != nil {
			return results, fmt.Errorf("error claiming weekly report for %s: %w", sc.LeagueKey, err)
		}
		if claim == nil {
			continue
		}

		result := model.JobResult{
			LeagueKey: sc.LeagueKey,
			Week:      claim.Week,
			Status:    model.StatusSuccess,
		}
		if err := c.sendWeeklyReport(ctx, sc, claim.Week); err != nil {
			log.Printf("weekly report for %s failed: %v", sc.LeagueKey, err)
			result.Status = model.StatusFailed
			result.Error = err.Error()
		}

		if err := c.sched.Resolve(ctx, claim.ID, result.Status, result.Error); err != nil {
			log.Printf("error recording weekly report result for %s: %v", sc.LeagueKey, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (c *controller) sendWeeklyReport(ctx context.Context, sc model.ScheduleConfig, week int) error {
	report, err := c.AnalyzeWeek(ctx, sc.LeagueKey, week)
	if err != nil {
		return err
	}
	return c.mailer.SendWeeklyReport(report, sc.RecipientEmail)
}
