package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/mww/roast_reporter/model"
)

func (c *controller) AddSchedule(ctx context.Context, config *model.ScheduleConfig) error {
	config.LeagueKey = strings.TrimSpace(config.LeagueKey)
	if config.LeagueKey == "" {
		return fmt.Errorf("leagueKey must be provided")
	}

	config.RecipientEmail = strings.TrimSpace(config.RecipientEmail)
	if config.RecipientEmail == "" {
		return fmt.Errorf("recipientEmail must be provided")
	}

	if config.Timezone == "" {
		config.Timezone = "America/New_York"
	}

	return c.sched.AddSchedule(ctx, config)
}

func (c *controller) GetSchedule(ctx context.Context, leagueKey string) (*model.ScheduleConfig, error) {
	return c.sched.GetSchedule(ctx, leagueKey)
}

// UpdateSchedule merges the set fields into an existing schedule and
// returns the result. Unlike the scheduler's own no-op semantics, this
// returns the store's not-found error for an unknown key so the web
// layer can signal it.
func (c *controller) UpdateSchedule(ctx context.Context, leagueKey string, u model.ScheduleUpdate) (*model.ScheduleConfig, error) {
	if _, err := c.sched.GetSchedule(ctx, leagueKey); err != nil {
		return nil, err
	}

	if err := c.sched.UpdateSchedule(ctx, leagueKey, u); err != nil {
		return nil, err
	}

	return c.sched.GetSchedule(ctx, leagueKey)
}

func (c *controller) RemoveSchedule(ctx context.Context, leagueKey string) error {
	return c.sched.RemoveSchedule(ctx, leagueKey)
}
