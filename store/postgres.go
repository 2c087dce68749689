package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/roast_reporter/model"
)

// New connects to PostgreSQL and returns a durable Store. The schema is
// in schema/schema.sql.
func New(ctx context.Context, connString string) (Store, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresStore{pool: pool}, nil
}

type postgresStore struct {
	pool *pgxpool.Pool
}

func (db *postgresStore) SaveSchedule(ctx context.Context, s *model.ScheduleConfig) error {
	const query = `INSERT INTO schedules(league_key, recipient_email, enabled, weekly_reports, waiver_wire_alerts, timezone)
			VALUES (@leagueKey, @recipientEmail, @enabled, @weeklyReports, @waiverWireAlerts, @timezone)
			ON CONFLICT (league_key) DO UPDATE SET
				recipient_email=@recipientEmail,
				enabled=@enabled,
				weekly_reports=@weeklyReports,
				waiver_wire_alerts=@waiverWireAlerts,
				timezone=@timezone`

	args := pgx.NamedArgs{
		"leagueKey":        s.LeagueKey,
		"recipientEmail":   s.RecipientEmail,
		"enabled":          s.Enabled,
		"weeklyReports":    s.WeeklyReports,
		"waiverWireAlerts": s.WaiverWireAlerts,
		"timezone":         s.Timezone,
	}

	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving schedule for %s: %w", s.LeagueKey, err)
	}
	return nil
}

func (db *postgresStore) GetSchedule(ctx context.Context, leagueKey string) (*model.ScheduleConfig, error) {
	const query = `SELECT league_key, recipient_email, enabled, weekly_reports, waiver_wire_alerts, timezone
			FROM schedules WHERE league_key=$1`

	row := db.pool.QueryRow(ctx, query, leagueKey)
	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error getting schedule for %s: %w", leagueKey, err)
	}
	return s, nil
}

func (db *postgresStore) DeleteSchedule(ctx context.Context, leagueKey string) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM schedules WHERE league_key=$1`, leagueKey); err != nil {
		return fmt.Errorf("error deleting schedule for %s: %w", leagueKey, err)
	}
	return nil
}

func (db *postgresStore) ListSchedules(ctx context.Context) ([]model.ScheduleConfig, error) {
	const query = `SELECT league_key, recipient_email, enabled, weekly_reports, waiver_wire_alerts, timezone
			FROM schedules ORDER BY league_key`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing schedules: %w", err)
	}
	defer rows.Close()

	results := make([]model.ScheduleConfig, 0, 8)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *s)
	}
	return results, rows.Err()
}

func (db *postgresStore) AddHistory(ctx context.Context, h *model.NotificationHistory) error {
	const insert = `INSERT INTO notification_history(id, type, league_key, week, sent_at, status, error_msg)
			VALUES (@id, @type, @leagueKey, @week, @sentAt, @status, @errorMsg)`

	// Evict everything older than the newest HistoryLimit entries. The
	// seq column preserves insertion order even when timestamps collide.
	const trim = `DELETE FROM notification_history WHERE seq NOT IN
			(SELECT seq FROM notification_history ORDER BY seq DESC LIMIT $1)`

	args := pgx.NamedArgs{
		"id":        h.ID,
		"type":      string(h.Type),
		"leagueKey": h.LeagueKey,
		"week":      h.Week,
		"sentAt":    h.SentAt,
		"status":    string(h.Status),
		"errorMsg":  h.Error,
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting history transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insert, args); err != nil {
		return fmt.Errorf("error inserting history entry: %w", err)
	}
	if _, err := tx.Exec(ctx, trim, HistoryLimit); err != nil {
		return fmt.Errorf("error trimming history: %w", err)
	}

	return tx.Commit(ctx)
}

func (db *postgresStore) UpdateHistory(ctx context.Context, id string, status model.DeliveryStatus, errText string) error {
	const query = `UPDATE notification_history SET status=@status, error_msg=@errorMsg WHERE id=@id`

	args := pgx.NamedArgs{
		"id":       id,
		"status":   string(status),
		"errorMsg": errText,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error updating history entry %s: %w", id, err)
	}
	return nil
}

func (db *postgresStore) ListHistory(ctx context.Context) ([]model.NotificationHistory, error) {
	const query = `SELECT id, type, league_key, week, sent_at, status, error_msg
			FROM notification_history ORDER BY seq`
	return db.queryHistory(ctx, query)
}

func (db *postgresStore) ListHistoryForLeague(ctx context.Context, leagueKey string) ([]model.NotificationHistory, error) {
	const query = `SELECT id, type, league_key, week, sent_at, status, error_msg
			FROM notification_history WHERE league_key=$1 ORDER BY seq`
	return db.queryHistory(ctx, query, leagueKey)
}

func (db *postgresStore) ListHistorySince(ctx context.Context, cutoff time.Time) ([]model.NotificationHistory, error) {
	const query = `SELECT id, type, league_key, week, sent_at, status, error_msg
			FROM notification_history WHERE sent_at >= $1 ORDER BY seq`
	return db.queryHistory(ctx, query, cutoff)
}

func (db *postgresStore) queryHistory(ctx context.Context, query string, args ...any) ([]model.NotificationHistory, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying history: %w", err)
	}
	defer rows.Close()

	results := make([]model.NotificationHistory, 0, 8)
	for rows.Next() {
		var h model.NotificationHistory
		var jobType, status string
		if err := rows.Scan(&h.ID, &jobType, &h.LeagueKey, &h.Week, &h.SentAt, &status, &h.Error); err != nil {
			return nil, fmt.Errorf("error scanning history row: %w", err)
		}
		h.Type = model.JobType(jobType)
		h.Status = model.DeliveryStatus(status)
		results = append(results, h)
	}
	return results, rows.Err()
}

func scanSchedule(row pgx.Row) (*model.ScheduleConfig, error) {
	var s model.ScheduleConfig
	err := row.Scan(&s.LeagueKey, &s.RecipientEmail, &s.Enabled, &s.WeeklyReports, &s.WaiverWireAlerts, &s.Timezone)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
