package model

import "fmt"

type RoastLevel string

const (
	RoastMild   RoastLevel = "mild"
	RoastMedium RoastLevel = "medium"
	RoastSpicy  RoastLevel = "spicy"
)

// GameSummary is a value object derived from a single matchup. It is
// recomputed on every analysis call and never persisted.
type GameSummary struct {
	MatchupID         string     `json:"matchupId"`
	Week              int        `json:"week"`
	Winner            TeamScore  `json:"winner"`
	Loser             TeamScore  `json:"loser"`
	PointDifferential float64    `json:"pointDifferential"`
	Summary           string     `json:"summary"`
	RoastLevel        RoastLevel `json:"roastLevel"`
}

type SkipReason string

const SkipParticipantCount SkipReason = "participant-count"

// SkippedMatchup records a matchup that was excluded from a report so
// that callers can observe data-quality problems instead of having them
// disappear.
type SkippedMatchup struct {
	Week         int        `json:"week"`
	Participants int        `json:"participants"`
	Reason       SkipReason `json:"reason"`
}

// ScoreHighlight points at a single team's score within one game.
type ScoreHighlight struct {
	Team   Team        `json:"team"`
	Points float64     `json:"points"`
	Game   GameSummary `json:"game"`
}

type WeeklyHighlights struct {
	HighestScore   ScoreHighlight `json:"highestScore"`
	LowestScore    ScoreHighlight `json:"lowestScore"`
	ClosestGame    GameSummary    `json:"closestGame"`
	BiggestBlowout GameSummary    `json:"biggestBlowout"`
}

// WeeklyReport aggregates every GameSummary for one week of one league.
// Highlights is nil when no qualifying games exist; callers must handle a
// report with zero games.
type WeeklyReport struct {
	Week           int               `json:"week"`
	Season         string            `json:"season"`
	LeagueName     string            `json:"leagueName"`
	Games          []GameSummary     `json:"games"`
	Skipped        []SkippedMatchup  `json:"skipped,omitempty"`
	Highlights     *WeeklyHighlights `json:"weeklyHighlights,omitempty"`
	OverallSummary string            `json:"overallSummary"`
}

func GameID(week int, winnerKey, loserKey string) string {
	return fmt.Sprintf("%d-%s-%s", week, winnerKey, loserKey)
}
