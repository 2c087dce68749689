// Package analyzer turns a week of raw matchup scores into a structured
// report with generated prose. All computation is pure and in-memory;
// only the template selection is randomized, and the random source is
// injected so tests can pin the exact text.
package analyzer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mww/roast_reporter/model"
)

type gameType string

const (
	gameBlowout     gameType = "blowout"
	gameClose       gameType = "close"
	gameLowScoring  gameType = "lowScoring"
	gameHighScoring gameType = "highScoring"
	gameAverage     gameType = "average"
)

type Analyzer struct {
	rng    *rand.Rand
	season string
}

// New returns an analyzer with a time-seeded random source, for
// production use. Structural output (winners, differentials, roast
// levels) is deterministic; only the prose varies between calls.
func New(season string) *Analyzer {
	return NewSeeded(season, time.Now().UnixNano())
}

// NewSeeded returns an analyzer whose prose is reproducible for a given
// seed. Use in tests to assert exact summaries.
func NewSeeded(season string, seed int64) *Analyzer {
	return &Analyzer{
		rng:    rand.New(rand.NewSource(seed)),
		season: season,
	}
}

// AnalyzeWeek builds the weekly report for one league. Matchups without
// exactly two participants are recorded under Skipped rather than
// failing the whole report. With zero qualifying matchups the report has
// an empty Games list and nil Highlights.
func (a *Analyzer) AnalyzeWeek(matchups []model.Matchup, teams []model.Team, week int, leagueName string) *model.WeeklyReport {
	games := make([]model.GameSummary, 0, len(matchups))
	var skipped []model.SkippedMatchup

	for _, m := range matchups {
		if len(m.Teams) != 2 {
			skipped = append(skipped, model.SkippedMatchup{
				Week:         m.Week,
				Participants: len(m.Teams),
				Reason:       model.SkipParticipantCount,
			})
			continue
		}
		games = append(games, a.analyzeMatchup(m, week))
	}

	return &model.WeeklyReport{
		Week:           week,
		Season:         a.season,
		LeagueName:     leagueName,
		Games:          games,
		Skipped:        skipped,
		Highlights:     weeklyHighlights(games),
		OverallSummary: a.weeklySummary(games, week),
	}
}

// analyzeMatchup derives a GameSummary from one two-team matchup. The
// winner is the strictly higher scorer; on an exact tie the second-listed
// participant is treated as the winner. Source tie/winner hints are
// ignored.
func (a *Analyzer) analyzeMatchup(m model.Matchup, week int) model.GameSummary {
	winner, loser := m.Teams[0], m.Teams[1]
	if loser.Points >= winner.Points {
		winner, loser = loser, winner
	}

	diff := winner.Points - loser.Points

	return model.GameSummary{
		MatchupID:         model.GameID(week, winner.Team.Key, loser.Team.Key),
		Week:              week,
		Winner:            winner,
		Loser:             loser,
		PointDifferential: diff,
		Summary:           a.gameSummary(winner, loser, diff),
		RoastLevel:        RoastLevel(winner.Points, loser.Points, diff),
	}
}

// RoastLevel classifies a game's narrative intensity. It is a pure
// function of the two scores and their differential, independent of
// which template bucket the game lands in.
func RoastLevel(winnerPoints, loserPoints, differential float64) model.RoastLevel {
	if differential > 40 || loserPoints < 80 {
		return model.RoastSpicy
	}
	if differential > 20 || winnerPoints > 150 {
		return model.RoastMedium
	}
	return model.RoastMild
}

func classifyGame(differential, totalPoints float64) gameType {
	switch {
	case differential > 40:
		return gameBlowout
	case differential < 10:
		return gameClose
	case totalPoints < 160:
		return gameLowScoring
	case totalPoints > 280:
		return gameHighScoring
	default:
		return gameAverage
	}
}

func (a *Analyzer) gameSummary(winner, loser model.TeamScore, differential float64) string {
	total := winner.Points + loser.Points
	templates := roastTemplates[classifyGame(differential, total)]
	t := templates[a.rng.Intn(len(templates))]

	r := strings.NewReplacer(
		"{winner}", winner.Team.Name,
		"{loser}", loser.Team.Name,
		"{winnerScore}", fmt.Sprintf("%.1f", winner.Points),
		"{loserScore}", fmt.Sprintf("%.1f", loser.Points),
		"{totalPoints}", fmt.Sprintf("%.1f", total),
	)
	return r.Replace(t)
}

// weeklyHighlights finds the four pointers for the report. Ties are
// broken by first-encountered in iteration order. Returns nil when there
// are no games to pick from.
func weeklyHighlights(games []model.GameSummary) *model.WeeklyHighlights {
	if len(games) == 0 {
		return nil
	}

	h := &model.WeeklyHighlights{
		HighestScore:   model.ScoreHighlight{Team: games[0].Winner.Team, Points: games[0].Winner.Points, Game: games[0]},
		LowestScore:    model.ScoreHighlight{Team: games[0].Winner.Team, Points: games[0].Winner.Points, Game: games[0]},
		ClosestGame:    games[0],
		BiggestBlowout: games[0],
	}

	for _, g := range games {
		for _, ts := range []model.TeamScore{g.Winner, g.Loser} {
			if ts.Points > h.HighestScore.Points {
				h.HighestScore = model.ScoreHighlight{Team: ts.Team, Points: ts.Points, Game: g}
			}
			if ts.Points < h.LowestScore.Points {
				h.LowestScore = model.ScoreHighlight{Team: ts.Team, Points: ts.Points, Game: g}
			}
		}
		if g.PointDifferential < h.ClosestGame.PointDifferential {
			h.ClosestGame = g
		}
		if g.PointDifferential > h.BiggestBlowout.PointDifferential {
			h.BiggestBlowout = g
		}
	}

	return h
}

func (a *Analyzer) weeklySummary(games []model.GameSummary, week int) string {
	intro := weeklyIntros[a.rng.Intn(len(weeklyIntros))]

	if len(games) == 0 {
		return fmt.Sprintf("%s Week %d delivered 0 games. Even the schedule gave up.", intro, week)
	}

	var totalPoints float64
	spicyGames := 0
	closeGames := 0
	for _, g := range games {
		totalPoints += g.Winner.Points + g.Loser.Points
		if g.RoastLevel == model.RoastSpicy {
			spicyGames++
		}
		if g.PointDifferential < 10 {
			closeGames++
		}
	}
	avgPoints := totalPoints / float64(len(games)*2)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Week %d delivered %d games with an average score of %.1f points per team. ",
		intro, week, len(games), avgPoints)

	if spicyGames > 0 {
		fmt.Fprintf(&b, "We witnessed %d absolute beatdown%s that left managers questioning their life choices. ",
			spicyGames, plural(spicyGames))
	}
	if closeGames > 0 {
		fmt.Fprintf(&b, "%d nail-biter%s kept us on the edge of our seats, mostly because we were afraid to look. ",
			closeGames, plural(closeGames))
	}

	b.WriteString("Remember folks, it's not about winning or losing - it's about the friends we disappoint along the way.")
	return b.String()
}

// PersonalizedRoast compares one team's weekly output against its season
// average and picks an appropriately disrespectful line.
func PersonalizedRoast(team model.Team, weeklyPerformance, seasonAverage float64) string {
	performance := weeklyPerformance - seasonAverage

	switch {
	case performance > 20:
		return fmt.Sprintf("%s finally remembered how to play fantasy football this week. Don't get used to it.", team.Name)
	case performance < -20:
		return fmt.Sprintf("%s managed to disappoint even their own low expectations this week. Impressive in the worst way possible.", team.Name)
	default:
		return fmt.Sprintf("%s delivered another perfectly mediocre performance. Consistency is key, even when it's consistently disappointing.", team.Name)
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
