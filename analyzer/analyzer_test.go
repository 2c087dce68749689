package analyzer

import (
	"strings"
	"testing"

	"github.com/mww/roast_reporter/model"
)

func matchup(week int, aName string, aPoints float64, bName string, bPoints float64) model.Matchup {
	return model.Matchup{
		Week: week,
		Teams: []model.TeamScore{
			{Team: model.Team{Key: "t." + aName, Name: aName}, Points: aPoints},
			{Team: model.Team{Key: "t." + bName, Name: bName}, Points: bPoints},
		},
	}
}

func TestRoastLevel(t *testing.T) {
	tests := map[string]struct {
		winner   float64
		loser    float64
		diff     float64
		expected model.RoastLevel
	}{
		"big blowout":           {winner: 160, loser: 70, diff: 90, expected: model.RoastSpicy},
		"weak loser":            {winner: 110, loser: 75, diff: 35, expected: model.RoastSpicy},
		"diff just over 40":     {winner: 141, loser: 100, diff: 41, expected: model.RoastSpicy},
		"solid win":             {winner: 125, loser: 100, diff: 25, expected: model.RoastMedium},
		"big winner small diff": {winner: 155, loser: 150, diff: 5, expected: model.RoastMedium},
		"close game":            {winner: 140, loser: 135, diff: 5, expected: model.RoastMild},
		"boundary diff 40":      {winner: 140, loser: 100, diff: 40, expected: model.RoastMedium},
		"boundary loser 80":     {winner: 120, loser: 80, diff: 40, expected: model.RoastMedium},
		"boundary winner 150":   {winner: 150, loser: 140, diff: 10, expected: model.RoastMild},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RoastLevel(tc.winner, tc.loser, tc.diff); got != tc.expected {
				t.Errorf("expected: '%s', got: '%s'", tc.expected, got)
			}
		})
	}
}

func TestClassifyGame(t *testing.T) {
	tests := map[string]struct {
		diff     float64
		total    float64
		expected gameType
	}{
		"blowout":               {diff: 45, total: 250, expected: gameBlowout},
		"blowout beats scoring": {diff: 70, total: 150, expected: gameBlowout},
		"close":                 {diff: 5, total: 250, expected: gameClose},
		"close beats scoring":   {diff: 2, total: 300, expected: gameClose},
		"low scoring":           {diff: 15, total: 150, expected: gameLowScoring},
		"high scoring":          {diff: 15, total: 300, expected: gameHighScoring},
		"average":               {diff: 15, total: 250, expected: gameAverage},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := classifyGame(tc.diff, tc.total); got != tc.expected {
				t.Errorf("expected: '%s', got: '%s'", tc.expected, got)
			}
		})
	}
}

func TestAnalyzeWeek(t *testing.T) {
	a := NewSeeded("2025", 42)

	matchups := []model.Matchup{
		matchup(5, "Alpha", 130, "Bravo", 60),
		matchup(5, "Charlie", 121.6, "Delta", 117.9),
	}

	report := a.AnalyzeWeek(matchups, nil, 5, "Test League")
	if report.Week != 5 {
		t.Errorf("expected week 5, got %d", report.Week)
	}
	if report.Season != "2025" {
		t.Errorf("expected season 2025, got %s", report.Season)
	}
	if report.LeagueName != "Test League" {
		t.Errorf("expected league name 'Test League', got '%s'", report.LeagueName)
	}
	if len(report.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(report.Games))
	}

	g := report.Games[0]
	if g.Winner.Team.Name != "Alpha" || g.Loser.Team.Name != "Bravo" {
		t.Errorf("wrong winner/loser: %s over %s", g.Winner.Team.Name, g.Loser.Team.Name)
	}
	if g.PointDifferential != 70 {
		t.Errorf("expected differential 70, got %f", g.PointDifferential)
	}
	if g.RoastLevel != model.RoastSpicy {
		t.Errorf("expected spicy, got %s", g.RoastLevel)
	}
	if g.MatchupID != "5-t.Alpha-t.Bravo" {
		t.Errorf("unexpected matchup id: %s", g.MatchupID)
	}
	if !strings.Contains(g.Summary, "Alpha") || !strings.Contains(g.Summary, "130.0") {
		t.Errorf("summary missing winner details: %s", g.Summary)
	}

	nailBiter := report.Games[1]
	if nailBiter.RoastLevel != model.RoastMild {
		t.Errorf("expected mild, got %s", nailBiter.RoastLevel)
	}
	if nailBiter.PointDifferential < 3.6 || nailBiter.PointDifferential > 3.8 {
		t.Errorf("expected differential ~3.7, got %f", nailBiter.PointDifferential)
	}

	if report.Highlights == nil {
		t.Fatalf("expected highlights")
	}
	if report.Highlights.HighestScore.Team.Name != "Alpha" || report.Highlights.HighestScore.Points != 130 {
		t.Errorf("wrong highest score: %+v", report.Highlights.HighestScore)
	}
	if report.Highlights.LowestScore.Team.Name != "Bravo" || report.Highlights.LowestScore.Points != 60 {
		t.Errorf("wrong lowest score: %+v", report.Highlights.LowestScore)
	}
	if report.Highlights.ClosestGame.Winner.Team.Name != "Charlie" {
		t.Errorf("wrong closest game: %+v", report.Highlights.ClosestGame)
	}
	if report.Highlights.BiggestBlowout.Winner.Team.Name != "Alpha" {
		t.Errorf("wrong biggest blowout: %+v", report.Highlights.BiggestBlowout)
	}

	if !strings.Contains(report.OverallSummary, "Week 5 delivered 2 games") {
		t.Errorf("unexpected overall summary: %s", report.OverallSummary)
	}
	// One spicy game and one close game should both be called out.
	if !strings.Contains(report.OverallSummary, "1 absolute beatdown ") {
		t.Errorf("expected beatdown callout without plural: %s", report.OverallSummary)
	}
	if !strings.Contains(report.OverallSummary, "1 nail-biter ") {
		t.Errorf("expected nail-biter callout without plural: %s", report.OverallSummary)
	}
}

func TestAnalyzeWeekTie(t *testing.T) {
	a := NewSeeded("2025", 1)

	// On identical scores the second listed team takes the win.
	report := a.AnalyzeWeek([]model.Matchup{matchup(3, "First", 100, "Second", 100)}, nil, 3, "League")
	if len(report.Games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(report.Games))
	}

	g := report.Games[0]
	if g.Winner.Team.Name != "Second" {
		t.Errorf("expected Second to win the tie, got %s", g.Winner.Team.Name)
	}
	if g.PointDifferential != 0 {
		t.Errorf("expected differential 0, got %f", g.PointDifferential)
	}
}

func TestAnalyzeWeekSkipsMalformedMatchups(t *testing.T) {
	a := NewSeeded("2025", 1)

	matchups := []model.Matchup{
		matchup(2, "Alpha", 110, "Bravo", 90),
		{Week: 2, Teams: []model.TeamScore{{Team: model.Team{Key: "t.solo", Name: "Solo"}, Points: 80}}},
		{Week: 2},
	}

	report := a.AnalyzeWeek(matchups, nil, 2, "League")
	if len(report.Games) != 1 {
		t.Errorf("expected 1 game, got %d", len(report.Games))
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("expected 2 skipped matchups, got %d", len(report.Skipped))
	}
	if report.Skipped[0].Participants != 1 || report.Skipped[1].Participants != 0 {
		t.Errorf("wrong participant counts: %+v", report.Skipped)
	}
	for _, s := range report.Skipped {
		if s.Reason != model.SkipParticipantCount {
			t.Errorf("wrong skip reason: %s", s.Reason)
		}
	}
}

func TestAnalyzeWeekEmpty(t *testing.T) {
	a := NewSeeded("2025", 1)

	report := a.AnalyzeWeek(nil, nil, 7, "League")
	if len(report.Games) != 0 {
		t.Errorf("expected no games, got %d", len(report.Games))
	}
	if report.Highlights != nil {
		t.Errorf("expected nil highlights, got %+v", report.Highlights)
	}
	if !strings.Contains(report.OverallSummary, "Week 7 delivered 0 games") {
		t.Errorf("unexpected summary: %s", report.OverallSummary)
	}
}

func TestSeededAnalyzerIsReproducible(t *testing.T) {
	matchups := []model.Matchup{matchup(4, "Alpha", 120, "Bravo", 100)}

	r1 := NewSeeded("2025", 99).AnalyzeWeek(matchups, nil, 4, "League")
	r2 := NewSeeded("2025", 99).AnalyzeWeek(matchups, nil, 4, "League")

	if r1.Games[0].Summary != r2.Games[0].Summary {
		t.Errorf("summaries differ:\n%s\n%s", r1.Games[0].Summary, r2.Games[0].Summary)
	}
	if r1.OverallSummary != r2.OverallSummary {
		t.Errorf("overall summaries differ:\n%s\n%s", r1.OverallSummary, r2.OverallSummary)
	}
}

func TestPersonalizedRoast(t *testing.T) {
	team := model.Team{Name: "Taco Corp"}

	tests := map[string]struct {
		weekly   float64
		average  float64
		contains string
	}{
		"overperformed":  {weekly: 130, average: 100, contains: "finally remembered how to play"},
		"underperformed": {weekly: 70, average: 100, contains: "disappoint even their own low expectations"},
		"average":        {weekly: 105, average: 100, contains: "perfectly mediocre"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := PersonalizedRoast(team, tc.weekly, tc.average)
			if !strings.Contains(got, "Taco Corp") {
				t.Errorf("roast missing team name: %s", got)
			}
			if !strings.Contains(got, tc.contains) {
				t.Errorf("expected roast to contain '%s', got: %s", tc.contains, got)
			}
		})
	}
}
