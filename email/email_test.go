package email

import (
	htmltemplate "html/template"
	"strings"
	"testing"
	texttemplate "text/template"

	"github.com/mww/roast_reporter/model"
)

func parsedTemplates(t *testing.T) (*texttemplate.Template, *htmltemplate.Template) {
	t.Helper()
	html, err := htmltemplate.ParseFS(templates, "templates/*.html.tmpl")
	if err != nil {
		t.Fatalf("error parsing html templates: %v", err)
	}
	text, err := texttemplate.ParseFS(templates, "templates/*.txt.tmpl")
	if err != nil {
		t.Fatalf("error parsing text templates: %v", err)
	}
	return text, html
}

func sampleReport() *model.WeeklyReport {
	game := model.GameSummary{
		MatchupID:         "5-t.1-t.4",
		Week:              5,
		Winner:            model.TeamScore{Team: model.Team{Key: "t.1", Name: "Victorious Secret"}, Points: 158.3},
		Loser:             model.TeamScore{Team: model.Team{Key: "t.4", Name: "Taco Corp"}, Points: 74.2},
		PointDifferential: 84.1,
		Summary:           "A public execution.",
		RoastLevel:        model.RoastSpicy,
	}
	return &model.WeeklyReport{
		Week:       5,
		Season:     "2025",
		LeagueName: "Gridiron Grudge Match",
		Games:      []model.GameSummary{game},
		Highlights: &model.WeeklyHighlights{
			HighestScore:   model.ScoreHighlight{Team: game.Winner.Team, Points: 158.3, Game: game},
			LowestScore:    model.ScoreHighlight{Team: game.Loser.Team, Points: 74.2, Game: game},
			ClosestGame:    game,
			BiggestBlowout: game,
		},
		OverallSummary: "A week to forget for half the league.",
	}
}

func TestRenderWeeklyReport(t *testing.T) {
	text, html := parsedTemplates(t)
	report := sampleReport()

	textBody, err := renderText(text, "weekly_report", report)
	if err != nil {
		t.Fatalf("error rendering text body: %v", err)
	}
	for _, want := range []string{
		"WEEK 5 FANTASY FOOTBALL REPORT: Gridiron Grudge Match",
		"Victorious Secret 158.3 def. Taco Corp 74.2 [spicy]",
		"A public execution.",
		"Highest score: Victorious Secret - 158.3 points",
		"Lowest score: Taco Corp - 74.2 points",
	} {
		if !strings.Contains(textBody, want) {
			t.Errorf("text body missing '%s':\n%s", want, textBody)
		}
	}

	htmlBody, err := renderHTML(html, "weekly_report", report)
	if err != nil {
		t.Fatalf("error rendering html body: %v", err)
	}
	for _, want := range []string{"Victorious Secret", "Taco Corp", "158.3", "A week to forget"} {
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing '%s'", want)
		}
	}
}

func TestRenderWeeklyReportNoHighlights(t *testing.T) {
	text, _ := parsedTemplates(t)

	report := &model.WeeklyReport{
		Week:           7,
		Season:         "2025",
		LeagueName:     "Empty League",
		OverallSummary: "Nothing happened.",
	}

	body, err := renderText(text, "weekly_report", report)
	if err != nil {
		t.Fatalf("error rendering text body: %v", err)
	}
	if strings.Contains(body, "WEEKLY HIGHLIGHTS") {
		t.Errorf("highlights section should be omitted for a report with no games:\n%s", body)
	}
}

func TestRenderWaiverAlert(t *testing.T) {
	text, html := parsedTemplates(t)

	data := waiverAlertData{
		LeagueName: "Gridiron Grudge Match",
		Week:       5,
		Recommendations: []model.WaiverWireRecommendation{
			{
				PlayerName:   "Jaylen Warren",
				Position:     model.POS_RB,
				Team:         "PIT",
				Reason:       "MUST-ADD: Getting the work.",
				Priority:     model.PriorityHigh,
				PercentOwned: 15,
			},
		},
	}

	textBody, err := renderText(text, "waiver_alert", data)
	if err != nil {
		t.Fatalf("error rendering text body: %v", err)
	}
	for _, want := range []string{
		"WAIVER WIRE ALERT: Gridiron Grudge Match",
		"[high] Jaylen Warren (RB, PIT) - owned in 15% of leagues",
		"MUST-ADD: Getting the work.",
	} {
		if !strings.Contains(textBody, want) {
			t.Errorf("text body missing '%s':\n%s", want, textBody)
		}
	}

	htmlBody, err := renderHTML(html, "waiver_alert", data)
	if err != nil {
		t.Fatalf("error rendering html body: %v", err)
	}
	for _, want := range []string{"Jaylen Warren", "PIT", "MUST-ADD"} {
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing '%s'", want)
		}
	}
}

func TestNewParsesTemplates(t *testing.T) {
	s, err := New(Config{Host: "localhost", Port: 587, From: "reports@example.com"})
	if err != nil {
		t.Fatalf("error creating sender: %v", err)
	}
	if s == nil {
		t.Fatalf("expected a sender")
	}
}
