// Package email renders and delivers notifications over SMTP. The engine
// itself never calls this directly; the controller does, after the
// scheduler has approved the send.
package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/mww/roast_reporter/model"
	gomail "gopkg.in/gomail.v2"
)

//go:embed templates
var templates embed.FS

type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Sender delivers rendered notifications. The controller depends on this
// interface so tests can swap in a mock.
type Sender interface {
	SendWeeklyReport(report *model.WeeklyReport, recipient string) error
	SendWaiverAlert(recs []model.WaiverWireRecommendation, leagueName string, week int, recipient string) error
}

type sender struct {
	dialer *gomail.Dialer
	from   string
	html   *htmltemplate.Template
	text   *texttemplate.Template
}

func New(config Config) (Sender, error) {
	html, err := htmltemplate.ParseFS(templates, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing html email templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templates, "templates/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("error parsing text email templates: %w", err)
	}

	d := gomail.NewDialer(config.Host, config.Port, config.User, config.Pass)
	// 465 is implicit TLS; other ports negotiate STARTTLS.
	d.SSL = config.Port == 465

	return &sender{
		dialer: d,
		from:   config.From,
		html:   html,
		text:   text,
	}, nil
}

func (s *sender) SendWeeklyReport(report *model.WeeklyReport, recipient string) error {
	subject := fmt.Sprintf("Week %d Fantasy Football Report: %s", report.Week, report.LeagueName)
	return s.send(recipient, subject, "weekly_report", report)
}

func (s *sender) SendWaiverAlert(recs []model.WaiverWireRecommendation, leagueName string, week int, recipient string) error {
	subject := fmt.Sprintf("Week %d Waiver Wire Alert: %s", week+1, leagueName)
	data := waiverAlertData{
		LeagueName:      leagueName,
		Week:            week,
		Recommendations: recs,
	}
	return s.send(recipient, subject, "waiver_alert", data)
}

type waiverAlertData struct {
	LeagueName      string
	Week            int
	Recommendations []model.WaiverWireRecommendation
}

func (s *sender) send(recipient, subject, template string, data any) error {
	textBody, err := renderText(s.text, template, data)
	if err != nil {
		return err
	}
	htmlBody, err := renderHTML(s.html, template, data)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending %s email: %w", template, err)
	}
	return nil
}

func renderText(t *texttemplate.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name+".txt.tmpl", data); err != nil {
		return "", fmt.Errorf("error rendering %s text body: %w", name, err)
	}
	return buf.String(), nil
}

func renderHTML(t *htmltemplate.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name+".html.tmpl", data); err != nil {
		return "", fmt.Errorf("error rendering %s html body: %w", name, err)
	}
	return buf.String(), nil
}
