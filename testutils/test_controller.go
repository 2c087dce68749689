package testutils

import (
	"net/http"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/roast_reporter/controller"
	"github.com/mww/roast_reporter/email/mockemail"
	"github.com/mww/roast_reporter/platforms/yahoo"
	"github.com/mww/roast_reporter/scheduler"
	"github.com/mww/roast_reporter/store"
	"github.com/mww/roast_reporter/waiver"
)

// SeasonStart is the anchor used by test controllers. Tests that care
// about the current week set the mock clock relative to this.
var SeasonStart = time.Date(2025, time.September, 4, 0, 0, 0, 0, time.UTC)

// TestController wires a full controller against a fake Yahoo server,
// an in-memory store, a mock mailer, and a mock clock. Close must be
// called when the test is done.
type TestController struct {
	C         controller.C
	Clock     *clock.Mock
	Store     store.Store
	Scheduler *scheduler.Scheduler
	Mailer    *mockemail.Sender
	fakeYahoo *FakeYahooServer
}

func (c *TestController) Close() {
	c.fakeYahoo.Close()
}

func (c *TestController) YahooURL() string {
	return c.fakeYahoo.URL()
}

func NewTestController() (*TestController, error) {
	fakeYahoo := NewFakeYahooServer()

	mockClock := clock.NewMock()
	mockClock.Set(SeasonStart.AddDate(0, 0, 30)) // week 5

	st := store.NewMemory()
	sched := scheduler.New(mockClock, st, SeasonStart)
	mailer := &mockemail.Sender{}

	ctrl, err := controller.New(
		mockClock,
		sched,
		yahoo.NewForTest(fakeYahoo.URL()),
		http.DefaultClient,
		mailer,
		waiver.StaticCandidates,
		"2025",
	)
	if err != nil {
		fakeYahoo.Close()
		return nil, err
	}

	return &TestController{
		C:         ctrl,
		Clock:     mockClock,
		Store:     st,
		Scheduler: sched,
		Mailer:    mailer,
		fakeYahoo: fakeYahoo,
	}, nil
}
