package controller

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mww/roast_reporter/model"
)

// jobTimeout bounds one full batch run, including the Yahoo calls and
// SMTP delivery for every league.
const jobTimeout = 5 * time.Minute

// RunPeriodicNotificationJobs sleeps until the earlier of the two next
// run times, fires whichever jobs are due at that instant, and repeats
// until shutdown closes. Intended to run in its own goroutine.
func (c *controller) RunPeriodicNotificationJobs(shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		weeklyAt := c.sched.NextRun(model.JobWeeklyReport)
		waiverAt := c.sched.NextRun(model.JobWaiverWireAlert)

		next := weeklyAt
		if waiverAt.Before(next) {
			next = waiverAt
		}

		timer := c.clock.Timer(next.Sub(c.clock.Now()))
		select {
		case <-shutdown:
			timer.Stop()
			return
		case <-timer.C:
			if !weeklyAt.After(next) {
				c.runJob("weekly reports", c.RunWeeklyReports)
			}
			if !waiverAt.After(next) {
				c.runJob("waiver alerts", c.RunWaiverAlerts)
			}
		}
	}
}

func (c *controller) runJob(name string, run func(context.Context) ([]model.JobResult, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	results, err := run(ctx)
	if err != nil {
		log.Printf("error running %s: %v", name, err)
		return
	}

	sent, failed := 0, 0
	for _, r := range results {
		if r.Status == model.StatusSuccess {
			sent++
		} else {
			failed++
		}
	}
	log.Printf("%s finished: %d sent, %d failed, %d leagues checked", name, sent, failed, len(results))
}
