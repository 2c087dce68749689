package web

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/roast_reporter/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, cronSecret string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", statusHandler(ctrl, render))
	r.Get("/status", statusHandler(ctrl, render))

	r.Route("/schedules", func(r chi.Router) {
		r.Get("/", listSchedulesHandler(ctrl, render))
		r.Post("/", addScheduleHandler(ctrl, render))
		r.Get("/{leagueKey}", getScheduleHandler(ctrl, render))
		r.Put("/{leagueKey}", updateScheduleHandler(ctrl, render))
		r.Delete("/{leagueKey}", removeScheduleHandler(ctrl, render))
	})

	r.Get("/history", historyHandler(ctrl, render))

	r.Post("/reports/analyze", analyzeReportHandler(ctrl, render))
	r.Post("/waivers/analyze", analyzeWaiverHandler(ctrl, render))

	// The batch send endpoints. These are hit by an external cron
	// service in addition to the in-process timer, so they require the
	// shared secret.
	r.Route("/cron", func(r chi.Router) {
		r.Use(bearerAuth(cronSecret))
		r.Use(middleware.Timeout(5 * time.Minute)) // Batch runs talk to Yahoo and SMTP for every league

		r.Get("/weekly-report", runWeeklyReportsHandler(ctrl, render))
		r.Get("/waiver-wire-alert", runWaiverAlertsHandler(ctrl, render))
	})

	return r
}

// bearerAuth requires "Authorization: Bearer <secret>" on every request.
// An empty configured secret rejects everything.
func bearerAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			expected := "Bearer " + secret
			if secret == "" || subtle.ConstantTimeCompare([]byte(auth), []byte(expected)) != 1 {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
