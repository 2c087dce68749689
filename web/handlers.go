package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mww/roast_reporter/controller"
	"github.com/mww/roast_reporter/model"
	"github.com/mww/roast_reporter/store"
	"github.com/unrolled/render"
)

type errResponse struct {
	Error string `json:"error"`
}

func statusHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := ctrl.Status(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, status)
	}
}

func listSchedulesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := ctrl.Status(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, status.Schedules)
	}
}

func addScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var config model.ScheduleConfig
		if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
			render.JSON(w, http.StatusBadRequest, errResponse{Error: fmt.Sprintf("error parsing schedule: %v", err)})
			return
		}

		if err := ctrl.AddSchedule(r.Context(), &config); err != nil {
			render.JSON(w, http.StatusBadRequest, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusCreated, config)
	}
}

func getScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := chi.URLParam(r, "leagueKey")
		config, err := ctrl.GetSchedule(r.Context(), leagueKey)
		if err != nil {
			if errors.Is(err, store.ErrScheduleNotFound) {
				render.JSON(w, http.StatusNotFound, errResponse{Error: "schedule not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, config)
	}
}

func updateScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := chi.URLParam(r, "leagueKey")

		var u model.ScheduleUpdate
		if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
			render.JSON(w, http.StatusBadRequest, errResponse{Error: fmt.Sprintf("error parsing update: %v", err)})
			return
		}

		config, err := ctrl.UpdateSchedule(r.Context(), leagueKey, u)
		if err != nil {
			if errors.Is(err, store.ErrScheduleNotFound) {
				render.JSON(w, http.StatusNotFound, errResponse{Error: "schedule not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, config)
	}
}

func removeScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := chi.URLParam(r, "leagueKey")
		if err := ctrl.RemoveSchedule(r.Context(), leagueKey); err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]bool{"removed": true})
	}
}

func historyHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueKey := r.URL.Query().Get("league")

		days := 0
		if d := r.URL.Query().Get("days"); d != "" {
			var err error
			days, err = strconv.Atoi(d)
			if err != nil {
				render.JSON(w, http.StatusBadRequest, errResponse{Error: fmt.Sprintf("error parsing days: %v", err)})
				return
			}
		}

		entries, err := ctrl.History(r.Context(), leagueKey, days)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, entries)
	}
}

// analyzeRequest is shared by the two manual trigger routes. A zero or
// missing week means the current week.
type analyzeRequest struct {
	LeagueKey string `json:"leagueKey"`
	Week      int    `json:"week"`
}

func analyzeReportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}

		report, err := ctrl.AnalyzeWeek(r.Context(), req.LeagueKey, req.Week)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func analyzeWaiverHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errResponse{Error: fmt.Sprintf("error parsing request: %v", err)})
			return
		}

		recs, err := ctrl.AnalyzeWaiverWire(r.Context(), req.LeagueKey, req.Week)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, recs)
	}
}

func runWeeklyReportsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := ctrl.RunWeeklyReports(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, results)
	}
}

func runWaiverAlertsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := ctrl.RunWaiverAlerts(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, results)
	}
}
