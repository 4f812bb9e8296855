package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/misterclayt0n/treino/internal/intake"
	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/planner"
)

// sessionBody is the canonical request as posted by API clients. Goal and
// experience are parsed leniently before planning.
type sessionBody struct {
	Goal                string   `json:"goal"`
	Experience          string   `json:"experience"`
	TotalSessionMinutes int      `json:"total_session_minutes"`
	AvailableEquipment  []string `json:"available_equipment"`
	TargetMuscles       []string `json:"target_muscles"`
	Injuries            []string `json:"injuries"`
	RequireCardio       bool     `json:"require_cardio"`
}

func (b sessionBody) request() (models.Request, error) {
	goal, err := models.ParseGoal(b.Goal)
	if err != nil {
		return models.Request{}, err
	}
	return models.NewRequest(goal, models.ParseExperience(b.Experience), b.TotalSessionMinutes,
		b.AvailableEquipment, b.TargetMuscles, b.Injuries, b.RequireCardio), nil
}

type programBody struct {
	sessionBody
	Weeks       int `json:"weeks"`
	DaysPerWeek int `json:"days_per_week"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.planner.Catalog())
}

func (s *Server) handleBuildSession(w http.ResponseWriter, r *http.Request) {
	var body sessionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	req, err := body.request()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.buildSession(w, r, req)
}

func (s *Server) handleBuildSessionUI(w http.ResponseWriter, r *http.Request) {
	payload, err := intake.DecodePayload(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.buildSession(w, r, intake.Normalize(payload))
}

func (s *Server) handleBuildProgram(w http.ResponseWriter, r *http.Request) {
	var body programBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	req, err := body.request()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weeks, days := s.weeks, s.daysPerWeek
	if body.Weeks != 0 {
		weeks = body.Weeks
	}
	if body.DaysPerWeek != 0 {
		days = body.DaysPerWeek
	}
	s.buildProgram(w, r, req, weeks, days)
}

// handleBuildProgramUI takes the questionnaire payload as the body and the
// schedule shape from the weeks and days query parameters.
func (s *Server) handleBuildProgramUI(w http.ResponseWriter, r *http.Request) {
	weeks, err := intQuery(r, "weeks", s.weeks)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	days, err := intQuery(r, "days", s.daysPerWeek)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	payload, err := intake.DecodePayload(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.buildProgram(w, r, intake.Normalize(payload), weeks, days)
}

func (s *Server) buildSession(w http.ResponseWriter, r *http.Request, req models.Request) {
	plan, err := s.planner.BuildSession(req)
	if err != nil {
		s.writePlanError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) buildProgram(w http.ResponseWriter, r *http.Request, req models.Request, weeks, days int) {
	prog, err := s.planner.BuildProgram(r.Context(), req, weeks, days)
	if err != nil {
		s.writePlanError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prog)
}

func (s *Server) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidDuration), errors.Is(err, planner.ErrInvalidSchedule):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.Error("planning failed", "request_id", requestIDFromContext(r), "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func intQuery(r *http.Request, key string, fallback int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return n, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
