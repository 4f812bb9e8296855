package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Reps is either a plain rep count or a symbolic prescription such as
// "Time" or "EMOM 10–15 reps".
type Reps struct {
	Count int
	Label string
}

func RepCount(n int) Reps { return Reps{Count: n} }
func RepLabel(label string) Reps { return Reps{Label: label} }

func (r Reps) String() string {
	if r.Label != "" {
		return r.Label
	}
	return strconv.Itoa(r.Count)
}

func (r Reps) MarshalJSON() ([]byte, error) {
	if r.Label != "" {
		return json.Marshal(r.Label)
	}
	return json.Marshal(r.Count)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Reps{Count: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = Reps{Label: s}
	return nil
}

func (r Reps) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// PlannedExercise is one row of a session.
type PlannedExercise struct {
	Exercise         string     `json:"exercise" toml:"exercise"`
	PrimaryMuscle    string     `json:"primary_muscle" toml:"primary_muscle"`
	Category         string     `json:"category" toml:"category"`
	Experience       Experience `json:"experience" toml:"experience"`
	Sets             int        `json:"sets" toml:"sets"`
	Reps             Reps       `json:"reps" toml:"reps"`
	RestSeconds      int        `json:"rest_s" toml:"rest_s"`
	RestNote         string     `json:"rest_note,omitempty" toml:"rest_note,omitempty"` // Set when rest is not a fixed number of seconds.
	LoadPrescription string     `json:"load_prescription" toml:"load_prescription"`
	EstimatedSeconds float64    `json:"est_time_s" toml:"est_time_s"`
	Video            string     `json:"video,omitempty" toml:"video,omitempty"`
}

// EstimatedMinutes is the block time rounded to one decimal.
func (p PlannedExercise) EstimatedMinutes() float64 {
	return RoundTenth(p.EstimatedSeconds / 60)
}

// Rest renders the rest column.
func (p PlannedExercise) Rest() string {
	if p.RestNote != "" {
		return p.RestNote
	}
	return strconv.Itoa(p.RestSeconds)
}

type SessionSummary struct {
	TotalSeconds    float64 `json:"total_s" toml:"total_s"`
	TotalMinutes    float64 `json:"total_min" toml:"total_min"`
	WarmupMinutes   float64 `json:"warmup_min" toml:"warmup_min"`
	CooldownMinutes float64 `json:"cooldown_min" toml:"cooldown_min"`
	Exercises       int     `json:"exercises" toml:"exercises"`
}

type SessionPlan struct {
	Exercises []PlannedExercise `json:"exercises" toml:"exercise"`
	Summary   SessionSummary    `json:"summary" toml:"summary"`
}

// ScheduledSession is a session tagged with its place in a program.
type ScheduledSession struct {
	Week      int         `json:"week" toml:"week"`
	Day       int         `json:"day" toml:"day"`
	SessionID string      `json:"session_id" toml:"session_id"`
	Targets   []string    `json:"targets" toml:"targets"`
	RPETarget string      `json:"rpe_target" toml:"rpe_target"`
	Phase     int         `json:"phase" toml:"phase"`
	Plan      SessionPlan `json:"plan" toml:"plan"`
}

type ProgramSchedule struct {
	Goal        Goal               `json:"goal" toml:"goal"`
	Weeks       int                `json:"weeks" toml:"weeks"`
	DaysPerWeek int                `json:"days_per_week" toml:"days_per_week"`
	Sessions    []ScheduledSession `json:"sessions" toml:"session"`
}

func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
