package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/misterclayt0n/treino/internal/utils"
)

type Goal string

const (
	GoalFatLoss       Goal = "fat_loss"
	GoalHypertrophy   Goal = "hypertrophy"
	GoalStrength      Goal = "strength"
	GoalEndurance     Goal = "endurance"
	GoalPower         Goal = "power"
	GoalCoreStability Goal = "core_stability"
)

var ErrUnknownGoal = errors.New("unknown goal")

// Goals lists every goal in a stable order.
var Goals = []Goal{GoalFatLoss, GoalHypertrophy, GoalStrength, GoalEndurance, GoalPower, GoalCoreStability}

func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Goals {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGoal, s)
}

// ParseExperience accepts any casing of the three levels.
// Unknown input falls back to Beginner.
func ParseExperience(s string) Experience {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "intermediate":
		return Intermediate
	case "advanced":
		return Advanced
	default:
		return Beginner
	}
}

const (
	MinSessionMinutes = 20
	MaxSessionMinutes = 120
)

// Request is the canonical planning request.
type Request struct {
	Goal                Goal       `json:"goal"`
	Experience          Experience `json:"experience"`
	TotalSessionMinutes int        `json:"total_session_minutes"`
	AvailableEquipment  []string   `json:"available_equipment"`
	TargetMuscles       []string   `json:"target_muscles"`
	Injuries            []string   `json:"injuries"`
	RequireCardio       bool       `json:"require_cardio"`
}

// NewRequest builds a request with the duration clamped to 20–120 minutes.
// Equipment is lowercased, target muscles title-cased and injuries turned
// into tags, then each list is de-duplicated in its original order.
func NewRequest(goal Goal, exp Experience, minutes int, equipment, targets, injuries []string, requireCardio bool) Request {
	return Request{
		Goal:                goal,
		Experience:          exp,
		TotalSessionMinutes: clampMinutes(minutes),
		AvailableEquipment:  dedupe(equipment, strings.ToLower),
		TargetMuscles:       dedupe(targets, utils.TitleCase),
		Injuries:            dedupe(injuries, NormalizeInjury),
		RequireCardio:       requireCardio,
	}
}

// NormalizeInjury lowercases an injury phrase and joins its words with
// underscores ("Lower back" -> "lower_back").
func NormalizeInjury(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// Normalized returns a copy passed back through NewRequest.
func (r Request) Normalized() Request {
	return NewRequest(r.Goal, r.Experience, r.TotalSessionMinutes, r.AvailableEquipment, r.TargetMuscles, r.Injuries, r.RequireCardio)
}

func clampMinutes(m int) int {
	if m < MinSessionMinutes {
		return MinSessionMinutes
	}
	if m > MaxSessionMinutes {
		return MaxSessionMinutes
	}
	return m
}

func dedupe(in []string, normalize func(string) string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, s := range in {
		s = normalize(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
