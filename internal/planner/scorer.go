package planner

import (
	"strings"

	"github.com/misterclayt0n/treino/internal/models"
)

const (
	bucketBonus       = 2.0
	targetBonus       = 2.5
	experienceBonus   = 1.0
	experiencePenalty = -2.0
	equipmentBonus    = 1.0
	equipmentPenalty  = -3.0
	injuryPenalty     = -100.0
)

// Score rates how well an exercise suits the request. Anything scoring
// zero or less is never selected.
func Score(ex models.Exercise, req models.Request) float64 {
	score := 0.0
	if inBucket(req.Goal, ex.PrimaryMuscle) {
		score += bucketBonus
	}
	if len(req.TargetMuscles) > 0 && contains(req.TargetMuscles, ex.PrimaryMuscle) {
		score += targetBonus
	}
	if ex.Experience.Level() <= req.Experience.Level() {
		score += experienceBonus
	} else {
		score += experiencePenalty
	}
	if HasEquipment(ex, req.AvailableEquipment) {
		score += equipmentBonus
	} else {
		score += equipmentPenalty
	}
	if InjuryExcluded(ex.Name, req.Injuries) {
		score += injuryPenalty
	}
	return score
}

// HasEquipment reports whether the exercise can be done with the available
// equipment. An empty available list means no restriction.
func HasEquipment(ex models.Exercise, available []string) bool {
	if ex.NeedsNoEquipment() || len(available) == 0 {
		return true
	}
	have := make(map[string]bool, len(available))
	for _, e := range available {
		have[strings.ToLower(strings.TrimSpace(e))] = true
	}
	for _, t := range ex.Equipment {
		if have[t] {
			return true
		}
	}
	return false
}

// InjuryExcluded reports whether the exercise name contains a banned keyword
// for any of the given injury tags.
func InjuryExcluded(name string, injuries []string) bool {
	if len(injuries) == 0 {
		return false
	}
	low := strings.ToLower(name)
	for _, inj := range injuries {
		for _, kw := range injuryRules[inj] {
			if strings.Contains(low, kw) {
				return true
			}
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
