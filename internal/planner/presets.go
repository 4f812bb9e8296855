package planner

import (
	"sort"

	"github.com/misterclayt0n/treino/internal/models"
)

// GoalPreset holds the per-goal training parameters.
type GoalPreset struct {
	RepLow      int
	RepHigh     int
	RestSeconds int
	SetsMin     int
	SetsMax     int
	TempoPerRep float64 // Seconds per rep.
}

const (
	WarmupSeconds     = 8 * 60
	CooldownSeconds   = 5 * 60
	TransitionSeconds = 40
)

var goalPresets = map[models.Goal]GoalPreset{
	models.GoalFatLoss:       {RepLow: 10, RepHigh: 15, RestSeconds: 45, SetsMin: 2, SetsMax: 4, TempoPerRep: 2.5},
	models.GoalHypertrophy:   {RepLow: 8, RepHigh: 12, RestSeconds: 75, SetsMin: 3, SetsMax: 4, TempoPerRep: 3.0},
	models.GoalStrength:      {RepLow: 3, RepHigh: 6, RestSeconds: 150, SetsMin: 3, SetsMax: 5, TempoPerRep: 3.5},
	models.GoalEndurance:     {RepLow: 15, RepHigh: 25, RestSeconds: 40, SetsMin: 2, SetsMax: 4, TempoPerRep: 2.0},
	models.GoalPower:         {RepLow: 1, RepHigh: 3, RestSeconds: 210, SetsMin: 3, SetsMax: 5, TempoPerRep: 2.5},
	models.GoalCoreStability: {RepLow: 8, RepHigh: 15, RestSeconds: 60, SetsMin: 2, SetsMax: 4, TempoPerRep: 2.5},
}

// Order matters: it drives selection and fill order.
var goalMuscleBuckets = map[models.Goal][]string{
	models.GoalFatLoss:       {"Full Body", "Quads", "Hamstrings", "Glutes", "Back", "Chest", "Shoulders", "Core"},
	models.GoalHypertrophy:   {"Chest", "Back", "Shoulders", "Quads", "Hamstrings", "Glutes", "Arms", "Core", "Calves"},
	models.GoalStrength:      {"Quads", "Hamstrings", "Glutes", "Back", "Chest", "Shoulders", "Core"},
	models.GoalEndurance:     {"Full Body", "Core", "Back", "Quads", "Glutes"},
	models.GoalPower:         {"Quads", "Hamstrings", "Glutes", "Back", "Shoulders", "Core"},
	models.GoalCoreStability: {"Core", "Obliques", "Lower Back"},
}

// Injury tag -> lowercase substrings of exercise names to avoid.
var injuryRules = map[string][]string{
	"shoulder":   {"overhead press", "shoulder press", "push press", "snatch", "jerk", "handstand", "upright row", "behind-the-neck"},
	"elbow":      {"skullcrusher", "lying triceps extension", "close-grip bench", "ez bar curl", "preacher curl", "dip"},
	"wrist":      {"wrist curl", "reverse curl", "handstand", "clean", "snatch", "front rack"},
	"neck":       {"shrug", "behind-the-neck", "neck curl", "neck extension"},
	"upper_back": {"barbell row", "pendlay row", "seal row", "t-bar row", "bent-over row"},
	"lower_back": {"deadlift", "romanian deadlift", "rdl", "good morning", "back extension", "superman", "hyperextension", "heavy squat"},
	"hip":        {"sumo deadlift", "good morning", "hip thrust heavy", "deep squat", "wide-stance"},
	"groin":      {"sumo", "copenhagen", "side lunge", "cossack", "adductor"},
	"hamstring":  {"nordic", "good morning", "romanian deadlift", "hamstring curl"},
	"quad":       {"sissy squat", "leg extension", "pistol squat", "deep squat"},
	"knee":       {"deep squat", "sissy squat", "lunge", "step-up", "box jump", "leg extension"},
	"ankle":      {"jump rope", "calf raise heavy", "box jump", "plyometric"},
	"achilles":   {"box jump", "jump rope", "sprint", "plyometric"},
	"foot":       {"sprint", "box jump", "jump rope", "plyometric", "lateral hop"},
}

// Preset returns the base parameters for a goal. Unknown goals get the
// hypertrophy preset.
func Preset(goal models.Goal) GoalPreset {
	if p, ok := goalPresets[goal]; ok {
		return p
	}
	return goalPresets[models.GoalHypertrophy]
}

// MuscleBucket returns a copy of the goal's default muscle list.
func MuscleBucket(goal models.Goal) []string {
	return append([]string(nil), goalMuscleBuckets[goal]...)
}

// InjuryTags lists every injury tag the scorer knows about.
func InjuryTags() []string {
	tags := make([]string, 0, len(injuryRules))
	for tag := range injuryRules {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func inBucket(goal models.Goal, muscle string) bool {
	for _, m := range goalMuscleBuckets[goal] {
		if m == muscle {
			return true
		}
	}
	return false
}
