package planner

import (
	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

const cycleWeeks = 4

// WeekOverride is the set of preset values replaced for one week of a program.
type WeekOverride struct {
	RestSeconds int    `json:"rest_s"`
	SetsMin     int    `json:"sets_min"`
	SetsMax     int    `json:"sets_max"`
	RepLow      int    `json:"rep_low"`
	RepHigh     int    `json:"rep_high"`
	RPEText     string `json:"rpe_text"`
	Phase       int    `json:"phase"` // 1-3 build, 4 deload.
}

type phaseDelta struct {
	rest     int
	sets     int
	repShift int
	rpe      string
}

type periodizationRule struct {
	clampRest        bool
	restMin, restMax int
	phases           [cycleWeeks]phaseDelta
}

var (
	fatLossRule = periodizationRule{
		clampRest: true, restMin: 25, restMax: 120,
		phases: [cycleWeeks]phaseDelta{
			{rest: 0, sets: 0, rpe: "RPE 7–8"},
			{rest: -5, sets: 0, rpe: "RPE 7.5–8"},
			{rest: -10, sets: 1, rpe: "RPE 8"},
			{rest: 10, sets: -1, rpe: "RPE 6–7"},
		},
	}
	hypertrophyRule = periodizationRule{
		phases: [cycleWeeks]phaseDelta{
			{sets: 0, rpe: "RPE 7–8"},
			{sets: 1, rpe: "RPE 7.5–8"},
			{sets: 1, repShift: 1, rpe: "RPE 8"},
			{sets: -1, rpe: "RPE 6–7"},
		},
	}
	strengthRule = periodizationRule{
		phases: [cycleWeeks]phaseDelta{
			{rpe: "RPE 7"},
			{rpe: "RPE 8"},
			{rpe: "RPE 8.5"},
			{sets: -1, rpe: "RPE 6–7"},
		},
	}
	// Endurance, power and core stability share one cycle.
	generalRule = periodizationRule{
		clampRest: true, restMin: 20, restMax: 120,
		phases: [cycleWeeks]phaseDelta{
			{rest: 0, sets: 0, rpe: "RPE 7"},
			{rest: -5, sets: 0, rpe: "RPE 7.5"},
			{rest: -10, sets: 1, rpe: "RPE 8"},
			{rest: 5, sets: -1, rpe: "RPE 6–7"},
		},
	}
)

func ruleFor(goal models.Goal) periodizationRule {
	switch goal {
	case models.GoalFatLoss:
		return fatLossRule
	case models.GoalHypertrophy:
		return hypertrophyRule
	case models.GoalStrength:
		return strengthRule
	default:
		return generalRule
	}
}

// Phase maps a 1-based week number onto the 4-week cycle.
func Phase(week int) int {
	return ((week-1)%cycleWeeks+cycleWeeks)%cycleWeeks + 1
}

// WeekOverrides derives the preset overrides for a given week of a program.
func WeekOverrides(goal models.Goal, week int) WeekOverride {
	base := Preset(goal)
	phase := Phase(week)
	rule := ruleFor(goal)
	d := rule.phases[phase-1]

	rest := base.RestSeconds
	if rule.clampRest {
		rest = utils.ClampInt(base.RestSeconds+d.rest, rule.restMin, rule.restMax)
	}
	setsMin := max(1, base.SetsMin+d.sets)
	setsMax := max(setsMin, base.SetsMax+d.sets)

	return WeekOverride{
		RestSeconds: rest,
		SetsMin:     setsMin,
		SetsMax:     setsMax,
		RepLow:      base.RepLow + d.repShift,
		RepHigh:     base.RepHigh + d.repShift,
		RPEText:     d.rpe,
		Phase:       phase,
	}
}

// Apply returns the preset with the week's values substituted in.
func (w WeekOverride) Apply(p GoalPreset) GoalPreset {
	p.RestSeconds = w.RestSeconds
	p.SetsMin = w.SetsMin
	p.SetsMax = w.SetsMax
	p.RepLow = w.RepLow
	p.RepHigh = w.RepHigh
	return p
}
