package planner

import (
	"testing"

	"github.com/misterclayt0n/treino/internal/models"
)

func TestWeekOverridesArePeriodic(t *testing.T) {
	for _, goal := range models.Goals {
		for w := 1; w <= 12; w++ {
			a, b := WeekOverrides(goal, w), WeekOverrides(goal, w+4)
			if a != b {
				t.Errorf("%s: week %d = %+v, week %d = %+v", goal, w, a, w+4, b)
			}
		}
	}
}

func TestPhase(t *testing.T) {
	tests := []struct{ week, want int }{
		{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 1}, {8, 4}, {9, 1}, {0, 4}, {-1, 3},
	}
	for _, tt := range tests {
		if got := Phase(tt.week); got != tt.want {
			t.Errorf("Phase(%d) = %d, want %d", tt.week, got, tt.want)
		}
	}
}

func TestWeekOverrides(t *testing.T) {
	tests := []struct {
		name string
		goal models.Goal
		week int
		want WeekOverride
	}{
		{"strength build", models.GoalStrength, 1, WeekOverride{RestSeconds: 150, SetsMin: 3, SetsMax: 5, RepLow: 3, RepHigh: 6, RPEText: "RPE 7", Phase: 1}},
		{"strength peak", models.GoalStrength, 3, WeekOverride{RestSeconds: 150, SetsMin: 3, SetsMax: 5, RepLow: 3, RepHigh: 6, RPEText: "RPE 8.5", Phase: 3}},
		{"strength deload", models.GoalStrength, 4, WeekOverride{RestSeconds: 150, SetsMin: 2, SetsMax: 4, RepLow: 3, RepHigh: 6, RPEText: "RPE 6–7", Phase: 4}},
		{"hypertrophy widens reps", models.GoalHypertrophy, 3, WeekOverride{RestSeconds: 75, SetsMin: 4, SetsMax: 5, RepLow: 9, RepHigh: 13, RPEText: "RPE 8", Phase: 3}},
		{"fat loss shorter rest", models.GoalFatLoss, 3, WeekOverride{RestSeconds: 35, SetsMin: 3, SetsMax: 5, RepLow: 10, RepHigh: 15, RPEText: "RPE 8", Phase: 3}},
		{"fat loss deload", models.GoalFatLoss, 8, WeekOverride{RestSeconds: 55, SetsMin: 1, SetsMax: 3, RepLow: 10, RepHigh: 15, RPEText: "RPE 6–7", Phase: 4}},
		{"power rest clamped", models.GoalPower, 1, WeekOverride{RestSeconds: 120, SetsMin: 3, SetsMax: 5, RepLow: 1, RepHigh: 3, RPEText: "RPE 7", Phase: 1}},
		{"endurance phase 2", models.GoalEndurance, 2, WeekOverride{RestSeconds: 35, SetsMin: 2, SetsMax: 4, RepLow: 15, RepHigh: 25, RPEText: "RPE 7.5", Phase: 2}},
		{"core deload", models.GoalCoreStability, 4, WeekOverride{RestSeconds: 65, SetsMin: 1, SetsMax: 3, RepLow: 8, RepHigh: 15, RPEText: "RPE 6–7", Phase: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOverrides(tt.goal, tt.week); got != tt.want {
				t.Errorf("WeekOverrides(%s, %d) = %+v, want %+v", tt.goal, tt.week, got, tt.want)
			}
		})
	}
}

func TestWeekOverrideApply(t *testing.T) {
	base := Preset(models.GoalHypertrophy)
	got := WeekOverrides(models.GoalHypertrophy, 3).Apply(base)
	if got.TempoPerRep != base.TempoPerRep {
		t.Errorf("tempo changed: %v -> %v", base.TempoPerRep, got.TempoPerRep)
	}
	if got.RepLow != 9 || got.RepHigh != 13 || got.SetsMin != 4 || got.SetsMax != 5 {
		t.Errorf("Apply = %+v", got)
	}
}
