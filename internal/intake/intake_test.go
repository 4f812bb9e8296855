package intake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/misterclayt0n/treino/internal/models"
)

func TestNormalizeFullPayload(t *testing.T) {
	minutes := 150
	ui := UIPayload{
		Goal:       "Get stronger",
		Experience: "Very experienced\n(5+ years)",
		Location:   "Home",
		Equipment:  StringList{"Dumbbells", "Barbell"},
		Focus:      StringList{"Lower body", "Core/abs"},
		Minutes:    LooseInt{Value: minutes, Valid: true},
		Injuries:   StringList{"Lower back", " Knee ", ""},
	}

	got := Normalize(ui)
	want := models.Request{
		Goal:                models.GoalStrength,
		Experience:          models.Advanced,
		TotalSessionMinutes: 120,
		AvailableEquipment:  []string{"barbell", "bench", "dumbbell"},
		TargetMuscles:       []string{"Calves", "Core", "Glutes", "Hamstrings", "Lower Back", "Obliques", "Quads"},
		Injuries:            []string{"lower_back", "knee"},
		RequireCardio:       false,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize =\n%+v\nwant\n%+v", got, want)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize(UIPayload{Goal: "Become a wizard", Experience: "Somewhat"})

	if got.Goal != models.GoalHypertrophy {
		t.Errorf("goal = %q, want hypertrophy", got.Goal)
	}
	if got.Experience != models.Beginner {
		t.Errorf("experience = %q, want Beginner", got.Experience)
	}
	if got.TotalSessionMinutes != 45 {
		t.Errorf("minutes = %d, want 45", got.TotalSessionMinutes)
	}
	// Blank location means gym, which includes cardio machines.
	if !reflect.DeepEqual(got.AvailableEquipment, []string{"bands", "barbell", "bench", "bodyweight", "cable", "cardio_machine", "dumbbell", "kettlebell", "machine"}) {
		t.Errorf("equipment = %v", got.AvailableEquipment)
	}
	if !got.RequireCardio {
		t.Error("gym equipment includes cardio machines, cardio should be required")
	}
	if len(got.TargetMuscles) != 0 || len(got.Injuries) != 0 {
		t.Errorf("targets/injuries = %v/%v, want empty", got.TargetMuscles, got.Injuries)
	}
}

func TestNormalizeClampsShortSessions(t *testing.T) {
	minutes := 5
	got := Normalize(UIPayload{Minutes: LooseInt{Value: minutes, Valid: true}})
	if got.TotalSessionMinutes != 20 {
		t.Errorf("minutes = %d, want 20", got.TotalSessionMinutes)
	}
}

func TestMergeLocationEquipment(t *testing.T) {
	tests := []struct {
		name      string
		equipment []string
		location  string
		want      []string
	}{
		{"home defaults expand yoga mat", nil, "Home", []string{"bands", "bodyweight", "dumbbell", "stability ball"}},
		{"explicit choice beats location", []string{"kettlebell"}, "Gym", []string{"kettlebell"}},
		{"mixed locations add nothing", nil, "Mix of locations", []string{}},
		{"unknown location adds nothing", nil, "Moon", []string{}},
		{"outdoors", nil, "Outdoors", []string{"bands", "bodyweight", "kettlebell"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeLocationEquipment(tt.equipment, tt.location)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeLocationEquipment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeCardioFocus(t *testing.T) {
	got := Normalize(UIPayload{Location: "Outdoors", Focus: StringList{"Cardio fitness"}})
	if !got.RequireCardio {
		t.Error("cardio focus should require cardio")
	}
	if !reflect.DeepEqual(got.TargetMuscles, []string{"Core", "Full Body"}) {
		t.Errorf("targets = %v", got.TargetMuscles)
	}
}

func TestDecodePayloadYAML(t *testing.T) {
	src := `
Specific Goals: Lose body fat
Training Experience: Experienced (2-5 years)
Training Locations: Gym
Available Equipments: Kettlebells
Specific Areas to Focus on:
  - Upper body
total_session_minutes: 30
injuries: shoulder
`
	p, err := DecodePayload(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Goal != "Lose body fat" || p.Experience != "Experienced (2-5 years)" {
		t.Errorf("goal/experience = %q/%q", p.Goal, p.Experience)
	}
	if !reflect.DeepEqual(p.Equipment, StringList{"Kettlebells"}) {
		t.Errorf("equipment = %v", p.Equipment)
	}
	if !reflect.DeepEqual(p.Focus, StringList{"Upper body"}) {
		t.Errorf("focus = %v", p.Focus)
	}
	if !p.Minutes.Valid || p.Minutes.Value != 30 {
		t.Errorf("minutes = %v", p.Minutes)
	}

	req := Normalize(p)
	if req.Goal != models.GoalFatLoss || req.Experience != models.Intermediate {
		t.Errorf("request goal/experience = %s/%s", req.Goal, req.Experience)
	}
	if !reflect.DeepEqual(req.AvailableEquipment, []string{"kettlebell"}) {
		t.Errorf("request equipment = %v", req.AvailableEquipment)
	}
	if !reflect.DeepEqual(req.Injuries, []string{"shoulder"}) {
		t.Errorf("request injuries = %v", req.Injuries)
	}
}

func TestDecodePayloadJSON(t *testing.T) {
	src := `{"Specific Goals": "Build muscle", "Available Equipments": ["Dumbbells", "Yoga mat"], "injuries": ["Upper back"]}`
	p, err := DecodePayload(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := Normalize(p)
	if req.Goal != models.GoalHypertrophy {
		t.Errorf("goal = %s", req.Goal)
	}
	if !reflect.DeepEqual(req.AvailableEquipment, []string{"bodyweight", "dumbbell", "stability ball"}) {
		t.Errorf("equipment = %v", req.AvailableEquipment)
	}
	if !reflect.DeepEqual(req.Injuries, []string{"upper_back"}) {
		t.Errorf("injuries = %v", req.Injuries)
	}
}

func TestDecodePayloadRejectsMaps(t *testing.T) {
	if _, err := DecodePayload(strings.NewReader("injuries:\n  knee: true\n")); err == nil {
		t.Error("expected error for a map where a list is expected")
	}
}

func TestDecodePayloadLooseMinutes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"yaml number", "total_session_minutes: 60\n", 60},
		{"yaml string", "total_session_minutes: \"45\"\n", 45},
		{"yaml float", "total_session_minutes: 50.7\n", 50},
		{"json string", `{"total_session_minutes": "75"}`, 75},
		{"unparsable", "total_session_minutes: an hour\n", defaultMinutes},
		{"list", "total_session_minutes: [30]\n", defaultMinutes},
		{"null", "total_session_minutes: null\n", defaultMinutes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePayload(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := Normalize(p).TotalSessionMinutes; got != tt.want {
				t.Errorf("minutes = %d, want %d", got, tt.want)
			}
		})
	}
}
