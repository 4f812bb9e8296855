package models

import (
	"strings"
	"time"
)

type Experience string

const (
	Beginner     Experience = "Beginner"
	Intermediate Experience = "Intermediate"
	Advanced     Experience = "Advanced"
)

// Level returns the ordinal of the experience level.
// Anything unknown ranks as a beginner.
func (e Experience) Level() int {
	switch e {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	default:
		return 0
	}
}

// Exercise is one row of the exercise catalog. Catalog entries are never
// mutated after load.
type Exercise struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	PrimaryMuscle string     `json:"primary_muscle"`
	Category      string     `json:"category"`
	Experience    Experience `json:"experience"`
	Equipment     []string   `json:"equipment"` // Lowercase tokens. Empty means no equipment needed.
	Video         string     `json:"video,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
}

// NeedsNoEquipment reports whether the exercise can be done without any gear.
func (e Exercise) NeedsNoEquipment() bool {
	if len(e.Equipment) == 0 {
		return true
	}
	return len(e.Equipment) == 1 && e.Equipment[0] == "bodyweight"
}

// EquipmentString joins the equipment tokens the way the source sheets store them.
func (e Exercise) EquipmentString() string {
	return strings.Join(e.Equipment, ", ")
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name          string `toml:"name"`
	PrimaryMuscle string `toml:"primary_muscle"`
	Category      string `toml:"category"`
	Experience    string `toml:"experience"`
	Equipment     string `toml:"equipment"`
	Video         string `toml:"video"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
