package intake

import "github.com/misterclayt0n/treino/internal/models"

var goalPhrases = map[string]models.Goal{
	"Lose body fat":     models.GoalFatLoss,
	"Build muscle":      models.GoalHypertrophy,
	"Get stronger":      models.GoalStrength,
	"Build endurance":   models.GoalEndurance,
	"Overall health":    models.GoalEndurance,
	"Sport performance": models.GoalPower,
	"Tone and sculpt":   models.GoalHypertrophy,
}

var experiencePhrases = map[string]models.Experience{
	"Complete beginner (never trained)":     models.Beginner,
	"Beginner\n(less than 6 months)":        models.Beginner,
	"Beginner (less than 6 months)":         models.Beginner,
	"Some experience\n(6 months - 2 years)": models.Intermediate,
	"Some experience (6 months - 2 years)":  models.Intermediate,
	"Experienced (2-5 years)":               models.Intermediate,
	"Very experienced\n(5+ years)":          models.Advanced,
	"Very experienced (5+ years)":           models.Advanced,
	"Beginner":                              models.Beginner,
}

var fullGym = []string{"barbell", "dumbbell", "cable", "machine", "bench", "kettlebell", "bands", "bodyweight", "cardio_machine"}

var equipmentPhrases = map[string][]string{
	"Just my bodyweight": {"bodyweight"},
	"Dumbbells":          {"dumbbell"},
	"Barbell":            {"barbell", "bench"},
	"Resistance bands":   {"bands"},
	"Kettlebells":        {"kettlebell"},
	"Full gym access":    fullGym,
	"Cardio machines":    {"cardio_machine", "machine", "bike", "rower", "treadmill", "elliptical", "stair"},
	"Yoga mat":           {"bodyweight", "stability ball"},
}

// Used only when no equipment was picked explicitly.
var locationEquipment = map[string][]string{
	"Home":             {"bodyweight", "bands", "dumbbell", "yoga_mat"},
	"Gym":              fullGym,
	"Outdoors":         {"bodyweight", "bands", "kettlebell"},
	"Mix of locations": {},
}

var focusMuscles = map[string][]string{
	"Upper body":          {"Chest", "Back", "Shoulders", "Arms", "Core"},
	"Lower body":          {"Quads", "Hamstrings", "Glutes", "Calves", "Core"},
	"Core/abs":            {"Core", "Obliques", "Lower Back"},
	"Cardio fitness":      {"Full Body", "Core"},
	"Flexibility":         {"Core", "Lower Back", "Obliques"},
	"Full body strength":  {"Full Body", "Core", "Back", "Quads", "Glutes"},
	"Functional movement": {"Full Body", "Core", "Back", "Glutes"},
}
