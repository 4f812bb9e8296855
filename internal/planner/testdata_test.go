package planner

import "github.com/misterclayt0n/treino/internal/models"

func testCatalog() []models.Exercise {
	return []models.Exercise{
		{Name: "Back Squat", PrimaryMuscle: "Quads", Category: "Strength", Experience: models.Beginner, Equipment: []string{"barbell"}},
		{Name: "Romanian Deadlift", PrimaryMuscle: "Hamstrings", Category: "Strength", Experience: models.Intermediate, Equipment: []string{"barbell"}},
		{Name: "Hip Thrust", PrimaryMuscle: "Glutes", Category: "Strength", Experience: models.Beginner, Equipment: []string{"barbell", "bench"}},
		{Name: "Pull-Up", PrimaryMuscle: "Back", Category: "Strength", Experience: models.Intermediate, Equipment: []string{"bodyweight"}},
		{Name: "Bench Press", PrimaryMuscle: "Chest", Category: "Strength", Experience: models.Beginner, Equipment: []string{"barbell", "bench"}},
		{Name: "Overhead Press", PrimaryMuscle: "Shoulders", Category: "Strength", Experience: models.Intermediate, Equipment: []string{"barbell"}},
		{Name: "Plank", PrimaryMuscle: "Core", Category: "Core", Experience: models.Beginner},
		{Name: "Bicep Curl", PrimaryMuscle: "Arms", Category: "Isolation", Experience: models.Beginner, Equipment: []string{"dumbbell"}},
		{Name: "Rowing Machine", PrimaryMuscle: "Full Body", Category: "Cardio", Experience: models.Beginner, Equipment: []string{"rower"}},
		{Name: "Standing Calf Raise", PrimaryMuscle: "Calves", Category: "Isolation", Experience: models.Beginner, Equipment: []string{"machine"}},
		{Name: "Pistol Squat", PrimaryMuscle: "Quads", Category: "Strength", Experience: models.Advanced},
		{Name: "Side Plank", PrimaryMuscle: "Obliques", Category: "Core", Experience: models.Beginner},
		{Name: "Bird Dog", PrimaryMuscle: "Lower Back", Category: "Core", Experience: models.Beginner},
	}
}
