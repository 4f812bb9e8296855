package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/treino/internal/models"
)

// LoadTOML reads a catalog written as [[exercise]] tables.
func LoadTOML(data []byte) ([]models.Exercise, error) {
	var importData models.ExerciseImport
	if err := toml.Unmarshal(data, &importData); err != nil {
		return nil, fmt.Errorf("invalid TOML format: %w", err)
	}

	var out []models.Exercise
	for _, def := range importData.Exercises {
		ex, ok := normalizeRow(map[string]string{
			colName:          def.Name,
			colPrimaryMuscle: def.PrimaryMuscle,
			colCategory:      def.Category,
			colExperience:    def.Experience,
			colEquipment:     def.Equipment,
			colVideo:         def.Video,
		})
		if ok {
			out = append(out, ex)
		}
	}
	return out, nil
}
