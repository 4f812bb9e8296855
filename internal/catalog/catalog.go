// Package catalog loads exercise libraries from spreadsheets, CSV exports
// and TOML files into the canonical exercise schema.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

const (
	colName          = "name"
	colPrimaryMuscle = "primary_muscle"
	colCategory      = "category"
	colExperience    = "experience"
	colEquipment     = "equipment"
	colVideo         = "video"
)

// Source header (lowercased, trimmed) -> canonical column.
var columnAliases = map[string]string{
	"exercise name":    colName,
	"exercise_name":    colName,
	"name":             colName,
	"primary muscle":   colPrimaryMuscle,
	"primary_muscle":   colPrimaryMuscle,
	"category":         colCategory,
	"experience level": colExperience,
	"experience":       colExperience,
	"expereince_level": colExperience,
	"video url":        colVideo,
	"video_link":       colVideo,
	"video":            colVideo,
	"equipment":        colEquipment,
}

var experienceFixes = map[string]models.Experience{
	"Beginners":    models.Beginner,
	"Intermedaite": models.Intermediate,
	"Adv":          models.Advanced,
}

// Load reads a catalog file, picking the format from its extension.
func Load(path string) ([]models.Exercise, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening catalog: %w", err)
		}
		defer f.Close()
		return LoadCSV(f)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	case ".toml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog: %w", err)
		}
		return LoadTOML(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
}

// CanonicalColumn maps a source header to its canonical column name, or ""
// when the column is not part of the schema.
func CanonicalColumn(header string) string {
	return columnAliases[strings.ToLower(strings.TrimSpace(header))]
}

// NormalizeExperience title-cases the level and fixes known typos.
func NormalizeExperience(s string) models.Experience {
	t := utils.TitleCase(s)
	if fixed, ok := experienceFixes[t]; ok {
		return fixed
	}
	return models.Experience(t)
}

// normalizeRow turns a canonical-column record into an exercise. Missing
// columns default to empty. ok is false for rows without a name.
func normalizeRow(rec map[string]string) (models.Exercise, bool) {
	name := strings.TrimSpace(rec[colName])
	if name == "" {
		return models.Exercise{}, false
	}
	return models.Exercise{
		Name:          name,
		PrimaryMuscle: utils.TitleCase(rec[colPrimaryMuscle]),
		Category:      utils.TitleCase(rec[colCategory]),
		Experience:    NormalizeExperience(rec[colExperience]),
		Equipment:     utils.SplitTokens(rec[colEquipment]),
		Video:         strings.TrimSpace(rec[colVideo]),
	}, true
}

// normalizeTable converts a header row plus data rows. Rows may be shorter
// than the header.
func normalizeTable(header []string, rows [][]string) []models.Exercise {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = CanonicalColumn(h)
	}

	var out []models.Exercise
	for _, row := range rows {
		rec := make(map[string]string, len(cols))
		for i, col := range cols {
			if col == "" || i >= len(row) {
				continue
			}
			// First matching column wins.
			if _, dup := rec[col]; !dup {
				rec[col] = row[i]
			}
		}
		if ex, ok := normalizeRow(rec); ok {
			out = append(out, ex)
		}
	}
	return out
}
