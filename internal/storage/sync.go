package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/treino/internal/catalog"
	"github.com/misterclayt0n/treino/internal/models"
)

// ExportCatalogToTOML writes the whole catalog as [[exercise]] tables, the
// same format import-exercises reads back.
func (s *Storage) ExportCatalogToTOML(ctx context.Context, w io.Writer) error {
	exercises, err := s.ListExercises(ctx)
	if err != nil {
		return err
	}

	dump := models.ExerciseImport{Exercises: make([]models.ExerciseDefTOML, 0, len(exercises))}
	for _, ex := range exercises {
		dump.Exercises = append(dump.Exercises, models.ExerciseDefTOML{
			Name:          ex.Name,
			PrimaryMuscle: ex.PrimaryMuscle,
			Category:      ex.Category,
			Experience:    string(ex.Experience),
			Equipment:     ex.EquipmentString(),
			Video:         ex.Video,
		})
	}

	if err := toml.NewEncoder(w).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// ExportCatalogToFile writes the TOML dump to outputPath, relative to the
// current directory.
func (s *Storage) ExportCatalogToFile(ctx context.Context, outputPath string) error {
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	if err := s.ExportCatalogToTOML(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}

// ImportCatalogFile loads any supported catalog file and upserts it.
// It returns the number of exercises read.
func (s *Storage) ImportCatalogFile(ctx context.Context, path string) (int, error) {
	exercises, err := catalog.Load(path)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}
	if err := s.ImportExercises(ctx, exercises); err != nil {
		return 0, err
	}
	return len(exercises), nil
}
