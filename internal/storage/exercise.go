package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/treino/internal/models"
	"github.com/misterclayt0n/treino/internal/utils"
)

// ImportExercises upserts the exercises by name in a single transaction.
// New exercises are appended after the existing ones so catalog order,
// which breaks scoring ties, is stable across imports.
func (s *Storage) ImportExercises(ctx context.Context, exercises []models.Exercise) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), -1) + 1 FROM exercises`).Scan(&next); err != nil {
		return fmt.Errorf("Failed to read catalog size: %w", err)
	}

	createdAt := time.Now().UTC().Format(time.RFC3339)
	for _, ex := range exercises {
		id := ex.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exercises
				(id, name, primary_muscle, category, experience, equipment, video, position, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(name) DO UPDATE SET
					primary_muscle = excluded.primary_muscle,
					category = excluded.category,
					experience = excluded.experience,
					equipment = excluded.equipment,
					video = excluded.video`,
			id,
			ex.Name,
			ex.PrimaryMuscle,
			ex.Category,
			string(ex.Experience),
			ex.EquipmentString(),
			ex.Video,
			next,
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("Failed to import exercise %s: %w", ex.Name, err)
		}
		next++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

// ListExercises returns the whole catalog in import order.
func (s *Storage) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, name, primary_muscle, category, experience, equipment, video, created_at
        FROM exercises
        ORDER BY position
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []models.Exercise
	for rows.Next() {
		var ex models.Exercise
		var experience, equipment, createdAt string

		err := rows.Scan(
			&ex.ID,
			&ex.Name,
			&ex.PrimaryMuscle,
			&ex.Category,
			&experience,
			&equipment,
			&ex.Video,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}

		ex.Experience = models.Experience(experience)
		ex.Equipment = utils.SplitTokens(equipment)
		ex.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate exercises: %w", err)
	}

	return exercises, nil
}

// DeleteExerciseByName removes one exercise from the catalog.
func (s *Storage) DeleteExerciseByName(ctx context.Context, name string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM exercises WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("Failed to delete exercise: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Exercise '%s' not found", name)
	}
	return nil
}
