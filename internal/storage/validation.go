package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (s *Storage) ExerciseExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM exercises WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("failed to check exercise existence: %w", err)
	}

	return exists, nil
}
