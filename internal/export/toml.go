package export

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/misterclayt0n/treino/internal/models"
)

// WriteTOML encodes a session plan or program schedule.
func WriteTOML(w io.Writer, v interface{}) error {
	switch v.(type) {
	case *models.SessionPlan, *models.ProgramSchedule:
	default:
		return fmt.Errorf("cannot export %T", v)
	}
	if err := toml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}
