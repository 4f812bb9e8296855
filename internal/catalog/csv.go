package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/misterclayt0n/treino/internal/models"
)

// LoadCSV reads a CSV export with a header row.
func LoadCSV(r io.Reader) ([]models.Exercise, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv rows: %w", err)
	}
	return normalizeTable(header, rows), nil
}
