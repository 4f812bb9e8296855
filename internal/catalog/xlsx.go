package catalog

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/misterclayt0n/treino/internal/models"
)

// LoadXLSX reads every sheet of a workbook. Each sheet has its own header
// row, so sheets may use different column spellings.
func LoadXLSX(path string) ([]models.Exercise, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var out []models.Exercise
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		out = append(out, normalizeTable(rows[0], rows[1:])...)
	}
	return out, nil
}
