// Package export writes generated sessions and programs to spreadsheets
// and TOML files.
package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/misterclayt0n/treino/internal/models"
)

const (
	SheetSession  = "Session"
	SheetSummary  = "Summary"
	SheetProgram  = "Program"
	SheetSchedule = "Schedule"
)

var exerciseHeader = []interface{}{
	"Exercise", "Primary muscle", "Category", "Experience", "Sets", "Reps",
	"Load prescription", "Rest (s)", "Est. time (s)", "Est. time (min)", "Video",
}

var summaryHeader = []interface{}{"Total session (min)", "Warm-up (min)", "Cool-down (min)", "Exercises"}

var scheduleHeader = []interface{}{
	"Week", "Day", "Session ID", "Targets", "RPE target (week)", "Phase (1-3=build,4=deload)",
	"Total session (min)", "Warm-up (min)", "Cool-down (min)", "Exercises",
}

func exerciseRow(pe models.PlannedExercise) []interface{} {
	var reps interface{} = pe.Reps.Count
	if pe.Reps.Label != "" {
		reps = pe.Reps.Label
	}
	var rest interface{} = pe.RestSeconds
	if pe.RestNote != "" {
		rest = pe.RestNote
	}
	return []interface{}{
		pe.Exercise, pe.PrimaryMuscle, pe.Category, string(pe.Experience), pe.Sets, reps,
		pe.LoadPrescription, rest, pe.EstimatedSeconds, pe.EstimatedMinutes(), pe.Video,
	}
}

func summaryRow(s models.SessionSummary) []interface{} {
	return []interface{}{s.TotalMinutes, s.WarmupMinutes, s.CooldownMinutes, s.Exercises}
}

func newWorkbook(first string) (*excelize.File, int, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", first); err != nil {
		f.Close()
		return nil, 0, err
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, style, nil
}

func writeTable(f *excelize.File, sheet string, headerStyle int, header []interface{}, rows [][]interface{}) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", end, headerStyle); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// WriteSessionXLSX writes a session plan and its summary to path.
func WriteSessionXLSX(path string, plan *models.SessionPlan) error {
	f, style, err := newWorkbook(SheetSession)
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	defer f.Close()

	rows := make([][]interface{}, 0, len(plan.Exercises))
	for _, pe := range plan.Exercises {
		rows = append(rows, exerciseRow(pe))
	}
	if err := writeTable(f, SheetSession, style, exerciseHeader, rows); err != nil {
		return fmt.Errorf("writing %s sheet: %w", SheetSession, err)
	}
	if err := writeTable(f, SheetSummary, style, summaryHeader, [][]interface{}{summaryRow(plan.Summary)}); err != nil {
		return fmt.Errorf("writing %s sheet: %w", SheetSummary, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// WriteProgramXLSX writes every session row of a program plus one schedule
// row per session.
func WriteProgramXLSX(path string, prog *models.ProgramSchedule) error {
	f, style, err := newWorkbook(SheetProgram)
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	defer f.Close()

	programHeader := append([]interface{}{"Week", "Day", "Session ID"}, exerciseHeader...)
	programHeader = append(programHeader, "RPE target (week)", "Phase (1-3=build,4=deload)")

	var rows, schedule [][]interface{}
	for _, s := range prog.Sessions {
		for _, pe := range s.Plan.Exercises {
			row := append([]interface{}{s.Week, s.Day, s.SessionID}, exerciseRow(pe)...)
			rows = append(rows, append(row, s.RPETarget, s.Phase))
		}
		sched := []interface{}{s.Week, s.Day, s.SessionID, strings.Join(s.Targets, ", "), s.RPETarget, s.Phase}
		schedule = append(schedule, append(sched, summaryRow(s.Plan.Summary)...))
	}

	if err := writeTable(f, SheetProgram, style, programHeader, rows); err != nil {
		return fmt.Errorf("writing %s sheet: %w", SheetProgram, err)
	}
	if err := writeTable(f, SheetSchedule, style, scheduleHeader, schedule); err != nil {
		return fmt.Errorf("writing %s sheet: %w", SheetSchedule, err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
