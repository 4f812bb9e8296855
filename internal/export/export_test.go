package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"

	"github.com/misterclayt0n/treino/internal/models"
)

func samplePlan() models.SessionPlan {
	return models.SessionPlan{
		Exercises: []models.PlannedExercise{
			{
				Exercise: "Back Squat", PrimaryMuscle: "Quads", Category: "Compound", Experience: models.Intermediate,
				Sets: 5, Reps: models.RepCount(5), RestSeconds: 150, LoadPrescription: "80–90% 1RM (RPE 8–9)",
				EstimatedSeconds: 806,
			},
			{
				Exercise: "Finisher: EMOM — Burpees or KB Swings", PrimaryMuscle: "Full Body", Category: "Conditioning",
				Experience: models.Beginner, Sets: 6, Reps: models.RepLabel("EMOM 10–15 reps"), RestNote: "Balance of minute",
				LoadPrescription: "Bodyweight/Light KB", EstimatedSeconds: 360,
			},
		},
		Summary: models.SessionSummary{TotalSeconds: 1946, TotalMinutes: 32.4, WarmupMinutes: 8, CooldownMinutes: 5, Exercises: 2},
	}
}

func TestWriteSessionXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.xlsx")
	plan := samplePlan()
	if err := WriteSessionXLSX(path, &plan); err != nil {
		t.Fatalf("WriteSessionXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != SheetSession || sheets[1] != SheetSummary {
		t.Fatalf("sheets = %v", sheets)
	}

	rows, err := f.GetRows(SheetSession)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Exercise" || rows[1][0] != "Back Squat" {
		t.Errorf("unexpected first column: %q, %q", rows[0][0], rows[1][0])
	}
	if rows[1][5] != "5" {
		t.Errorf("reps = %q, want 5", rows[1][5])
	}
	if rows[2][5] != "EMOM 10–15 reps" || rows[2][7] != "Balance of minute" {
		t.Errorf("finisher row = %v", rows[2])
	}

	summary, err := f.GetRows(SheetSummary)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(summary) != 2 || summary[1][0] != "32.4" || summary[1][3] != "2" {
		t.Errorf("summary = %v", summary)
	}
}

func TestWriteProgramXLSX(t *testing.T) {
	plan := samplePlan()
	prog := models.ProgramSchedule{
		Goal: models.GoalStrength, Weeks: 1, DaysPerWeek: 2,
		Sessions: []models.ScheduledSession{
			{Week: 1, Day: 1, SessionID: "W1D01", Targets: []string{"Quads", "Glutes"}, RPETarget: "RPE 7–8", Phase: 1, Plan: plan},
			{Week: 1, Day: 2, SessionID: "W1D02", Targets: []string{"Back"}, RPETarget: "RPE 7–8", Phase: 1, Plan: plan},
		},
	}
	path := filepath.Join(t.TempDir(), "program.xlsx")
	if err := WriteProgramXLSX(path, &prog); err != nil {
		t.Fatalf("WriteProgramXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetProgram)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d program rows, want header + 4", len(rows))
	}
	if rows[3][2] != "W1D02" || rows[3][3] != "Back Squat" {
		t.Errorf("row 3 = %v", rows[3])
	}

	sched, err := f.GetRows(SheetSchedule)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(sched) != 3 {
		t.Fatalf("got %d schedule rows, want header + 2", len(sched))
	}
	if sched[1][3] != "Quads, Glutes" || sched[2][2] != "W1D02" {
		t.Errorf("schedule = %v", sched)
	}
}

func TestWriteTOML(t *testing.T) {
	plan := samplePlan()
	var buf bytes.Buffer
	if err := WriteTOML(&buf, &plan); err != nil {
		t.Fatalf("WriteTOML: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`exercise = "Back Squat"`, `reps = "5"`, `reps = "EMOM 10–15 reps"`, "[summary]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	var decoded map[string]interface{}
	if _, err := toml.Decode(out, &decoded); err != nil {
		t.Fatalf("output is not valid TOML: %v", err)
	}
}

func TestWriteTOMLRejectsOtherTypes(t *testing.T) {
	if err := WriteTOML(&bytes.Buffer{}, "nope"); err == nil {
		t.Fatal("expected an error")
	}
}
