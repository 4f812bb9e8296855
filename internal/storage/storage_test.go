package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/misterclayt0n/treino/internal/catalog"
	"github.com/misterclayt0n/treino/internal/models"
)

func openTemp(t *testing.T) *Storage {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"libsql://treino.turso.io?authToken=x", "libsql"},
		{"https://treino.turso.io", "libsql"},
		{"file:./local.db", "sqlite"},
		{"/tmp/catalog.db", "sqlite"},
	}
	for _, tt := range tests {
		if got := driverFor(tt.dsn); got != tt.want {
			t.Errorf("driverFor(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestImportAndListExercises(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	in := []models.Exercise{
		{Name: "Back Squat", PrimaryMuscle: "Quads", Category: "Strength", Experience: models.Beginner, Equipment: []string{"barbell", "rack"}},
		{Name: "Plank", PrimaryMuscle: "Core", Category: "Core", Experience: models.Beginner},
	}
	if err := st.ImportExercises(ctx, in); err != nil {
		t.Fatalf("import: %v", err)
	}
	// Re-importing updates in place and appends new rows at the end.
	update := []models.Exercise{
		{Name: "Pull-Up", PrimaryMuscle: "Back", Category: "Strength", Experience: models.Intermediate, Equipment: []string{"bodyweight"}},
		{Name: "Back Squat", PrimaryMuscle: "Quads", Category: "Strength", Experience: models.Intermediate, Equipment: []string{"barbell"}, Video: "https://v/sq"},
	}
	if err := st.ImportExercises(ctx, update); err != nil {
		t.Fatalf("re-import: %v", err)
	}

	got, err := st.ListExercises(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, ex := range got {
		names = append(names, ex.Name)
		if ex.ID == "" {
			t.Errorf("%s has no id", ex.Name)
		}
	}
	if want := []string{"Back Squat", "Plank", "Pull-Up"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	squat := got[0]
	if squat.Experience != models.Intermediate || squat.Video != "https://v/sq" || !reflect.DeepEqual(squat.Equipment, []string{"barbell"}) {
		t.Errorf("squat not updated: %+v", squat)
	}
	if len(got[1].Equipment) != 0 {
		t.Errorf("plank equipment = %v, want none", got[1].Equipment)
	}
}

func TestExerciseExistsAndDelete(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	if err := st.ImportExercises(ctx, []models.Exercise{{Name: "Plank"}}); err != nil {
		t.Fatal(err)
	}

	ok, err := st.ExerciseExists(ctx, "Plank")
	if err != nil || !ok {
		t.Fatalf("ExerciseExists(Plank) = %v, %v", ok, err)
	}
	if err := st.DeleteExerciseByName(ctx, "Plank"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	ok, err = st.ExerciseExists(ctx, "Plank")
	if err != nil || ok {
		t.Fatalf("ExerciseExists after delete = %v, %v", ok, err)
	}
	if err := st.DeleteExerciseByName(ctx, "Plank"); err == nil {
		t.Error("expected error deleting a missing exercise")
	}
}

func TestCatalogTOMLRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	in := []models.Exercise{
		{Name: "Bench Press", PrimaryMuscle: "Chest", Category: "Strength", Experience: models.Beginner, Equipment: []string{"barbell", "bench"}},
		{Name: "Side Plank", PrimaryMuscle: "Obliques", Category: "Core", Experience: models.Intermediate},
	}
	if err := st.ImportExercises(ctx, in); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportCatalogToTOML(ctx, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	back, err := catalog.LoadTOML(buf.Bytes())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(back, in) {
		t.Errorf("round trip =\n%+v\nwant\n%+v", back, in)
	}
}

func TestImportCatalogFile(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	path := filepath.Join(t.TempDir(), "library.csv")
	csv := "Exercise Name,Primary Muscle,Experience Level\nGoblet Squat,quads,beginners\nNordic Curl,hamstrings,adv\n"
	if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := st.ImportCatalogFile(ctx, path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d, want 2", n)
	}
	ok, err := st.ExerciseExists(ctx, "Nordic Curl")
	if err != nil || !ok {
		t.Errorf("Nordic Curl missing: %v, %v", ok, err)
	}
}

func TestExportCatalogToFile(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	if err := st.ImportExercises(ctx, []models.Exercise{{Name: "Plank", PrimaryMuscle: "Core", Category: "Core", Experience: models.Beginner}}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "dump.toml")
	if err := st.ExportCatalogToFile(ctx, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	back, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(back) != 1 || back[0].Name != "Plank" {
		t.Errorf("reloaded %+v", back)
	}

	missingDir := filepath.Join(t.TempDir(), "missing", "dump.toml")
	if err := st.ExportCatalogToFile(ctx, missingDir); err == nil {
		t.Error("expected an error writing into a missing directory")
	}
}
