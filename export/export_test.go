package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"beyond531/config"
	"beyond531/program"
)

func sampleProgram() program.TrainingProgram {
	return program.Generate(config.DefaultOneRepMax())
}

func countPrescriptions(prog program.TrainingProgram) int {
	n := 0
	for _, w := range prog.Weeks {
		for _, s := range w.Sessions {
			n += len(s.Exercises)
		}
	}
	return n
}

func TestWriteCSV(t *testing.T) {
	prog := sampleProgram()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if diff := cmp.Diff(csvHeader, rows[0]); diff != "" {
		t.Errorf("header (-want +got):\n%s", diff)
	}
	if got, want := len(rows)-1, countPrescriptions(prog); got != want {
		t.Errorf("data rows = %d, want %d", got, want)
	}

	first := []string{"1", "Monday", "Front Squat", "3", "5", "65", "65%"}
	if diff := cmp.Diff(first, rows[1]); diff != "" {
		t.Errorf("first row (-want +got):\n%s", diff)
	}

	var amrap []string
	for _, r := range rows[1:] {
		if r[0] == "1" && r[1] == "Friday" && r[2] == "Deadlift" && r[6] == "80%" {
			amrap = r
		}
	}
	if diff := cmp.Diff([]string{"1", "Friday", "Deadlift", "1", "5+", "95", "80%"}, amrap); diff != "" {
		t.Errorf("amrap row (-want +got):\n%s", diff)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	prog := sampleProgram()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"week_number": 4`) {
		t.Errorf("json missing week_number field:\n%s", buf.String())
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(prog, back); diff != "" {
		t.Errorf("round trip changed program (-want +got):\n%s", diff)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestWriteXLSX(t *testing.T) {
	prog := sampleProgram()
	path := filepath.Join(t.TempDir(), "cycle.xlsx")

	if err := ToFile(path, config.FormatXLSX, prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Week 1", "Week 2", "Week 3", "Week 4"}
	if diff := cmp.Diff(want, f.GetSheetList()); diff != "" {
		t.Errorf("sheets (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows("Week 4")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	// header + 3 Monday lines + 15 max-test singles
	if len(rows) != 19 {
		t.Fatalf("week 4 rows = %d, want 19", len(rows))
	}
	last := rows[len(rows)-1]
	if last[1] != "Bench Press - BEYOND!" || last[6] != "Bench Press - BEYOND!: 85kg (105%)" {
		t.Errorf("last row = %v", last)
	}
}

func TestToFileFormats(t *testing.T) {
	prog := sampleProgram()
	dir := t.TempDir()

	for _, format := range []string{config.FormatText, config.FormatCSV, config.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "cycle"+Extension(format))
			if err := ToFile(path, format, prog); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), "BEYOND!") {
				t.Errorf("%s output missing week 4 max test", format)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cycle.pdf")
	err := ToFile(path, "pdf", sampleProgram())
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("file created for unknown format")
	}

	if err := Write(&bytes.Buffer{}, "pdf", sampleProgram()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Write err = %v, want ErrUnknownFormat", err)
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(config.FormatText); got != ".txt" {
		t.Errorf("Extension(text) = %q", got)
	}
	if got := Extension(config.FormatXLSX); got != ".xlsx" {
		t.Errorf("Extension(xlsx) = %q", got)
	}
}
