package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"beyond531/config"
	"beyond531/program"
)

func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReaderFrom(strings.NewReader(input), &out), &out
}

func TestGatherMaxes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  config.OneRepMax
	}{
		{"all entered", "110\n150\n92.5\n", config.OneRepMax{FrontSquat: 110, Deadlift: 150, BenchPress: 92.5}},
		{"defaults kept", "\n\n\n", config.DefaultOneRepMax()},
		{"bad input re-asked", "abc\n-5\n0\n105\n\n90\n", config.OneRepMax{FrontSquat: 105, Deadlift: 120, BenchPress: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestReader(tt.input)
			got, err := r.GatherMaxes(config.DefaultOneRepMax())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GatherMaxes() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGatherMaxesRepromptsOnInvalid(t *testing.T) {
	r, out := newTestReader("nope\n100\n120\n80\n")
	if _, err := r.GatherMaxes(config.DefaultOneRepMax()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Please enter a valid positive number.") {
		t.Errorf("missing validation message in output:\n%s", out.String())
	}
}

func TestGatherMaxesEOF(t *testing.T) {
	r, _ := newTestReader("100\n")
	_, err := r.GatherMaxes(config.DefaultOneRepMax())
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestChoosePreset(t *testing.T) {
	presets := program.Presets()

	r, _ := newTestReader("\n")
	p, err := r.ChoosePreset(presets, "ramp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "ramp" {
		t.Errorf("default choice = %q, want ramp", p.Name)
	}

	r, _ = newTestReader("9\n1\n")
	p, err = r.ChoosePreset(presets, "ramp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "classic" {
		t.Errorf("choice 1 = %q, want classic", p.Name)
	}
}

func TestChooseFormat(t *testing.T) {
	r, _ := newTestReader("4\n")
	got, err := r.ChooseFormat()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != config.FormatXLSX {
		t.Errorf("ChooseFormat() = %q, want xlsx", got)
	}
}

func TestGetOutputFilename(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"\n", "beyond531.csv"},
		{"cycle\n", "cycle.csv"},
		{"cycle.csv\n", "cycle.csv"},
	}
	for _, tt := range tests {
		r, _ := newTestReader(tt.input)
		got, err := r.GetOutputFilename(".csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("GetOutputFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
