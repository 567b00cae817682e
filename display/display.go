// Package display turns prescriptions into the text and intensity tokens a
// front end shows. Nothing here feeds back into program generation.
package display

import (
	"fmt"
	"io"
	"strconv"

	"beyond531/program"
)

// Format renders one prescription, e.g. "Bench Press: 3x5 @ 82.5kg (75%)".
// Single-set single-rep lines drop the "SxR" part and AMRAP reps carry a "+".
func Format(p program.ExercisePrescription) string {
	weight := FormatWeight(p.Weight)
	pct := int(p.Percentage)

	single := p.Sets == 1 && p.Reps == 1
	switch {
	case p.IsAmrap && single:
		return fmt.Sprintf("%s: 1+ @ %skg (%d%%)", p.Name, weight, pct)
	case p.IsAmrap:
		return fmt.Sprintf("%s: %dx%d+ @ %skg (%d%%)", p.Name, p.Sets, p.Reps, weight, pct)
	case single:
		return fmt.Sprintf("%s: %skg (%d%%)", p.Name, weight, pct)
	default:
		return fmt.Sprintf("%s: %dx%d @ %skg (%d%%)", p.Name, p.Sets, p.Reps, weight, pct)
	}
}

// FormatWeight prints a weight without trailing zeros (65, 82.5)
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// FormatReps prints the rep count with a "+" for AMRAP sets
func FormatReps(p program.ExercisePrescription) string {
	if p.IsAmrap {
		return strconv.Itoa(p.Reps) + "+"
	}
	return strconv.Itoa(p.Reps)
}

// Intensity tokens, shared by the text and spreadsheet renderers
const (
	ClassDefault = "intensity-default"
	Class65      = "intensity-65"
	Class75      = "intensity-75"
	ClassWarmup  = "intensity-warmup"
	Class85      = "intensity-85"
	Class90      = "intensity-90"
	Class100     = "intensity-100"
	Class105     = "intensity-105"
)

var colorClasses = map[int]string{
	65:  Class65,
	70:  Class65,
	75:  Class75,
	80:  ClassWarmup,
	85:  Class85,
	90:  Class90,
	95:  Class90,
	100: Class100,
	105: Class105,
}

// ColorClass maps a percentage (truncated to an integer) to its intensity token
func ColorClass(percentage float64) string {
	if class, ok := colorClasses[int(percentage)]; ok {
		return class
	}
	return ClassDefault
}

// WeekTitle is the heading shown above a week
func WeekTitle(weekNumber int) string {
	if weekNumber == program.MaxTestWeek {
		return fmt.Sprintf("Week %d - MAX WEEK!", weekNumber)
	}
	return fmt.Sprintf("Week %d", weekNumber)
}

// WriteText renders the whole program as plain text
func WriteText(w io.Writer, prog program.TrainingProgram) error {
	for i, week := range prog.Weeks {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "=== %s ===\n", WeekTitle(week.WeekNumber)); err != nil {
			return err
		}
		for _, s := range week.Sessions {
			if _, err := fmt.Fprintf(w, "%s\n", s.Day); err != nil {
				return err
			}
			for _, p := range s.Exercises {
				if _, err := fmt.Fprintf(w, "  %s\n", Format(p)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
