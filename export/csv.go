package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"beyond531/display"
	"beyond531/program"
)

var csvHeader = []string{"Week", "Day", "Exercise", "Sets", "Reps", "Weight", "Percentage"}

// WriteCSV writes one row per prescription
func WriteCSV(w io.Writer, prog program.TrainingProgram) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, week := range prog.Weeks {
		for _, session := range week.Sessions {
			for _, p := range session.Exercises {
				if err := writer.Write(formatRow(week.WeekNumber, session.Day, p)); err != nil {
					return fmt.Errorf("failed to write row: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// formatRow formats a prescription as a CSV row; AMRAP reps use "5+" notation
func formatRow(week int, day program.Day, p program.ExercisePrescription) []string {
	return []string{
		strconv.Itoa(week),
		string(day),
		p.Name,
		strconv.Itoa(p.Sets),
		display.FormatReps(p),
		display.FormatWeight(p.Weight),
		fmt.Sprintf("%d%%", int(p.Percentage)),
	}
}
