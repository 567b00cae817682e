package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"beyond531/display"
	"beyond531/program"
)

// Fill colors per intensity token
var intensityFills = map[string]string{
	display.Class65:      "E2EFDA",
	display.Class75:      "C6E0B4",
	display.ClassWarmup:  "FFF2CC",
	display.Class85:      "FFE699",
	display.Class90:      "F8CBAD",
	display.Class100:     "F4B084",
	display.Class105:     "FF7C80",
	display.ClassDefault: "FFFFFF",
}

var xlsxHeader = []string{"Day", "Exercise", "Sets", "Reps", "Weight (kg)", "%1RM", "Prescription"}

// SheetName is the worksheet holding one week
func SheetName(weekNumber int) string {
	return fmt.Sprintf("Week %d", weekNumber)
}

// BuildWorkbook lays the program out as one sheet per week
func BuildWorkbook(prog program.TrainingProgram) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E79"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	fillStyles := make(map[string]int, len(intensityFills))
	for class, color := range intensityFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create %s style: %w", class, err)
		}
		fillStyles[class] = style
	}

	for i, week := range prog.Weeks {
		sheet := SheetName(week.WeekNumber)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to rename first sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := writeWeekSheet(f, sheet, week, headerStyle, fillStyles); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write %s: %w", sheet, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeWeekSheet(f *excelize.File, sheet string, week program.Week, headerStyle int, fillStyles map[string]int) error {
	if err := f.SetSheetRow(sheet, "A1", &xlsxHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "G1", headerStyle); err != nil {
		return err
	}

	row := 2
	for _, session := range week.Sessions {
		for _, p := range session.Exercises {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{
				string(session.Day),
				p.Name,
				p.Sets,
				display.FormatReps(p),
				p.Weight,
				p.Percentage,
				display.Format(p),
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}

			last, err := excelize.CoordinatesToCellName(len(values), row)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, last, fillStyles[display.ColorClass(p.Percentage)]); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 26); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "F", 12); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "G", "G", 40)
}

// WriteXLSX writes the workbook to w
func WriteXLSX(w io.Writer, prog program.TrainingProgram) error {
	f, err := BuildWorkbook(prog)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
