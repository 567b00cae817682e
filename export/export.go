// Package export writes a generated program to the supported output formats.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"beyond531/config"
	"beyond531/display"
	"beyond531/program"
)

// ErrUnknownFormat is returned for formats other than config.Formats()
var ErrUnknownFormat = errors.New("unknown output format")

// Write renders prog to w in the given format
func Write(w io.Writer, format string, prog program.TrainingProgram) error {
	switch format {
	case config.FormatText:
		return display.WriteText(w, prog)
	case config.FormatCSV:
		return WriteCSV(w, prog)
	case config.FormatJSON:
		return WriteJSON(w, prog)
	case config.FormatXLSX:
		return WriteXLSX(w, prog)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ToFile renders prog into filename, replacing any existing file
func ToFile(filename, format string, prog program.TrainingProgram) error {
	if !known(format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, format, prog); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Extension returns the file extension for a format, including the dot
func Extension(format string) string {
	if format == config.FormatText {
		return ".txt"
	}
	return "." + format
}

func known(format string) bool {
	for _, f := range config.Formats() {
		if f == format {
			return true
		}
	}
	return false
}
