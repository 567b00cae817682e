package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"beyond531/config"
	"beyond531/program"
)

// Reader handles interactive prompts
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates a prompt reader on stdin/stdout
func NewReader() *Reader {
	return NewReaderFrom(os.Stdin, os.Stdout)
}

// NewReaderFrom creates a prompt reader over arbitrary streams
func NewReaderFrom(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readLine reads a line of input; ok is false once input is exhausted
func (r *Reader) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// readFloat reads a positive number, keeping def on blank input
func (r *Reader) readFloat(prompt string, def float64) (float64, error) {
	for {
		fmt.Fprintf(r.out, "%s [%s]: ", prompt, strconv.FormatFloat(def, 'f', -1, 64))
		input, ok := r.readLine()
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		if input == "" {
			return def, nil
		}
		val, err := strconv.ParseFloat(input, 64)
		if err != nil || val <= 0 {
			fmt.Fprintln(r.out, "Please enter a valid positive number.")
			continue
		}
		return val, nil
	}
}

// readChoice reads a numbered choice; blank input picks def (0-indexed)
func (r *Reader) readChoice(prompt string, options []string, def int) (int, error) {
	for {
		fmt.Fprintln(r.out, prompt)
		for i, opt := range options {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, opt)
		}
		fmt.Fprintf(r.out, "Enter choice (1-%d) [%d]: ", len(options), def+1)
		input, ok := r.readLine()
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		if input == "" {
			return def, nil
		}
		choice, err := strconv.Atoi(input)
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintln(r.out, "Please enter a valid choice.")
			continue
		}
		return choice - 1, nil
	}
}

// GatherMaxes asks for the three one-rep maxes, offering defaults
func (r *Reader) GatherMaxes(defaults config.OneRepMax) (config.OneRepMax, error) {
	fmt.Fprint(r.out, "\n=== Beyond 5/3/1 Program Generator ===\n\n")
	fmt.Fprintln(r.out, "Enter your 1 Rep Max (1RM) in kilograms. Press enter to keep the value shown.")

	var maxes config.OneRepMax
	for _, ex := range config.AllExercises() {
		val, err := r.readFloat(fmt.Sprintf("%s 1RM (kg)", ex), defaults.For(ex))
		if err != nil {
			return config.OneRepMax{}, fmt.Errorf("reading %s max: %w", ex, err)
		}
		switch ex {
		case config.FrontSquat:
			maxes.FrontSquat = val
		case config.Deadlift:
			maxes.Deadlift = val
		case config.BenchPress:
			maxes.BenchPress = val
		}
	}
	return maxes, nil
}

// ChoosePreset lets the user pick one of the given presets
func (r *Reader) ChoosePreset(presets []*program.Preset, current string) (*program.Preset, error) {
	options := make([]string, len(presets))
	def := 0
	for i, p := range presets {
		options[i] = fmt.Sprintf("%s - %s", p.Name, p.Description)
		if p.Name == current {
			def = i
		}
	}

	fmt.Fprintln(r.out, "\n--- Program Preset ---")
	choice, err := r.readChoice("Select a preset:", options, def)
	if err != nil {
		return nil, fmt.Errorf("reading preset choice: %w", err)
	}
	return presets[choice], nil
}

// ChooseFormat asks how the program should be written out
func (r *Reader) ChooseFormat() (string, error) {
	formats := config.Formats()

	fmt.Fprintln(r.out, "\n--- Export Options ---")
	choice, err := r.readChoice("Select an output format:", formats, 0)
	if err != nil {
		return "", fmt.Errorf("reading format choice: %w", err)
	}
	return formats[choice], nil
}

// GetOutputFilename prompts for the output filename, appending ext when missing
func (r *Reader) GetOutputFilename(ext string) (string, error) {
	def := "beyond531" + ext
	fmt.Fprintf(r.out, "\nEnter output filename (default: %s): ", def)
	filename, ok := r.readLine()
	if !ok {
		return "", fmt.Errorf("reading filename: %w", io.ErrUnexpectedEOF)
	}
	if filename == "" {
		return def, nil
	}
	if !strings.HasSuffix(filename, ext) {
		filename += ext
	}
	return filename, nil
}
