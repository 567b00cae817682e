package export

import (
	"encoding/json"
	"fmt"
	"io"

	"beyond531/program"
)

// WriteJSON writes the program tree as indented JSON
func WriteJSON(w io.Writer, prog program.TrainingProgram) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(prog); err != nil {
		return fmt.Errorf("failed to encode program: %w", err)
	}
	return nil
}

// ReadJSON decodes a program written by WriteJSON
func ReadJSON(r io.Reader) (program.TrainingProgram, error) {
	var prog program.TrainingProgram
	if err := json.NewDecoder(r).Decode(&prog); err != nil {
		return program.TrainingProgram{}, fmt.Errorf("failed to decode program: %w", err)
	}
	return prog, nil
}
