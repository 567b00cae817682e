package program

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"beyond531/config"
)

// presetFile is the on-disk form of a rule table
type presetFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Rules       []ruleFile `yaml:"rules"`
}

type ruleFile struct {
	Week     int         `yaml:"week"`
	Day      string      `yaml:"day"`
	Exercise string      `yaml:"exercise"`
	Sets     []SetScheme `yaml:"sets"`
}

// LoadPreset reads and validates a YAML rule table
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}
	p, err := ParsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("preset file %s: %w", path, err)
	}
	return p, nil
}

// ParsePreset decodes a YAML rule table. Day and exercise names are matched
// case-insensitively; repeated keys append their sets in file order.
func ParsePreset(data []byte) (*Preset, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}

	p := &Preset{
		Name:        f.Name,
		Description: f.Description,
		Rules:       make(RuleTable),
	}

	for i, r := range f.Rules {
		day, err := parseDay(r.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", ErrInvalidPreset, i+1, err)
		}
		ex, err := parseExercise(r.Exercise)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %v", ErrInvalidPreset, i+1, err)
		}
		key := RuleKey{Week: r.Week, Day: day, Exercise: ex}
		p.Rules[key] = append(p.Rules[key], r.Sets...)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseDay(s string) (Day, error) {
	for _, d := range Days() {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

func parseExercise(s string) (config.Exercise, error) {
	for _, ex := range config.AllExercises() {
		if strings.EqualFold(strings.TrimSpace(s), string(ex)) {
			return ex, nil
		}
	}
	return "", fmt.Errorf("unknown exercise %q", s)
}
