package program

import (
	"errors"
	"fmt"
	"sort"

	"beyond531/config"
)

var (
	// ErrUnknownPreset is returned when a preset name is not registered
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidPreset is returned when a rule table cannot drive a full cycle
	ErrInvalidPreset = errors.New("invalid preset")
)

// SetScheme is one prescribed line: sets x reps at a percentage of the max
type SetScheme struct {
	Sets       int     `yaml:"sets"`
	Reps       int     `yaml:"reps"`
	Percentage float64 `yaml:"percentage"`
	AMRAP      bool    `yaml:"amrap"`
}

// RuleKey addresses the schemes for one lift on one day of one week
type RuleKey struct {
	Week     int
	Day      Day
	Exercise config.Exercise
}

// RuleTable maps each (week, day, lift) to its ordered schemes.
// Week 4 Friday is never read from the table.
type RuleTable map[RuleKey][]SetScheme

// Preset is a named rule table
type Preset struct {
	Name        string
	Description string
	Rules       RuleTable
}

// DefaultPresetName is used when nothing else is selected
const DefaultPresetName = "ramp"

// allowedPercentages are the intensities a table may prescribe for weeks 1-3
var allowedPercentages = map[float64]bool{
	65: true, 70: true, 75: true, 80: true, 85: true, 90: true, 95: true,
}

// Ramp Monday: weeks 1 and 4 at 65% to keep fatigue down, weeks 2 and 3 at 75%
var rampMondayIntensity = map[int]float64{1: 65, 2: 75, 3: 75, 4: 65}

var rampMondayVolume = map[config.Exercise]SetScheme{
	config.FrontSquat: {Sets: 3, Reps: 5},
	config.Deadlift:   {Sets: 1, Reps: 5},
	config.BenchPress: {Sets: 3, Reps: 5},
}

// Ramp Friday: three ascending sets, the top one AMRAP
var rampFriday = map[int][]SetScheme{
	1: {
		{Sets: 1, Reps: 5, Percentage: 65},
		{Sets: 1, Reps: 5, Percentage: 75},
		{Sets: 1, Reps: 5, Percentage: 80, AMRAP: true},
	},
	2: {
		{Sets: 1, Reps: 3, Percentage: 65},
		{Sets: 1, Reps: 3, Percentage: 75},
		{Sets: 1, Reps: 3, Percentage: 85, AMRAP: true},
	},
	3: {
		{Sets: 1, Reps: 5, Percentage: 70},
		{Sets: 1, Reps: 3, Percentage: 80},
		{Sets: 1, Reps: 1, Percentage: 90, AMRAP: true},
	},
}

const classicMondayIntensity = 75

var classicMondayVolume = map[config.Exercise]SetScheme{
	config.FrontSquat: {Sets: 5, Reps: 5},
	config.Deadlift:   {Sets: 3, Reps: 5},
	config.BenchPress: {Sets: 5, Reps: 5},
}

var classicFriday = map[int][]SetScheme{
	1: {{Sets: 3, Reps: 5, Percentage: 75}},
	2: {{Sets: 3, Reps: 5, Percentage: 85}},
	3: {{Sets: 3, Reps: 3, Percentage: 90}},
}

// RampPreset alternates Monday intensity and ramps Friday to an AMRAP top set
func RampPreset() *Preset {
	return buildPreset(
		"ramp",
		"Monday 65/75/75/65%, Friday ramp sets with an AMRAP top set",
		func(week int) float64 { return rampMondayIntensity[week] },
		rampMondayVolume,
		rampFriday,
	)
}

// ClassicPreset keeps Monday at 75% and uses one flat Friday prescription per lift
func ClassicPreset() *Preset {
	return buildPreset(
		"classic",
		"Monday 5x5/3x5/5x5 @ 75%, Friday 3x5 @ 75-85% then 3x3 @ 90%",
		func(int) float64 { return classicMondayIntensity },
		classicMondayVolume,
		classicFriday,
	)
}

func buildPreset(name, description string, mondayIntensity func(week int) float64,
	mondayVolume map[config.Exercise]SetScheme, friday map[int][]SetScheme) *Preset {
	rules := make(RuleTable)
	for week := 1; week <= Weeks; week++ {
		for _, ex := range config.AllExercises() {
			monday := mondayVolume[ex]
			monday.Percentage = mondayIntensity(week)
			rules[RuleKey{Week: week, Day: Monday, Exercise: ex}] = []SetScheme{monday}

			if week == MaxTestWeek {
				continue
			}
			rules[RuleKey{Week: week, Day: Friday, Exercise: ex}] = append([]SetScheme(nil), friday[week]...)
		}
	}

	return &Preset{Name: name, Description: description, Rules: rules}
}

var builtinPresets = map[string]func() *Preset{
	"ramp":    RampPreset,
	"classic": ClassicPreset,
}

// DefaultPreset returns the ramp preset
func DefaultPreset() *Preset {
	return RampPreset()
}

// Presets returns every built-in preset sorted by name
func Presets() []*Preset {
	names := make([]string, 0, len(builtinPresets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	sort.Strings(names)

	presets := make([]*Preset, len(names))
	for i, name := range names {
		presets[i] = builtinPresets[name]()
	}
	return presets
}

// LookupPreset returns a fresh copy of a built-in preset
func LookupPreset(name string) (*Preset, error) {
	build, ok := builtinPresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return build(), nil
}

// Validate checks that the table covers every lift on every day the
// generator reads, and that Friday intensity does not drop across weeks 1-3
func (p *Preset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}

	for key, schemes := range p.Rules {
		if key.Week < 1 || key.Week > Weeks {
			return fmt.Errorf("%w: week %d out of range", ErrInvalidPreset, key.Week)
		}
		if key.Week == MaxTestWeek && key.Day == Friday {
			return fmt.Errorf("%w: week %d Friday is the max test and cannot be overridden", ErrInvalidPreset, key.Week)
		}
		for _, s := range schemes {
			if s.Sets < 1 || s.Reps < 1 {
				return fmt.Errorf("%w: week %d %s %s: sets and reps must be at least 1", ErrInvalidPreset, key.Week, key.Day, key.Exercise)
			}
			if !allowedPercentages[s.Percentage] {
				return fmt.Errorf("%w: week %d %s %s: percentage %v not allowed", ErrInvalidPreset, key.Week, key.Day, key.Exercise, s.Percentage)
			}
		}
	}

	for week := 1; week <= Weeks; week++ {
		for _, day := range Days() {
			if week == MaxTestWeek && day == Friday {
				continue
			}
			for _, ex := range config.AllExercises() {
				if len(p.Rules[RuleKey{Week: week, Day: day, Exercise: ex}]) == 0 {
					return fmt.Errorf("%w: missing rule for week %d %s %s", ErrInvalidPreset, week, day, ex)
				}
			}
		}
	}

	for _, ex := range config.AllExercises() {
		prev := 0.0
		for week := 1; week < MaxTestWeek; week++ {
			top := topScheme(p.Rules[RuleKey{Week: week, Day: Friday, Exercise: ex}])
			if top < prev {
				return fmt.Errorf("%w: %s Friday top set drops from %v%% to %v%% in week %d", ErrInvalidPreset, ex, prev, top, week)
			}
			prev = top
		}
	}

	return nil
}

func topScheme(schemes []SetScheme) float64 {
	top := 0.0
	for _, s := range schemes {
		if s.Percentage > top {
			top = s.Percentage
		}
	}
	return top
}
