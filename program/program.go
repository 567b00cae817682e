package program

import (
	"fmt"
	"strings"

	"beyond531/config"
)

// Day is a training day within a week
type Day string

const (
	Monday Day = "Monday"
	Friday Day = "Friday"
)

// Days returns the training days in session order
func Days() []Day {
	return []Day{Monday, Friday}
}

// Weeks is the length of one cycle
const Weeks = 4

// MaxTestWeek is the week whose Friday is the fixed max-testing protocol
const MaxTestWeek = 4

// ExercisePrescription is one prescribed line of work
type ExercisePrescription struct {
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Percentage float64 `json:"percentage"`
	IsAmrap    bool    `json:"is_amrap,omitempty"`
}

// Session is one training day
type Session struct {
	Day       Day                    `json:"day"`
	Exercises []ExercisePrescription `json:"exercises"`
}

// Week holds its sessions, Monday first
type Week struct {
	WeekNumber int       `json:"week_number"`
	Sessions   []Session `json:"sessions"`
}

// TrainingProgram is the full 4-week cycle
type TrainingProgram struct {
	Weeks []Week `json:"weeks"`
}

// MaxTestStep is one single of the week 4 Friday protocol
type MaxTestStep struct {
	Label      string
	Percentage float64
}

// MaxTestProtocol: ascending singles up to 105% of the tested max
var MaxTestProtocol = []MaxTestStep{
	{Label: "Warmup", Percentage: 65},
	{Label: "Single", Percentage: 80},
	{Label: "Single", Percentage: 90},
	{Label: "Max", Percentage: 100},
	{Label: "BEYOND!", Percentage: 105},
}

// Generate builds the program with the default preset
func Generate(maxes config.OneRepMax) TrainingProgram {
	return GenerateWith(maxes, DefaultPreset())
}

// GenerateWith builds the 4-week program from the given maxima and rule table.
// A nil preset means the default. It never fails: maxima are not validated
// and simply flow through the arithmetic.
func GenerateWith(maxes config.OneRepMax, preset *Preset) TrainingProgram {
	if preset == nil {
		preset = DefaultPreset()
	}

	prog := TrainingProgram{
		Weeks: make([]Week, 0, Weeks),
	}

	for week := 1; week <= Weeks; week++ {
		w := Week{
			WeekNumber: week,
			Sessions:   make([]Session, 0, len(Days())),
		}

		for _, day := range Days() {
			session := Session{Day: day, Exercises: make([]ExercisePrescription, 0)}

			if week == MaxTestWeek && day == Friday {
				session.Exercises = generateMaxTest(maxes)
			} else {
				for _, ex := range config.AllExercises() {
					schemes := preset.Rules[RuleKey{Week: week, Day: day, Exercise: ex}]
					session.Exercises = append(session.Exercises, generateSets(ex, maxes.For(ex), schemes)...)
				}
			}

			w.Sessions = append(w.Sessions, session)
		}

		prog.Weeks = append(prog.Weeks, w)
	}

	return prog
}

// generateSets creates one prescription per scheme entry
func generateSets(ex config.Exercise, oneRepMax float64, schemes []SetScheme) []ExercisePrescription {
	sets := make([]ExercisePrescription, len(schemes))
	for i, s := range schemes {
		sets[i] = ExercisePrescription{
			Name:       string(ex),
			Sets:       s.Sets,
			Reps:       s.Reps,
			Weight:     config.PercentOf(oneRepMax, s.Percentage),
			Percentage: s.Percentage,
			IsAmrap:    s.AMRAP,
		}
	}
	return sets
}

// generateMaxTest creates the week 4 Friday singles for every lift
func generateMaxTest(maxes config.OneRepMax) []ExercisePrescription {
	sets := make([]ExercisePrescription, 0, len(config.AllExercises())*len(MaxTestProtocol))
	for _, ex := range config.AllExercises() {
		for _, step := range MaxTestProtocol {
			sets = append(sets, ExercisePrescription{
				Name:       fmt.Sprintf("%s - %s", ex, step.Label),
				Sets:       1,
				Reps:       1,
				Weight:     config.PercentOf(maxes.For(ex), step.Percentage),
				Percentage: step.Percentage,
			})
		}
	}
	return sets
}

// Session returns the session for a day, or nil
func (w *Week) Session(day Day) *Session {
	for i := range w.Sessions {
		if w.Sessions[i].Day == day {
			return &w.Sessions[i]
		}
	}
	return nil
}

// Week returns the week with the given number, or nil
func (p *TrainingProgram) Week(n int) *Week {
	for i := range p.Weeks {
		if p.Weeks[i].WeekNumber == n {
			return &p.Weeks[i]
		}
	}
	return nil
}

// TopPercentage is the highest percentage prescribed for a lift in a session.
// Week 4 entries match on their "<lift> - <label>" prefix.
func TopPercentage(s Session, ex config.Exercise) float64 {
	top := 0.0
	found := false
	for _, p := range s.Exercises {
		if !belongsTo(p.Name, ex) {
			continue
		}
		if !found || p.Percentage > top {
			top = p.Percentage
			found = true
		}
	}
	return top
}

func belongsTo(name string, ex config.Exercise) bool {
	return name == string(ex) || strings.HasPrefix(name, string(ex)+" - ")
}
