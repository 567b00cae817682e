package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Exercise is one of the three barbell lifts the program prescribes
type Exercise string

const (
	FrontSquat Exercise = "Front Squat"
	Deadlift   Exercise = "Deadlift"
	BenchPress Exercise = "Bench Press"
)

// AllExercises returns the lifts in prescription order
func AllExercises() []Exercise {
	return []Exercise{FrontSquat, Deadlift, BenchPress}
}

// PlateIncrement is the smallest weight jump available on the bar (kg)
const PlateIncrement = 2.5

// ErrInvalidOneRepMax is returned by OneRepMax.Validate
var ErrInvalidOneRepMax = errors.New("invalid one-rep max")

// OneRepMax holds the tested max for each lift in kilograms
type OneRepMax struct {
	FrontSquat float64 `json:"front_squat" mapstructure:"front_squat"`
	Deadlift   float64 `json:"deadlift" mapstructure:"deadlift"`
	BenchPress float64 `json:"bench_press" mapstructure:"bench_press"`
}

// DefaultOneRepMax returns the starting values shown before the user enters anything
func DefaultOneRepMax() OneRepMax {
	return OneRepMax{FrontSquat: 100, Deadlift: 120, BenchPress: 80}
}

// For returns the max for a single lift. Unknown lifts have a max of 0.
func (m OneRepMax) For(ex Exercise) float64 {
	switch ex {
	case FrontSquat:
		return m.FrontSquat
	case Deadlift:
		return m.Deadlift
	case BenchPress:
		return m.BenchPress
	}
	return 0
}

// IsZero reports whether no max has been set
func (m OneRepMax) IsZero() bool {
	return m == OneRepMax{}
}

// Validate rejects maxima that are not positive finite numbers.
// The generator never calls this; it is for callers that want a strict contract.
func (m OneRepMax) Validate() error {
	for _, ex := range AllExercises() {
		v := m.For(ex)
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidOneRepMax, ex, v)
		}
	}
	return nil
}

// RoundToNearest rounds weight to the nearest multiple of increment.
// Ties round away from zero. Non-finite weights are returned unchanged.
func RoundToNearest(weight, increment float64) float64 {
	if !finite(weight) || !finite(increment) || increment == 0 {
		return weight
	}
	return roundDecimal(decimal.NewFromFloat(weight), decimal.NewFromFloat(increment))
}

// RoundToPlate rounds a weight to the nearest 2.5 kg
func RoundToPlate(weight float64) float64 {
	return RoundToNearest(weight, PlateIncrement)
}

// PercentOf returns percentage% of oneRepMax, rounded to the plate increment
func PercentOf(oneRepMax, percentage float64) float64 {
	if !finite(oneRepMax) || !finite(percentage) {
		return oneRepMax * percentage / 100
	}
	raw := decimal.NewFromFloat(oneRepMax).
		Mul(decimal.NewFromFloat(percentage)).
		Div(decimal.NewFromInt(100))
	return roundDecimal(raw, decimal.NewFromFloat(PlateIncrement))
}

func roundDecimal(weight, increment decimal.Decimal) float64 {
	rounded, _ := weight.Div(increment).Round(0).Mul(increment).Float64()
	return rounded
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
