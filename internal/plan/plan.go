// Package plan turns a training max into the concrete set/rep/weight table
// of the percentage-based program, plus the plate-loading reference.
package plan

import (
	"math"

	"github.com/mkovacev/liftcycle/internal/progression"
)

// percentageTable holds the per-week set modifiers and rep targets.
// Week 4 is the deload week.
var percentageTable = map[int]weekScheme{
	1: {mods: [3]float64{.65, .75, .85}, reps: [3]int{5, 5, 5}},
	2: {mods: [3]float64{.70, .80, .90}, reps: [3]int{3, 3, 3}},
	3: {mods: [3]float64{.75, .85, .95}, reps: [3]int{5, 3, 1}},
	4: {mods: [3]float64{.40, .50, .60}, reps: [3]int{10, 10, 10}},
}

type weekScheme struct {
	mods [3]float64
	reps [3]int
}

// Set is one working set of the weekly plan, with the target weight for
// each main lift.
type Set struct {
	Week          int `json:"week"`
	Num           int `json:"set"`
	Reps          int `json:"reps"`
	Deadlift      int `json:"deadlift"`
	Squat         int `json:"squat"`
	Bench         int `json:"bench"`
	OverheadPress int `json:"ohp"`
}

func (s Set) weightOf(lift progression.Lift) int {
	switch lift {
	case progression.LiftDeadlift:
		return s.Deadlift
	case progression.LiftSquat:
		return s.Squat
	case progression.LiftBench:
		return s.Bench
	case progression.LiftOverheadPress:
		return s.OverheadPress
	}
	return 0
}

// Generate expands the training max into the working sets of the requested
// weeks. Set numbers are 1-based and contiguous across the whole result.
// Weeks outside the percentage table are skipped silently.
func Generate(trainingMax progression.Weights, weeks []int) []Set {
	sets := make([]Set, 0, 3*len(weeks))
	for _, week := range weeks {
		scheme, ok := percentageTable[week]
		if !ok {
			continue
		}
		for i := 0; i < 3; i++ {
			sets = append(sets, Set{
				Week:          week,
				Num:           len(sets) + 1,
				Reps:          scheme.reps[i],
				Deadlift:      roundToPlate(trainingMax.Deadlift * scheme.mods[i]),
				Squat:         roundToPlate(trainingMax.Squat * scheme.mods[i]),
				Bench:         roundToPlate(trainingMax.Bench * scheme.mods[i]),
				OverheadPress: roundToPlate(trainingMax.OverheadPress * scheme.mods[i]),
			})
		}
	}
	return sets
}

// roundToPlate rounds to the nearest multiple of 5 lbs, halves away from
// zero (math.Round semantics, so 197.5 loads as 200).
func roundToPlate(weight float64) int {
	return int(math.Round(weight/5)) * 5
}

const barWeight = 45

// ReferenceRow is one (set, lift) entry of the plate-loading reference:
// the target weight broken down into plates per side of a standard bar.
type ReferenceRow struct {
	Exercise       progression.Lift `json:"exercise"`
	Set            int              `json:"set"`
	Reps           int              `json:"reps"`
	Weight         int              `json:"weight"`
	WeightNoBar    int              `json:"weightNoBar"`
	WeightEachSide int              `json:"weightEachSide"`
}

// Reference melts the wide plan into one row per (lift, set). Odd leftover
// pounds round up on one side. Weights below the bar weight produce
// negative values; validating the training max magnitude is the caller's
// concern.
func Reference(sets []Set) []ReferenceRow {
	rows := make([]ReferenceRow, 0, 4*len(sets))
	for _, lift := range progression.Lifts() {
		for _, s := range sets {
			weight := s.weightOf(lift)
			noBar := weight - barWeight
			rows = append(rows, ReferenceRow{
				Exercise:       lift,
				Set:            s.Num,
				Reps:           s.Reps,
				Weight:         weight,
				WeightNoBar:    noBar,
				WeightEachSide: ceilDiv(noBar, 2),
			})
		}
	}
	return rows
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
