package progression

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotSeeded          = errors.New("no training max history, seed a starting training max first")
	ErrNoIncrement        = errors.New("no progression increment set")
	ErrNoCurrentCycle     = errors.New("no cycle covers the current date")
	ErrProgressionStalled = errors.New("progression stalled, cycle dates never reached today")
)

// Lift is one of the four main lifts tracked by the program.
type Lift string

const (
	LiftDeadlift      Lift = "deadlift"
	LiftSquat         Lift = "squat"
	LiftBench         Lift = "bench"
	LiftOverheadPress Lift = "ohp"
)

// Lifts returns all main lifts, in the order they appear in workout tables.
func Lifts() [4]Lift {
	return [4]Lift{LiftDeadlift, LiftSquat, LiftBench, LiftOverheadPress}
}

// Weights holds one weight per main lift, in pounds.
// Used both for training maxes and for progression increments.
type Weights struct {
	Squat         float64 `json:"squat"`
	Bench         float64 `json:"bench"`
	Deadlift      float64 `json:"deadlift"`
	OverheadPress float64 `json:"ohp"`
}

func (w Weights) Of(lift Lift) float64 {
	switch lift {
	case LiftSquat:
		return w.Squat
	case LiftBench:
		return w.Bench
	case LiftDeadlift:
		return w.Deadlift
	case LiftOverheadPress:
		return w.OverheadPress
	}
	return 0
}

// Add returns the elementwise sum of w and inc.
func (w Weights) Add(inc Weights) Weights {
	return Weights{
		Squat:         w.Squat + inc.Squat,
		Bench:         w.Bench + inc.Bench,
		Deadlift:      w.Deadlift + inc.Deadlift,
		OverheadPress: w.OverheadPress + inc.OverheadPress,
	}
}

func (w Weights) Validate() error {
	for _, lift := range Lifts() {
		if w.Of(lift) < 0 {
			return fmt.Errorf("%w: negative weight for %s", ErrInvalidInput, lift)
		}
	}
	return nil
}

// Cycle is one time-boxed training max entry: either a standard 4-week
// cycle or a 1-week buffer cycle. Identified by (UserID, StartDate).
type Cycle struct {
	UserID      int       `json:"userId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	TrainingMax Weights   `json:"trainingMax"`
	PublishedAt time.Time `json:"publishedAt"`
}

// IsBuffer reports whether the cycle is a 1-week buffer cycle.
func (c Cycle) IsBuffer() bool {
	return c.EndDate.Sub(c.StartDate) == 6*24*time.Hour
}

// Contains reports whether the given date falls within [StartDate, EndDate].
func (c Cycle) Contains(on time.Time) bool {
	on = Midnight(on)
	return !on.Before(c.StartDate) && !on.After(c.EndDate)
}
