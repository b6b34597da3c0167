package progression

import (
	"context"
	"fmt"
	"time"

	"github.com/mkovacev/liftcycle/internal/telemetry/metrics"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=engine_mocks_test.go -package=progression_test

type cyclesRepo interface {
	List(ctx context.Context, userID int) ([]Cycle, error)
	Upsert(ctx context.Context, c Cycle) (replaced bool, err error)
}

type incrementsRepo interface {
	Get(ctx context.Context, userID int) (*Weights, error)
	Set(ctx context.Context, userID int, w Weights) (replaced bool, err error)
}

type activeUsersRepo interface {
	ActiveIDs(ctx context.Context) ([]int, error)
}

// advance gives up after this many generated cycles. Each created cycle
// moves the calendar forward by at least 28 days, so hitting the cap means
// the dates are not converging towards today (e.g. a clock going backwards).
const maxAdvanceIterations = 1000

// Engine drives the training cycle state machine for a single user at a
// time: it creates, patches and auto-progresses cycles. Safe to call
// concurrently for different users, never for the same one.
type Engine struct {
	cycles     cyclesRepo
	increments incrementsRepo
	users      activeUsersRepo
	metrics    *metrics.Manager
	now        func() time.Time
}

type NewEngineParams struct {
	Cycles     cyclesRepo
	Increments incrementsRepo
	Users      activeUsersRepo
	Metrics    *metrics.Manager
	Now        func() time.Time // defaults to time.Now
}

func NewEngine(params NewEngineParams) *Engine {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		cycles:     params.Cycles,
		increments: params.Increments,
		users:      params.Users,
		metrics:    params.Metrics,
		now:        now,
	}
}

// SetTrainingMax seeds or overwrites the user's training max. A cycle
// covering today gets its weights patched in place; otherwise a new
// standard cycle is created at the next week boundary, together with a
// buffer cycle for the current week when no stored cycle covers it.
// weekOffset 0 means "not given" (patch keeps the end date, a new cycle
// begins on week 1 of the table).
func (e *Engine) SetTrainingMax(ctx context.Context, userID int, w Weights, weekOffset int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.setTrainingMax")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("week.offset", weekOffset))

	if err := w.Validate(); err != nil {
		return err
	}
	if weekOffset < 0 || weekOffset > weeksPerCycle {
		return fmt.Errorf("%w: week offset %d out of range [1,%d]", ErrInvalidInput, weekOffset, weeksPerCycle)
	}

	cycles, err := e.cycles.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("list cycles: %w", err)
	}

	today := Midnight(e.now())
	current := CycleAt(cycles, today)

	if current != nil && current.IsBuffer() {
		// a buffer week is a stale gap filler, never patched directly -
		// fall through and create a fresh standard cycle instead
		log.Warnf(
			"user %d: cycle starting %s is a buffer week, creating a new standard cycle instead of patching it",
			userID, current.StartDate.Format(time.DateOnly),
		)
		current = nil
	}

	if current != nil {
		patched := *current
		patched.TrainingMax = w
		patched.PublishedAt = e.now()
		if weekOffset > 0 {
			_, end, err := StandardCycleRange(patched.StartDate, weekOffset)
			if err != nil {
				return err
			}
			patched.EndDate = end
		}
		replaced, err := e.cycles.Upsert(ctx, patched)
		if err != nil {
			return fmt.Errorf("patch current cycle: %w", err)
		}
		e.countUpsert(replaced)
		log.Infof("user %d: training max of cycle starting %s overwritten",
			userID, patched.StartDate.Format(time.DateOnly))
		return nil
	}

	offset := weekOffset
	if offset == 0 {
		offset = 1
	}
	start, end, err := StandardCycleRange(NextWeekStart(today), offset)
	if err != nil {
		return err
	}

	newCycles := []Cycle{{
		UserID:      userID,
		StartDate:   start,
		EndDate:     end,
		TrainingMax: w,
		PublishedAt: e.now(),
	}}
	e.countCycle("standard")

	bufStart, bufEnd := BufferRange(today)
	if CycleAt(cycles, bufStart) == nil && CycleAt(cycles, bufEnd) == nil {
		newCycles = append(newCycles, Cycle{
			UserID:      userID,
			StartDate:   bufStart,
			EndDate:     bufEnd,
			TrainingMax: w,
			PublishedAt: e.now(),
		})
		e.countCycle("buffer")
	} else {
		log.Debugf("user %d: buffer week not needed", userID)
	}

	for _, c := range newCycles {
		replaced, err := e.cycles.Upsert(ctx, c)
		if err != nil {
			return fmt.Errorf("upsert cycle starting %s: %w", c.StartDate.Format(time.DateOnly), err)
		}
		e.countUpsert(replaced)
	}
	log.Infof("user %d: %d new cycle(s) added", userID, len(newCycles))
	return nil
}

// SetIncrement fully replaces the user's progression increment.
func (e *Engine) SetIncrement(ctx context.Context, userID int, w Weights) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.setIncrement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := w.Validate(); err != nil {
		return err
	}
	replaced, err := e.increments.Set(ctx, userID, w)
	if err != nil {
		return fmt.Errorf("set increment: %w", err)
	}
	e.countUpsert(replaced)
	return nil
}

// Advance auto-progresses the user's cycles until one covers today.
// A no-op when today is already covered. Each generated cycle starts at
// the week boundary after the latest cycle's end, with the previous
// training max plus the stored increment.
func (e *Engine) Advance(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.advance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	cycles, err := e.cycles.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("list cycles: %w", err)
	}

	today := Midnight(e.now())
	if CycleAt(cycles, today) != nil {
		log.Debugf("user %d: current cycle covers today, nothing to do", userID)
		return nil
	}

	var increment *Weights
	for i := 0; ; i++ {
		if i >= maxAdvanceIterations {
			return fmt.Errorf("%w: gave up after %d cycles for user %d", ErrProgressionStalled, i, userID)
		}

		latest := Latest(cycles)
		if latest == nil {
			return fmt.Errorf("user %d: %w", userID, ErrNotSeeded)
		}

		if increment == nil {
			increment, err = e.increments.Get(ctx, userID)
			if err != nil {
				return fmt.Errorf("get increment: %w", err)
			}
			if increment == nil {
				return fmt.Errorf("user %d: %w", userID, ErrNoIncrement)
			}
		}

		start, end, err := StandardCycleRange(NextWeekStart(latest.EndDate.AddDate(0, 0, 1)), 1)
		if err != nil {
			return err
		}

		next := Cycle{
			UserID:      userID,
			StartDate:   start,
			EndDate:     end,
			TrainingMax: latest.TrainingMax.Add(*increment),
			PublishedAt: e.now(),
		}
		replaced, err := e.cycles.Upsert(ctx, next)
		if err != nil {
			return fmt.Errorf("upsert cycle starting %s: %w", start.Format(time.DateOnly), err)
		}
		e.countUpsert(replaced)
		e.countCycle("auto")
		log.Infof("user %d: new cycle %s - %s, training max progressed",
			userID, start.Format(time.DateOnly), end.Format(time.DateOnly))

		cycles = append(cycles, next)
		if next.Contains(today) {
			return nil
		}
	}
}

// CurrentCycle returns the cycle covering today plus the training week
// number within it. ErrNotSeeded when the user has no cycles at all,
// ErrNoCurrentCycle when cycles exist but none covers today.
func (e *Engine) CurrentCycle(ctx context.Context, userID int) (_ *Cycle, week int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.currentCycle")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	cycles, err := e.cycles.List(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("list cycles: %w", err)
	}
	if len(cycles) == 0 {
		return nil, 0, fmt.Errorf("user %d: %w", userID, ErrNotSeeded)
	}

	today := Midnight(e.now())
	current := CycleAt(cycles, today)
	if current == nil {
		return nil, 0, fmt.Errorf("user %d: %w", userID, ErrNoCurrentCycle)
	}

	return current, WeekOf(*current, today), nil
}

// CurrentWeek returns the current training week number and its date range.
// The end is the exclusive boundary, i.e. the next week's start.
func (e *Engine) CurrentWeek(ctx context.Context, userID int) (week int, start, end time.Time, err error) {
	current, week, err := e.CurrentCycle(ctx, userID)
	if err != nil {
		return 0, time.Time{}, time.Time{}, err
	}
	start = current.StartDate.AddDate(0, 0, (week-1)*7)
	end = start.AddDate(0, 0, 7)
	return week, start, end, nil
}

// AdvanceAll runs Advance for every active user. A failing user is logged
// and skipped, the run continues with the rest.
func (e *Engine) AdvanceAll(ctx context.Context) (failed int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.advanceAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	userIDs, err := e.users.ActiveIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list active users: %w", err)
	}

	for _, userID := range userIDs {
		if err := e.Advance(ctx, userID); err != nil {
			log.Errorf("advance user %d: %s", userID, err)
			failed++
		}
	}
	return failed, nil
}

func (e *Engine) countCycle(kind string) {
	if e.metrics == nil {
		return
	}
	e.metrics.CounterCyclesCreated.WithLabelValues(kind).Inc()
}

func (e *Engine) countUpsert(replaced bool) {
	if e.metrics == nil {
		return
	}
	outcome := "inserted"
	if replaced {
		outcome = "replaced"
	}
	e.metrics.CounterUpserts.WithLabelValues(outcome).Inc()
}
