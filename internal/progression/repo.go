package progression

import (
	"context"
	"errors"
	"time"

	"github.com/mkovacev/liftcycle/internal/store"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	cyclesTable     = "training_cycle"
	incrementsTable = "progression_increment"
)

// CyclesRepo reads and writes training cycles. Writes go through the
// record store upsert keyed by (user_id, start_date).
type CyclesRepo struct {
	db *pgxpool.Pool
}

func NewCyclesRepo(db *pgxpool.Pool) *CyclesRepo {
	return &CyclesRepo{
		db: db,
	}
}

func (r *CyclesRepo) List(ctx context.Context, userID int) (_ []Cycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.cycles.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				user_id, start_date, end_date, squat, bench, deadlift, ohp, published_at
			FROM training_cycle
			WHERE user_id = $1
			ORDER BY start_date;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2cycles(rows)
}

func (r *CyclesRepo) Upsert(ctx context.Context, c Cycle) (replaced bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.cycles.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", c.UserID))
	span.SetAttributes(attribute.String("cycle.start", c.StartDate.Format(time.DateOnly)))

	return store.Upsert(ctx, r.db, store.Record{
		Table: cyclesTable,
		Columns: []string{
			"user_id", "start_date", "end_date",
			"squat", "bench", "deadlift", "ohp",
			"published_at",
		},
		Values: []any{
			c.UserID, c.StartDate, c.EndDate,
			c.TrainingMax.Squat, c.TrainingMax.Bench, c.TrainingMax.Deadlift, c.TrainingMax.OverheadPress,
			c.PublishedAt,
		},
		PrimaryKey: []string{"user_id", "start_date"},
	})
}

func (r *CyclesRepo) rows2cycles(rows pgx.Rows) ([]Cycle, error) {
	var cycles []Cycle
	for rows.Next() {
		var c Cycle
		if err := rows.Scan(
			&c.UserID, &c.StartDate, &c.EndDate,
			&c.TrainingMax.Squat, &c.TrainingMax.Bench, &c.TrainingMax.Deadlift, &c.TrainingMax.OverheadPress,
			&c.PublishedAt,
		); err != nil {
			return nil, err
		}
		// DATE columns come back at midnight in the session timezone
		c.StartDate = Midnight(c.StartDate)
		c.EndDate = Midnight(c.EndDate)
		cycles = append(cycles, c)
	}

	if cycles == nil {
		cycles = make([]Cycle, 0)
	}

	return cycles, nil
}

// IncrementsRepo stores the per-user progression increment, at most one
// row per user, fully replaced on every set.
type IncrementsRepo struct {
	db *pgxpool.Pool
}

func NewIncrementsRepo(db *pgxpool.Pool) *IncrementsRepo {
	return &IncrementsRepo{
		db: db,
	}
}

// Get returns the user's increment, or nil if none was ever set.
func (r *IncrementsRepo) Get(ctx context.Context, userID int) (_ *Weights, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.increments.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var w Weights
	err = r.db.QueryRow(
		ctx,
		`SELECT squat, bench, deadlift, ohp FROM progression_increment WHERE user_id = $1;`,
		userID,
	).Scan(&w.Squat, &w.Bench, &w.Deadlift, &w.OverheadPress)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *IncrementsRepo) Set(ctx context.Context, userID int, w Weights) (replaced bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.increments.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return store.Upsert(ctx, r.db, store.Record{
		Table:      incrementsTable,
		Columns:    []string{"user_id", "squat", "bench", "deadlift", "ohp"},
		Values:     []any{userID, w.Squat, w.Bench, w.Deadlift, w.OverheadPress},
		PrimaryKey: []string{"user_id"},
	})
}
