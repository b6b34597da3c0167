// Package accessory stores the accessory exercise plan: four assistance
// exercises per main lift, versioned by publish time (the newest published
// set of rows is the active plan).
package accessory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacev/liftcycle/internal/progression"
	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidPlan = errors.New("invalid accessory plan")

const exercisesPerLift = 4

// Exercise is one accessory slot: an assistance exercise attached to a
// main lift's training day.
type Exercise struct {
	MainLift progression.Lift `json:"mainLift"`
	Name     string           `json:"name"`
	Weight   float64          `json:"weight"`
	Sets     int              `json:"sets"`
	Reps     int              `json:"reps"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// SetPlan publishes a full accessory plan: exactly four exercises per
// main lift. Previous plans stay stored, only the newest one is read back.
func (r *Repo) SetPlan(ctx context.Context, userID int, plan []Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accessory.setPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	if err := validatePlan(plan); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	publishedAt := time.Now()
	for _, ex := range plan {
		if _, err = tx.Exec(
			ctx,
			`
				INSERT INTO accessory (user_id, main_lift, name, weight, sets, reps, published_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			userID, ex.MainLift, ex.Name, ex.Weight, ex.Sets, ex.Reps, publishedAt,
		); err != nil {
			return fmt.Errorf("insert accessory %s: %w", ex.Name, err)
		}
	}

	log.Infof("user %d: accessory plan with %d exercises published", userID, len(plan))
	return nil
}

// LatestPlan returns the most recently published accessory plan,
// empty when the user never published one.
func (r *Repo) LatestPlan(ctx context.Context, userID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.accessory.latestPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			WITH max_time AS (
				SELECT MAX(published_at) AS published_max
				FROM accessory
				WHERE user_id = $1
			)
			SELECT main_lift, name, weight, sets, reps
			FROM accessory
			WHERE user_id = $1
			AND published_at = (SELECT published_max FROM max_time);`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	plan := make([]Exercise, 0, 4*exercisesPerLift)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(&ex.MainLift, &ex.Name, &ex.Weight, &ex.Sets, &ex.Reps); err != nil {
			return nil, err
		}
		plan = append(plan, ex)
	}
	return plan, nil
}

func validatePlan(plan []Exercise) error {
	if len(plan) != 4*exercisesPerLift {
		return fmt.Errorf("%w: got %d exercises, need %d", ErrInvalidPlan, len(plan), 4*exercisesPerLift)
	}
	perLift := make(map[progression.Lift]int)
	for _, ex := range plan {
		perLift[ex.MainLift]++
	}
	for _, lift := range progression.Lifts() {
		if perLift[lift] != exercisesPerLift {
			return fmt.Errorf("%w: %s has %d exercises, needs %d",
				ErrInvalidPlan, lift, perLift[lift], exercisesPerLift)
		}
	}
	return nil
}
