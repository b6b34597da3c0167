package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"
	"github.com/mkovacev/liftcycle/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, name string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.name", name))

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, email FROM lift_user WHERE name = $1;`,
		name,
	).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetOrCreate looks the user up by name, creating the account together
// with its (unpaused) pause state row on first sight.
func (r *Repo) GetOrCreate(ctx context.Context, name, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getOrCreate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.name", name))

	existing, err := r.Get(ctx, name)
	if err == nil {
		log.Debugf("welcome back, %s", name)
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	created, err := r.create(ctx, name, email)
	if pkg.IsUniqueViolationError(err) {
		// lost the race against a concurrent create, the row is there now
		return r.Get(ctx, name)
	}
	if err != nil {
		return nil, err
	}

	log.Infof("user %s added", name)
	return created, nil
}

func (r *Repo) create(ctx context.Context, name, email string) (_ *User, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
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

	u := User{Name: name, Email: email}
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO lift_user (name, email) VALUES ($1, $2) RETURNING id;`,
		name, email,
	).Scan(&u.ID); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO pause_workout (user_id, paused) VALUES ($1, FALSE);`,
		u.ID,
	); err != nil {
		return nil, fmt.Errorf("insert pause state: %w", err)
	}

	return &u, nil
}

// Active returns all users whose workouts are not paused.
func (r *Repo) Active(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT u.id, u.name, u.email
			FROM lift_user u
			JOIN pause_workout p ON p.user_id = u.id
			WHERE NOT p.paused
			ORDER BY u.id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var activeUsers []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		activeUsers = append(activeUsers, u)
	}
	if activeUsers == nil {
		activeUsers = make([]User, 0)
	}
	return activeUsers, nil
}

func (r *Repo) ActiveIDs(ctx context.Context) ([]int, error) {
	activeUsers, err := r.Active(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(activeUsers))
	for _, u := range activeUsers {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (r *Repo) SetPaused(ctx context.Context, userID int, paused bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setPaused")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Bool("paused", paused))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE pause_workout SET paused = $2, pause_date = $3 WHERE user_id = $1;`,
		userID, paused, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
