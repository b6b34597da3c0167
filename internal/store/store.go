// Package store implements the upsert-by-primary-key write path shared by
// all versioned tables (training cycles, progression increments). The
// primary key is declared per record rather than enforced by the schema:
// matching rows are deleted before the new row is inserted, giving
// last-write-wins semantics within a single transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mkovacev/liftcycle/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// ErrIntegrity signals that more than one stored row matched the record's
// primary key, i.e. a primary key violation happened upstream.
var ErrIntegrity = errors.New("more than one row matches the primary key")

// Record is one row to upsert. Columns and Values are index-aligned;
// PrimaryKey names a subset of Columns.
type Record struct {
	Table      string
	Columns    []string
	Values     []any
	PrimaryKey []string
}

func (rec Record) keyValues() ([]any, error) {
	keyVals := make([]any, 0, len(rec.PrimaryKey))
	for _, keyCol := range rec.PrimaryKey {
		found := false
		for i, col := range rec.Columns {
			if col == keyCol {
				keyVals = append(keyVals, rec.Values[i])
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("primary key column %q not among record columns", keyCol)
		}
	}
	return keyVals, nil
}

// Upsert writes the record, replacing the at most one existing row with the
// same primary key. Returns whether an existing row was replaced.
func Upsert(ctx context.Context, db *pgxpool.Pool, rec Record) (replaced bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("table", rec.Table))

	if len(rec.Columns) != len(rec.Values) {
		return false, fmt.Errorf("record for %s: %d columns vs %d values", rec.Table, len(rec.Columns), len(rec.Values))
	}
	keyVals, err := rec.keyValues()
	if err != nil {
		return false, err
	}

	keyArgs := make([]string, len(rec.PrimaryKey))
	for i, col := range rec.PrimaryKey {
		keyArgs[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	whereKey := strings.Join(keyArgs, " AND ")

	tx, err := db.Begin(ctx)
	if err != nil {
		return false, err
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

	var matches int
	if err := tx.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, rec.Table, whereKey),
		keyVals...,
	).Scan(&matches); err != nil {
		return false, fmt.Errorf("count existing rows: %w", err)
	}

	if matches > 1 {
		return false, fmt.Errorf("%w: table %s, %d matches", ErrIntegrity, rec.Table, matches)
	}

	if matches == 1 {
		if _, err := tx.Exec(
			ctx,
			fmt.Sprintf(`DELETE FROM %s WHERE %s`, rec.Table, whereKey),
			keyVals...,
		); err != nil {
			return false, fmt.Errorf("delete existing row: %w", err)
		}
		replaced = true
	}

	placeholders := make([]string, len(rec.Columns))
	for i := range rec.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	if _, err := tx.Exec(
		ctx,
		fmt.Sprintf(
			`INSERT INTO %s (%s) VALUES (%s)`,
			rec.Table, strings.Join(rec.Columns, ", "), strings.Join(placeholders, ", "),
		),
		rec.Values...,
	); err != nil {
		return false, fmt.Errorf("insert row: %w", err)
	}

	span.SetAttributes(attribute.Bool("replaced", replaced))
	if replaced {
		log.Debugf("store: %s - existing row replaced", rec.Table)
	} else {
		log.Debugf("store: %s - new row inserted", rec.Table)
	}

	return replaced, nil
}
