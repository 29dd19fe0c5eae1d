package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"controlling_dishwasher/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	applianceStateRowID = 1

	upsertStateSQL = `
		INSERT INTO appliance_state (id, door_closed, filter_capacity, pump_fault, engine_fault, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			door_closed=excluded.door_closed,
			filter_capacity=excluded.filter_capacity,
			pump_fault=excluded.pump_fault,
			engine_fault=excluded.engine_fault,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, door_closed, filter_capacity, pump_fault, engine_fault, updated_at
		FROM appliance_state WHERE id=?
	`
)

// Save upserts the appliance_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state models.ApplianceState) error {
	ts := state.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		applianceStateRowID,
		state.DoorClosed,
		state.FilterCapacity,
		nullableString(state.PumpFault),
		nullableString(state.EngineFault),
		ts,
	)
	if err != nil {
		return fmt.Errorf("save appliance state: %w", err)
	}
	return nil
}

// Load returns the zero value with a nil error while no state has been saved.
func (r *StateSQLite) Load(ctx context.Context) (models.ApplianceState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, applianceStateRowID)

	var (
		s           models.ApplianceState
		pumpFault   sql.NullString
		engineFault sql.NullString
	)
	if err := row.Scan(
		&s.ID,
		&s.DoorClosed,
		&s.FilterCapacity,
		&pumpFault,
		&engineFault,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ApplianceState{}, nil
		}
		return models.ApplianceState{}, fmt.Errorf("load appliance state: %w", err)
	}

	s.PumpFault = pumpFault.String
	s.EngineFault = engineFault.String
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}

// nullableString stores empty strings as NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
