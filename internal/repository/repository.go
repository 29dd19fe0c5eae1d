package repository

import (
	"context"
	"database/sql"
	"time"

	"controlling_dishwasher/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo persists the single appliance_state row.
type StateRepo interface {
	Save(ctx context.Context, s models.ApplianceState) error
	Load(ctx context.Context) (models.ApplianceState, error)
}

// EventRepo is the append-only maintenance log.
type EventRepo interface {
	Append(ctx context.Context, e models.ApplianceEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ApplianceEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
