package repository

import (
	"context"
	"database/sql"
	"time"

	"chargebench/internal/models"
)

// EventRepo is the append-only charge-cycle history.
type EventRepo interface {
	Append(ctx context.Context, e models.ChargeEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.ChargeEvent, error)
}

type Repository struct {
	EventRepo EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		EventRepo: NewEventSQLite(db),
	}
}
