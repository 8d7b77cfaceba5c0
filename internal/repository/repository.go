package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_climate"
	dbconn "smart_climate/internal/repository/db"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*smart_climate.User, error)
}

// StateRepo persists the single latest climate snapshot.
type StateRepo interface {
	Save(ctx context.Context, s smart_climate.ClimateState) error
	Load(ctx context.Context) (smart_climate.ClimateState, error)
}

// PrefsRepo persists the single user preference row.
type PrefsRepo interface {
	Save(ctx context.Context, p smart_climate.UserPreferences) error
	Load(ctx context.Context) (smart_climate.UserPreferences, bool, error)
}

type EventRepo interface {
	Append(ctx context.Context, e smart_climate.ClimateEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]smart_climate.ClimateEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	PrefsRepo PrefsRepo
	EventRepo EventRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		PrefsRepo: NewPrefsSQLite(db),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}

// InitDB forwards to the db subpackage so callers only import repository.
func InitDB(path string) (*sql.DB, error) {
	return dbconn.InitDB(path)
}
