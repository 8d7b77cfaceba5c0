package service

import (
	"context"
	"time"

	"smart_climate"
	"smart_climate/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Climate exposes the decision operations: evaluate a reading and flip
// occupancy against the last known reading.
type Climate interface {
	Evaluate(ctx context.Context, reading smart_climate.EnvironmentalReading, occupancy smart_climate.Occupancy) (smart_climate.ClimateState, error)
	SetOccupancy(ctx context.Context, occupancy smart_climate.Occupancy) (smart_climate.ClimateState, error)
}

// Preferences manages the stored comfort settings and the advisory
// recommendation flow.
type Preferences interface {
	Get(ctx context.Context) (smart_climate.UserPreferences, error)
	Update(ctx context.Context, p smart_climate.UserPreferences) error
	Recommend(ctx context.Context) (smart_climate.UserPreferences, error)
	ApplyRecommended(ctx context.Context) (smart_climate.UserPreferences, error)
}

// Monitoring exposes read-only access to the latest snapshot.
type Monitoring interface {
	GetState(ctx context.Context) (smart_climate.ClimateState, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]smart_climate.ClimateEvent, error)
}

// Simulator runs the background loop that polls the weather source, rolls
// occupancy, and re-evaluates. Stop via context cancellation in main().
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// ReadingSource supplies fresh environmental readings. Satisfied by the
// weather client; tests substitute a stub.
type ReadingSource interface {
	FetchReading(ctx context.Context) (smart_climate.EnvironmentalReading, error)
}

// Deps carries the configuration the service layer cannot derive from the
// repositories: the JWT signing key (from config, never hardcoded), the live
// reading source, and the randomness used for occupancy simulation.
type Deps struct {
	SigningKey string
	Source     ReadingSource
	RandFn     func() float64 // nil means math/rand
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Climate
	Preferences
	Monitoring
	EventLog
	Simulator
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, deps Deps) *Service {
	climateSvc := NewClimateService(repos.StateRepo, repos.PrefsRepo, repos.EventRepo)
	return &Service{
		Climate:       climateSvc,
		Preferences:   NewPreferencesService(repos.PrefsRepo, repos.StateRepo, repos.EventRepo),
		Monitoring:    NewMonitoringService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Simulator:     NewSimulatorService(climateSvc, repos.StateRepo, deps.Source, deps.RandFn),
		Authorization: NewAuthService(repos.Auth, deps.SigningKey),
	}
}
