package service

import (
	"context"
	"errors"
	"time"

	"smart_climate"
	"smart_climate/internal/climate"
	"smart_climate/internal/repository"

	"github.com/google/uuid"
)

var (
	errInvalidOccupancy = errors.New("invalid occupancy: must be OCCUPIED or UNOCCUPIED")
	errNoReadingYet     = errors.New("no reading recorded yet: evaluate with a reading first")
)

// ClimateService runs the pure decision core against stored preferences and
// persists the resulting snapshot.
type ClimateService struct {
	stateRepo repository.StateRepo
	prefsRepo repository.PrefsRepo
	eventRepo repository.EventRepo
}

func NewClimateService(stateRepo repository.StateRepo, prefsRepo repository.PrefsRepo, eventRepo repository.EventRepo) *ClimateService {
	return &ClimateService{stateRepo: stateRepo, prefsRepo: prefsRepo, eventRepo: eventRepo}
}

func validOccupancy(o smart_climate.Occupancy) bool {
	return o == smart_climate.Occupied || o == smart_climate.Unoccupied
}

// Evaluate decides the four device states for the given reading and occupancy,
// saves the snapshot, and logs the evaluation. An occupancy flip relative to
// the previous snapshot gets its own log entry.
func (s *ClimateService) Evaluate(ctx context.Context, reading smart_climate.EnvironmentalReading, occupancy smart_climate.Occupancy) (smart_climate.ClimateState, error) {
	if !validOccupancy(occupancy) {
		return smart_climate.ClimateState{}, errInvalidOccupancy
	}

	prefs, found, err := s.prefsRepo.Load(ctx)
	if err != nil {
		return smart_climate.ClimateState{}, err
	}
	if !found {
		prefs = DefaultPreferences()
	}

	prev, err := s.stateRepo.Load(ctx)
	if err != nil {
		return smart_climate.ClimateState{}, err
	}

	now := time.Now().UTC()
	st := smart_climate.ClimateState{
		ID:        1,
		Devices:   climate.Evaluate(reading, prefs, occupancy),
		Reading:   reading,
		Occupancy: occupancy,
		UpdatedAt: now,
	}

	if err := s.stateRepo.Save(ctx, st); err != nil {
		return smart_climate.ClimateState{}, err
	}

	if prev.ID != 0 && prev.Occupancy != occupancy {
		_ = s.eventRepo.Append(ctx, smart_climate.ClimateEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now,
			Type:        EventOccupancyChange,
			Description: "Occupancy changed to " + string(occupancy),
			Metadata: map[string]any{
				"from": prev.Occupancy,
				"to":   occupancy,
			},
		})
	}

	if err := s.eventRepo.Append(ctx, smart_climate.ClimateEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        EventEvaluation,
		Description: "Devices evaluated for season " + string(st.Devices.Season),
		Metadata: map[string]any{
			"ac_on":           st.Devices.ACOn,
			"humidifier_on":   st.Devices.HumidifierOn,
			"dehumidifier_on": st.Devices.DehumidifierOn,
			"purifier_on":     st.Devices.PurifierOn,
			"season":          st.Devices.Season,
			"occupancy":       occupancy,
			"temp_c":          reading.TemperatureC,
			"humidity_pct":    reading.HumidityPct,
			"aqi":             reading.AQI,
		},
	}); err != nil {
		return smart_climate.ClimateState{}, err
	}

	return st, nil
}

// SetOccupancy re-runs the evaluation with the last recorded reading and the
// given occupancy. Fails when nothing was evaluated yet, since there is no
// reading to decide against.
func (s *ClimateService) SetOccupancy(ctx context.Context, occupancy smart_climate.Occupancy) (smart_climate.ClimateState, error) {
	if !validOccupancy(occupancy) {
		return smart_climate.ClimateState{}, errInvalidOccupancy
	}

	prev, err := s.stateRepo.Load(ctx)
	if err != nil {
		return smart_climate.ClimateState{}, err
	}
	if prev.ID == 0 {
		return smart_climate.ClimateState{}, errNoReadingYet
	}

	return s.Evaluate(ctx, prev.Reading, occupancy)
}
