package service

import (
	"context"
	"time"

	"smart_climate"
	"smart_climate/internal/climate"
	"smart_climate/internal/repository"
)

// Baseline reading reported before any evaluation ran: mild room conditions.
const (
	baselineTempC       = 22.0
	baselineHumidityPct = 50.0
	baselineAQI         = 50
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetState returns the latest persisted snapshot.
// If no snapshot exists yet, returns a baseline with every device off.
func (s *MonitoringService) GetState(ctx context.Context) (smart_climate.ClimateState, error) {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return smart_climate.ClimateState{}, err
	}
	if state.ID == 0 {
		return s.baselineState(), nil
	}
	state.UpdatedAt = toUTC(state.UpdatedAt)
	return state, nil
}

// baselineState returns a sensible default snapshot for an uninitialized DB.
func (s *MonitoringService) baselineState() smart_climate.ClimateState {
	reading := smart_climate.EnvironmentalReading{
		TemperatureC: baselineTempC,
		HumidityPct:  baselineHumidityPct,
		AQI:          baselineAQI,
	}
	return smart_climate.ClimateState{
		ID: 1, // DB schema enforces single-row state with id=1
		Devices: smart_climate.DeviceState{
			Season: climate.ClassifySeason(reading.TemperatureC),
		},
		Reading:   reading,
		Occupancy: smart_climate.Unoccupied,
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
