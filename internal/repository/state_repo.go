package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smart_climate"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

// constants and helpers for clarity and reuse
const (
	climateStateRowID = 1

	insertOrUpdateStateSQL = `
		INSERT INTO climate_state (id, ac_on, humidifier_on, dehumidifier_on, purifier_on, season, occupancy, temp_c, humidity_pct, aqi, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			ac_on=excluded.ac_on,
			humidifier_on=excluded.humidifier_on,
			dehumidifier_on=excluded.dehumidifier_on,
			purifier_on=excluded.purifier_on,
			season=excluded.season,
			occupancy=excluded.occupancy,
			temp_c=excluded.temp_c,
			humidity_pct=excluded.humidity_pct,
			aqi=excluded.aqi,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, ac_on, humidifier_on, dehumidifier_on, purifier_on, season, occupancy, temp_c, humidity_pct, aqi, updated_at
		FROM climate_state WHERE id=?
	`
)

// Save updates or inserts the climate_state row (id always 1).
func (r *StateSQLite) Save(ctx context.Context, state smart_climate.ClimateState) error {
	// ensure UpdatedAt is always persisted as UTC; set if zero
	tsUTC := state.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertOrUpdateStateSQL,
		climateStateRowID,
		state.Devices.ACOn,
		state.Devices.HumidifierOn,
		state.Devices.DehumidifierOn,
		state.Devices.PurifierOn,
		string(state.Devices.Season),
		string(state.Occupancy),
		state.Reading.TemperatureC,
		state.Reading.HumidityPct,
		state.Reading.AQI,
		tsUTC,
	)
	return err
}

// Load fetches the single climate_state row (id=1).
func (r *StateSQLite) Load(ctx context.Context) (smart_climate.ClimateState, error) {
	row := r.db.QueryRowContext(ctx, selectStateSQL, climateStateRowID)

	var (
		s         smart_climate.ClimateState
		season    string
		occupancy string
	)
	if err := row.Scan(
		&s.ID,
		&s.Devices.ACOn,
		&s.Devices.HumidifierOn,
		&s.Devices.DehumidifierOn,
		&s.Devices.PurifierOn,
		&season,
		&occupancy,
		&s.Reading.TemperatureC,
		&s.Reading.HumidityPct,
		&s.Reading.AQI,
		&s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return smart_climate.ClimateState{}, nil // no snapshot yet
		}
		return smart_climate.ClimateState{}, err
	}

	s.Devices.Season = smart_climate.Season(season)
	s.Occupancy = smart_climate.Occupancy(occupancy)
	s.UpdatedAt = s.UpdatedAt.UTC()

	return s, nil
}
