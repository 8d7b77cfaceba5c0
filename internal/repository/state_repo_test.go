package repository_test

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"smart_climate"
	"smart_climate/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

// sqlmockArgumentFunc adapts a func to sqlmock.Argument.
type sqlmockArgumentFunc func(driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool { return f(v) }

// isUTCRecent matches a time.Time in UTC within a small window around now.
var isUTCRecent = sqlmockArgumentFunc(func(v driver.Value) bool {
	tm, ok := v.(time.Time)
	if !ok {
		return false
	}
	if tm.Location() != time.UTC {
		return false
	}
	now := time.Now().UTC()
	return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
})

func TestStateSQLite_Save_SetsUTCNowWhenTimeZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewStateSQLite(db)

	state := smart_climate.ClimateState{
		Devices: smart_climate.DeviceState{
			ACOn:           true,
			HumidifierOn:   false,
			DehumidifierOn: true,
			PurifierOn:     true,
			Season:         smart_climate.SeasonSummer,
		},
		Reading:   smart_climate.EnvironmentalReading{TemperatureC: 35, HumidityPct: 80, AQI: 120},
		Occupancy: smart_climate.Occupied,
		// UpdatedAt is zero
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO climate_state")).
		WithArgs(
			1, // id constant
			true,
			false,
			true,
			true,
			"SUMMER",
			"OCCUPIED",
			35.0,
			80.0,
			120,
			isUTCRecent, // UpdatedAt written as UTC "now"
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStateSQLite_Save_PreservesProvidedTimeAsUTC(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewStateSQLite(db)

	loc := time.FixedZone("UTC+3", 3*3600)
	provided := time.Date(2026, 8, 24, 15, 0, 0, 0, loc)

	isProvidedUTC := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		return ok && tm.Equal(provided) && tm.Location() == time.UTC
	})

	state := smart_climate.ClimateState{
		Devices:   smart_climate.DeviceState{Season: smart_climate.SeasonMild},
		Reading:   smart_climate.EnvironmentalReading{TemperatureC: 22, HumidityPct: 50, AQI: 10},
		Occupancy: smart_climate.Unoccupied,
		UpdatedAt: provided,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO climate_state")).
		WithArgs(1, false, false, false, false, "MILD", "UNOCCUPIED", 22.0, 50.0, 10, isProvidedUTC).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStateSQLite_Load_NoRowsMeansEmptyState(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewStateSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, ac_on, humidifier_on, dehumidifier_on, purifier_on, season, occupancy, temp_c, humidity_pct, aqi, updated_at")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	st, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.ID != 0 {
		t.Fatalf("expected empty state for missing row, got %+v", st)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStateSQLite_Load_ScansAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewStateSQLite(db)

	updated := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "ac_on", "humidifier_on", "dehumidifier_on", "purifier_on",
		"season", "occupancy", "temp_c", "humidity_pct", "aqi", "updated_at",
	}).AddRow(1, true, false, true, true, "SUMMER", "OCCUPIED", 35.0, 80.0, 120, updated)

	mock.ExpectQuery(regexp.QuoteMeta("FROM climate_state")).
		WithArgs(1).
		WillReturnRows(rows)

	st, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if st.ID != 1 || !st.Devices.ACOn || st.Devices.Season != smart_climate.SeasonSummer {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Occupancy != smart_climate.Occupied {
		t.Fatalf("occupancy: %q", st.Occupancy)
	}
	if st.Reading.TemperatureC != 35 || st.Reading.HumidityPct != 80 || st.Reading.AQI != 120 {
		t.Fatalf("reading: %+v", st.Reading)
	}
	if !st.UpdatedAt.Equal(updated) {
		t.Fatalf("updated_at: %v", st.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
