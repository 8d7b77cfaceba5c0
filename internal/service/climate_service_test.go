package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart_climate"
)

func TestClimateService_Evaluate_RejectsUnknownOccupancy(t *testing.T) {
	svc := NewClimateService(&fakeStateRepo{}, &fakePrefsRepo{}, &fakeEventRepo{})
	if _, err := svc.Evaluate(context.Background(), smart_climate.EnvironmentalReading{}, "SOMETIMES"); err == nil {
		t.Fatalf("expected error for unknown occupancy value")
	}
}

func TestClimateService_Evaluate_LoadErrorsPropagate(t *testing.T) {
	svc := NewClimateService(
		&fakeStateRepo{},
		&fakePrefsRepo{loadErr: errors.New("db down")},
		&fakeEventRepo{},
	)
	if _, err := svc.Evaluate(context.Background(), smart_climate.EnvironmentalReading{}, smart_climate.Occupied); err == nil {
		t.Fatalf("expected prefs load error to propagate")
	}

	svc = NewClimateService(
		&fakeStateRepo{loadErr: errors.New("db down")},
		&fakePrefsRepo{},
		&fakeEventRepo{},
	)
	if _, err := svc.Evaluate(context.Background(), smart_climate.EnvironmentalReading{}, smart_climate.Occupied); err == nil {
		t.Fatalf("expected state load error to propagate")
	}
}

func TestClimateService_Evaluate_UsesDefaultPrefsWhenNoneStored(t *testing.T) {
	srepo := &fakeStateRepo{}
	erepo := &fakeEventRepo{}
	svc := NewClimateService(srepo, &fakePrefsRepo{loadFound: false}, erepo)

	// 28°C is above the default AC threshold of 27 but below a custom one.
	reading := smart_climate.EnvironmentalReading{TemperatureC: 28, HumidityPct: 50, AQI: 10}
	st, err := svc.Evaluate(context.Background(), reading, smart_climate.Occupied)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Devices.ACOn {
		t.Fatalf("default AC threshold (27) should switch the AC on at 28°C")
	}
	if st.Devices.Season != smart_climate.SeasonMild {
		t.Fatalf("season = %s, want MILD", st.Devices.Season)
	}
}

func TestClimateService_Evaluate_PersistsSnapshotAndLogsEvaluation(t *testing.T) {
	srepo := &fakeStateRepo{}
	erepo := &fakeEventRepo{}
	prefs := &fakePrefsRepo{
		loadResp:  smart_climate.UserPreferences{TempMinC: 20, TempMaxC: 26, ACThresholdC: 22, AQIThreshold: 50},
		loadFound: true,
	}
	svc := NewClimateService(srepo, prefs, erepo)

	reading := smart_climate.EnvironmentalReading{TemperatureC: 5, HumidityPct: 20, AQI: 10}
	t0 := time.Now().UTC()
	st, err := svc.Evaluate(context.Background(), reading, smart_climate.Occupied)
	t1 := time.Now().UTC()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := lastSavedState(t, srepo)
	if saved != st {
		t.Fatalf("returned snapshot differs from persisted one: %+v vs %+v", st, saved)
	}
	if saved.ID != 1 {
		t.Fatalf("expected ID=1, got %d", saved.ID)
	}
	if saved.Devices.Season != smart_climate.SeasonWinter || !saved.Devices.HumidifierOn {
		t.Fatalf("winter at 20%% humidity should run the humidifier, got %+v", saved.Devices)
	}
	if saved.UpdatedAt.Before(t0) || saved.UpdatedAt.After(t1) {
		t.Fatalf("UpdatedAt %v not within [%v, %v]", saved.UpdatedAt, t0, t1)
	}

	if len(erepo.events) != 1 || erepo.events[0].Type != EventEvaluation {
		t.Fatalf("expected a single EVALUATION event, got %v", eventTypes(erepo.events))
	}
	if erepo.events[0].EventID == "" {
		t.Fatalf("expected non-empty EventID")
	}
}

func TestClimateService_Evaluate_LogsOccupancyFlip(t *testing.T) {
	srepo := &fakeStateRepo{
		loadResp: smart_climate.ClimateState{
			ID:        1,
			Occupancy: smart_climate.Occupied,
			Reading:   smart_climate.EnvironmentalReading{TemperatureC: 22, HumidityPct: 50, AQI: 10},
		},
	}
	erepo := &fakeEventRepo{}
	svc := NewClimateService(srepo, &fakePrefsRepo{loadFound: false}, erepo)

	_, err := svc.Evaluate(context.Background(),
		smart_climate.EnvironmentalReading{TemperatureC: 22, HumidityPct: 50, AQI: 10},
		smart_climate.Unoccupied,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := eventTypes(erepo.events)
	if len(got) != 2 || got[0] != EventOccupancyChange || got[1] != EventEvaluation {
		t.Fatalf("expected [OCCUPANCY_CHANGE EVALUATION], got %v", got)
	}
}

func TestClimateService_Evaluate_NoFlipEventOnFirstEvaluation(t *testing.T) {
	erepo := &fakeEventRepo{}
	svc := NewClimateService(&fakeStateRepo{}, &fakePrefsRepo{loadFound: false}, erepo)

	_, err := svc.Evaluate(context.Background(),
		smart_climate.EnvironmentalReading{TemperatureC: 22, HumidityPct: 50, AQI: 10},
		smart_climate.Occupied,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := eventTypes(erepo.events); len(got) != 1 || got[0] != EventEvaluation {
		t.Fatalf("first evaluation must not log an occupancy change, got %v", got)
	}
}

func TestClimateService_SetOccupancy_ReusesLastReading(t *testing.T) {
	lastReading := smart_climate.EnvironmentalReading{TemperatureC: 35, HumidityPct: 80, AQI: 120}
	srepo := &fakeStateRepo{
		loadResp: smart_climate.ClimateState{
			ID:        1,
			Occupancy: smart_climate.Occupied,
			Reading:   lastReading,
			Devices:   smart_climate.DeviceState{ACOn: true, DehumidifierOn: true, PurifierOn: true, Season: smart_climate.SeasonSummer},
		},
	}
	erepo := &fakeEventRepo{}
	svc := NewClimateService(srepo, &fakePrefsRepo{loadFound: false}, erepo)

	st, err := svc.SetOccupancy(context.Background(), smart_climate.Unoccupied)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Reading != lastReading {
		t.Fatalf("expected last reading to be reused, got %+v", st.Reading)
	}
	d := st.Devices
	if d.ACOn || d.HumidifierOn || d.DehumidifierOn || d.PurifierOn {
		t.Fatalf("unoccupied room must power everything down, got %+v", d)
	}
	if d.Season != smart_climate.SeasonSummer {
		t.Fatalf("season must still be reported, got %q", d.Season)
	}
}

func TestClimateService_SetOccupancy_FailsWithoutReading(t *testing.T) {
	svc := NewClimateService(&fakeStateRepo{}, &fakePrefsRepo{}, &fakeEventRepo{})
	if _, err := svc.SetOccupancy(context.Background(), smart_climate.Occupied); !errors.Is(err, errNoReadingYet) {
		t.Fatalf("expected errNoReadingYet, got %v", err)
	}
}
