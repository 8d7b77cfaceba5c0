package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart_climate"
)

func TestMonitoringService_GetState_BaselineWhenEmpty(t *testing.T) {
	svc := NewMonitoringService(&fakeStateRepo{})
	st, err := svc.GetState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.ID != 1 {
		t.Fatalf("baseline must carry the single-row id, got %d", st.ID)
	}
	d := st.Devices
	if d.ACOn || d.HumidifierOn || d.DehumidifierOn || d.PurifierOn {
		t.Fatalf("baseline must report every device off, got %+v", d)
	}
	if d.Season != smart_climate.SeasonMild {
		t.Fatalf("baseline at %.0f°C should be MILD, got %s", baselineTempC, d.Season)
	}
	if st.Occupancy != smart_climate.Unoccupied {
		t.Fatalf("baseline occupancy should be UNOCCUPIED, got %s", st.Occupancy)
	}
}

func TestMonitoringService_GetState_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	stored := smart_climate.ClimateState{
		ID:        1,
		Occupancy: smart_climate.Occupied,
		UpdatedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, loc),
	}
	svc := NewMonitoringService(&fakeStateRepo{loadResp: stored})
	st, err := svc.GetState(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.UpdatedAt.Location() != time.UTC {
		t.Fatalf("UpdatedAt must be UTC, got %v", st.UpdatedAt.Location())
	}
}

func TestMonitoringService_GetState_ErrorPropagates(t *testing.T) {
	svc := NewMonitoringService(&fakeStateRepo{loadErr: errors.New("db down")})
	if _, err := svc.GetState(context.Background()); err == nil {
		t.Fatalf("expected load error to propagate")
	}
}
