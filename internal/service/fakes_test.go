package service

import (
	"context"
	"time"

	"smart_climate"
)

// ---- Shared test doubles for the repository interfaces ----

type fakeStateRepo struct {
	loadResp   smart_climate.ClimateState
	loadErr    error
	saveErr    error
	savedCalls []smart_climate.ClimateState
}

func (f *fakeStateRepo) Load(ctx context.Context) (smart_climate.ClimateState, error) {
	return f.loadResp, f.loadErr
}

func (f *fakeStateRepo) Save(ctx context.Context, s smart_climate.ClimateState) error {
	f.savedCalls = append(f.savedCalls, s)
	return f.saveErr
}

type fakePrefsRepo struct {
	loadResp  smart_climate.UserPreferences
	loadFound bool
	loadErr   error
	saveErr   error
	saved     []smart_climate.UserPreferences
}

func (f *fakePrefsRepo) Load(ctx context.Context) (smart_climate.UserPreferences, bool, error) {
	return f.loadResp, f.loadFound, f.loadErr
}

func (f *fakePrefsRepo) Save(ctx context.Context, p smart_climate.UserPreferences) error {
	f.saved = append(f.saved, p)
	return f.saveErr
}

type fakeEventRepo struct {
	appendErr error
	events    []smart_climate.ClimateEvent
	listErr   error
}

func (f *fakeEventRepo) Append(ctx context.Context, e smart_climate.ClimateEvent) error {
	f.events = append(f.events, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]smart_climate.ClimateEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []smart_climate.ClimateEvent
	for _, e := range f.events {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// ---- Shared test helpers ----

func lastSavedState(t testingT, f *fakeStateRepo) smart_climate.ClimateState {
	t.Helper()
	if len(f.savedCalls) == 0 {
		t.Fatalf("expected at least one Save call")
	}
	return f.savedCalls[len(f.savedCalls)-1]
}

func eventTypes(events []smart_climate.ClimateEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

// testingT is the subset of *testing.T the helpers use.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
