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
	errTempRangeInverted    = errors.New("invalid preferences: temp_min_c must be <= temp_max_c")
	errNegativeAQIThreshold = errors.New("invalid preferences: aqi_threshold must be non-negative")
)

// PreferencesService owns the stored comfort settings. Recommendations are
// computed from the last recorded reading and only persisted when the caller
// explicitly applies them.
type PreferencesService struct {
	prefsRepo repository.PrefsRepo
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
}

func NewPreferencesService(prefsRepo repository.PrefsRepo, stateRepo repository.StateRepo, eventRepo repository.EventRepo) *PreferencesService {
	return &PreferencesService{prefsRepo: prefsRepo, stateRepo: stateRepo, eventRepo: eventRepo}
}

// Get returns the stored preferences, or the defaults when none were saved.
func (s *PreferencesService) Get(ctx context.Context) (smart_climate.UserPreferences, error) {
	p, found, err := s.prefsRepo.Load(ctx)
	if err != nil {
		return smart_climate.UserPreferences{}, err
	}
	if !found {
		return DefaultPreferences(), nil
	}
	return p, nil
}

func validatePreferences(p smart_climate.UserPreferences) error {
	if p.TempMinC > p.TempMaxC {
		return errTempRangeInverted
	}
	if p.AQIThreshold < 0 {
		return errNegativeAQIThreshold
	}
	return nil
}

// Update validates and persists new preferences and logs the change.
func (s *PreferencesService) Update(ctx context.Context, p smart_climate.UserPreferences) error {
	if err := validatePreferences(p); err != nil {
		return err
	}
	if err := s.prefsRepo.Save(ctx, p); err != nil {
		return err
	}
	return s.eventRepo.Append(ctx, smart_climate.ClimateEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        EventPrefsUpdate,
		Description: "Preferences updated",
		Metadata: map[string]any{
			"temp_min_c":     p.TempMinC,
			"temp_max_c":     p.TempMaxC,
			"ac_threshold_c": p.ACThresholdC,
			"aqi_threshold":  p.AQIThreshold,
		},
	})
}

// Recommend derives suggested preferences from the last recorded reading.
// Purely advisory: nothing is stored.
func (s *PreferencesService) Recommend(ctx context.Context) (smart_climate.UserPreferences, error) {
	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return smart_climate.UserPreferences{}, err
	}
	if st.ID == 0 {
		return smart_climate.UserPreferences{}, errNoReadingYet
	}
	return climate.RecommendSettings(st.Reading), nil
}

// ApplyRecommended persists the current recommendation and logs it.
func (s *PreferencesService) ApplyRecommended(ctx context.Context) (smart_climate.UserPreferences, error) {
	p, err := s.Recommend(ctx)
	if err != nil {
		return smart_climate.UserPreferences{}, err
	}
	if err := s.prefsRepo.Save(ctx, p); err != nil {
		return smart_climate.UserPreferences{}, err
	}
	if err := s.eventRepo.Append(ctx, smart_climate.ClimateEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        EventRecommendationApplied,
		Description: "Recommended settings applied",
		Metadata: map[string]any{
			"ac_threshold_c": p.ACThresholdC,
			"aqi_threshold":  p.AQIThreshold,
		},
	}); err != nil {
		return smart_climate.UserPreferences{}, err
	}
	return p, nil
}
