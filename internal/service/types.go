package service

import (
	"time"

	"smart_climate"
)

// Event types recorded in the climate log.
const (
	EventEvaluation            = "EVALUATION"
	EventOccupancyChange       = "OCCUPANCY_CHANGE"
	EventPrefsUpdate           = "PREFS_UPDATE"
	EventRecommendationApplied = "RECOMMENDATION_APPLIED"
	EventError                 = "ERROR"
)

// Defaults used when no preference row exists yet.
const (
	DefaultTempMinC     = 20.0
	DefaultTempMaxC     = 26.0
	DefaultACThresholdC = 27.0
	DefaultAQIThreshold = 100
)

// DefaultPreferences returns the out-of-the-box comfort settings.
func DefaultPreferences() smart_climate.UserPreferences {
	return smart_climate.UserPreferences{
		TempMinC:     DefaultTempMinC,
		TempMaxC:     DefaultTempMaxC,
		ACThresholdC: DefaultACThresholdC,
		AQIThreshold: DefaultAQIThreshold,
	}
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "EVALUATION", "OCCUPANCY_CHANGE", "PREFS_UPDATE", "RECOMMENDATION_APPLIED", "ERROR"
}
