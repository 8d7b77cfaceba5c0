// Package climate holds the decision core: pure functions that map
// environmental readings, preferences and occupancy to device states.
// Nothing in here touches storage, the network, or the clock.
package climate

import "smart_climate"

// Humidity cutoffs in percent relative humidity. All comparisons against them
// are strict, so a reading sitting exactly on a cutoff never turns a device on.
const (
	// WINTER: air drier than this runs the humidifier.
	LowHumidityCutoff = 30.0
	// SUMMER: air wetter than this runs the dehumidifier.
	HighHumidityCutoff = 60.0

	// MILD season only reacts to extremes outside a wide comfort band.
	MildDryExtreme   = 20.0
	MildHumidExtreme = 70.0
)

// Comfort defaults for recommended preferences (°C).
const (
	ComfortTempMinC = 20.0
	ComfortTempMaxC = 26.0
)

// Evaluate computes the ON/OFF state of all four devices for one reading.
// Each device decision is independent of the others; occupancy gates them all.
// The result depends only on the arguments, so concurrent callers need no
// coordination.
func Evaluate(reading smart_climate.EnvironmentalReading, prefs smart_climate.UserPreferences, occupancy smart_climate.Occupancy) smart_climate.DeviceState {
	season := ClassifySeason(reading.TemperatureC)

	// Energy-saving override: an empty room powers nothing, but the season is
	// still reported.
	if occupancy != smart_climate.Occupied {
		return smart_climate.DeviceState{Season: season}
	}

	st := smart_climate.DeviceState{
		ACOn:       reading.TemperatureC > prefs.ACThresholdC,
		PurifierOn: reading.AQI > prefs.AQIThreshold,
		Season:     season,
	}

	switch season {
	case smart_climate.SeasonWinter:
		st.HumidifierOn = reading.HumidityPct < LowHumidityCutoff
	case smart_climate.SeasonSummer:
		st.DehumidifierOn = reading.HumidityPct > HighHumidityCutoff
	default:
		// MILD: both stay off inside [MildDryExtreme, MildHumidExtreme].
		st.HumidifierOn = reading.HumidityPct < MildDryExtreme
		st.DehumidifierOn = reading.HumidityPct > MildHumidExtreme
	}

	return st
}

// RecommendSettings derives suggested preferences from a single reading: the
// AC and purifier thresholds sit exactly on the current values (so neither
// device would switch on right now), and the preferred range is the comfort
// default. Purely advisory; the caller decides whether to adopt it.
func RecommendSettings(reading smart_climate.EnvironmentalReading) smart_climate.UserPreferences {
	return smart_climate.UserPreferences{
		TempMinC:     ComfortTempMinC,
		TempMaxC:     ComfortTempMaxC,
		ACThresholdC: reading.TemperatureC,
		AQIThreshold: reading.AQI,
	}
}
