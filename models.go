package smart_climate

import "time"

// Season is a coarse temperature classification used to pick the
// humidity-control behavior.
type Season string

const (
	SeasonWinter Season = "WINTER"
	SeasonSummer Season = "SUMMER"
	SeasonMild   Season = "MILD"
)

// Occupancy reports whether the room is currently inhabited. All device
// activity is gated on it.
type Occupancy string

const (
	Occupied   Occupancy = "OCCUPIED"
	Unoccupied Occupancy = "UNOCCUPIED"
)

// EnvironmentalReading is one sample of outdoor conditions. Supplied fresh per
// evaluation; never persisted on its own.
type EnvironmentalReading struct {
	TemperatureC float64 `json:"temperature_c"` // °C
	HumidityPct  float64 `json:"humidity_pct"`  // relative humidity, 0–100
	AQI          int     `json:"aqi"`           // air quality index, non-negative
}

// UserPreferences holds the caller-owned comfort settings.
// TempMinC <= TempMaxC is enforced when preferences are updated, not here.
type UserPreferences struct {
	TempMinC     float64 `json:"temp_min_c"`
	TempMaxC     float64 `json:"temp_max_c"`
	ACThresholdC float64 `json:"ac_threshold_c"`
	AQIThreshold int     `json:"aqi_threshold"`
}

// DeviceState is the outcome of one evaluation: four independent binary
// decisions plus the inferred season.
type DeviceState struct {
	ACOn           bool   `json:"ac_on"`
	HumidifierOn   bool   `json:"humidifier_on"`
	DehumidifierOn bool   `json:"dehumidifier_on"`
	PurifierOn     bool   `json:"purifier_on"`
	Season         Season `json:"season"`
}

// ClimateState is the persisted snapshot of the last evaluation: the device
// decisions together with the inputs that produced them.
type ClimateState struct {
	ID        int                  `json:"id"`
	Devices   DeviceState          `json:"devices"`
	Reading   EnvironmentalReading `json:"reading"`
	Occupancy Occupancy            `json:"occupancy"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ClimateEvent is a single log entry.
type ClimateEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // EVALUATION | OCCUPANCY_CHANGE | PREFS_UPDATE | RECOMMENDATION_APPLIED | ERROR
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
