package climate

import "smart_climate"

// Season cutoffs in °C. Temperatures on the cutoffs themselves classify as MILD.
const (
	WinterBelowC = 15.0
	SummerAboveC = 30.0
)

// ClassifySeason maps an outdoor temperature to a season. Total over all
// inputs: below WinterBelowC is WINTER, above SummerAboveC is SUMMER,
// everything in between (boundaries included) is MILD.
func ClassifySeason(tempC float64) smart_climate.Season {
	switch {
	case tempC < WinterBelowC:
		return smart_climate.SeasonWinter
	case tempC > SummerAboveC:
		return smart_climate.SeasonSummer
	default:
		return smart_climate.SeasonMild
	}
}
