package density

import "math"

// UnitsPerBuilding estimates the number of dwelling units in a building
// from its OSM-style building tag and level count:
//
//   - "apartments"                         -> max(4*levels, 4)
//   - anything else ("house", "residential",
//     "detached", "semidetached_house",
//     "terrace", unknown, ...)             -> 1
//
// Levels <= 0 is treated as the default of 1, matching the provider's
// behavior when building:levels is missing or unparseable.
func UnitsPerBuilding(b Building) int {
	levels := b.Levels
	if levels <= 0 {
		levels = 1
	}
	if b.Kind == "apartments" {
		return int(math.Max(float64(4*levels), 4))
	}

	return 1
}

// roadLengthDensity is ρ(highway) from the fallback formula: expected
// dwellings per 100 meters of road, by highway class.
var roadLengthDensity = map[string]float64{
	"residential":   20,
	"living_street": 30,
	"service":       5,
	"unclassified":  15,
	"tertiary":      10,
	"secondary":     5,
}

const defaultRoadLengthDensity = 10.0

// EstimateFromRoadLength computes the fallback estimated-addresses value
// for a single edge: floor((length_m / 100) * ρ(highway)), clamped to >= 0.
// Used when the building fetch returns nothing, or when building-based
// assignment sums to zero across the whole graph.
func EstimateFromRoadLength(lengthM float64, highway string) int {
	rho, ok := roadLengthDensity[highway]
	if !ok {
		rho = defaultRoadLengthDensity
	}
	estimated := int(math.Floor((lengthM / 100.0) * rho))
	if estimated < 0 {
		estimated = 0
	}

	return estimated
}
