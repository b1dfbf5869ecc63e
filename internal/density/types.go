package density

import "github.com/flyermap/planner/internal/geoarea"

// Building is a footprint fetched from the map provider's buildings
// collection. It does not outlive a single call to Estimate: zones and
// routes never hold references to Building values.
type Building struct {
	Footprint []geoarea.Point
	Kind      string // e.g. "apartments", "house", "residential"; "" if unknown
	Levels    int    // defaults to 1 when the provider's value is missing or unparseable
	Centroid  geoarea.Point
}

// DefaultMaxDistanceM is the default acceptance radius for snapping a
// building to its nearest edge.
const DefaultMaxDistanceM = 50.0

// metersPerDegreeLat mirrors the constant used in internal/geoarea; it is
// redefined here (rather than imported) because this package's use of it
// is the degree/meter conflation described in the package comment, not a
// general-purpose conversion.
const metersPerDegreeLat = 111320.0
