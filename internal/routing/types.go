package routing

import "github.com/flyermap/planner/internal/geoarea"

// TravelMode selects how a zone's road graph is traversed.
type TravelMode string

const (
	// ModeWalking walks the zone's undirected projection: every street is
	// passable in either direction regardless of the graph's recorded
	// one-way direction.
	ModeWalking TravelMode = "walking"
	// ModeDriving walks the zone's original directed multigraph,
	// respecting one-way streets.
	ModeDriving TravelMode = "driving"
)

// Valid reports whether m is a recognized travel mode.
func (m TravelMode) Valid() bool {
	return m == ModeWalking || m == ModeDriving
}

// speedKMH returns this mode's assumed travel speed, used for the route's
// duration estimate.
func (m TravelMode) speedKMH() float64 {
	if m == ModeDriving {
		return 30.0
	}

	return 4.0
}

// RouteOptions configures a single call to Route.
type RouteOptions struct {
	// Mode selects walking or driving traversal. Required.
	Mode TravelMode
	// Start is the caller-supplied starting point. If nil, the zone's
	// node centroid is used instead.
	Start *geoarea.Point
	// ReturnToStart appends a shortest path back to the starting node at
	// the end of the walk, unless the walk already ends there.
	ReturnToStart bool
}

// Step is one line of a route's turn-by-turn directions.
type Step struct {
	Number      int
	Instruction string
	StreetName  string
	DistanceM   float64
}

// Route is the complete output of planning a single zone: the path walked,
// its turn-by-turn directions, and summary statistics. Route copies ZoneID
// from the zone and leaves RouteID, Color, and AssignedFlyers at their zero
// values; the orchestrator fills those in (and renumbers ZoneID) once all
// of a job's routes are known.
type Route struct {
	RouteID              int
	ZoneID               int
	Color                string
	AssignedFlyers       int
	EstimatedAddresses   int
	TotalDistanceM       float64
	EstimatedDurationMin int
	Waypoints            []geoarea.Point
	Geometry             []geoarea.Point
	TurnByTurn           []Step
}
