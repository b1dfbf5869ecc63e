package provider

import (
	"context"

	"github.com/flyermap/planner/internal/density"
	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/roadgraph"
	"github.com/flyermap/planner/internal/routing"
)

// RoadNetworkProvider fetches the raw road network underlying area, for
// the given travel mode. Implementations should respect ctx cancellation;
// the orchestrator wraps every call in a per-call timeout.
type RoadNetworkProvider interface {
	RoadNetwork(ctx context.Context, area geoarea.Polygon, mode routing.TravelMode) (*roadgraph.Graph, error)
}

// BuildingProvider fetches building footprints within area. A failure here
// is non-fatal to the orchestrator: it is logged and recovered into the
// density estimator's road-length fallback.
type BuildingProvider interface {
	Buildings(ctx context.Context, area geoarea.Polygon) ([]density.Building, error)
}
