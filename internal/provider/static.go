package provider

import (
	"context"

	"github.com/flyermap/planner/internal/density"
	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/roadgraph"
	"github.com/flyermap/planner/internal/routing"
)

// StaticProvider is a deterministic, in-memory RoadNetworkProvider and
// BuildingProvider backed by a pre-built raw graph and building set. area
// and mode are accepted but ignored — the same network and buildings are
// returned regardless — which is exactly what a test fixture or a caller
// wrapping their own already-fetched OSM data wants.
type StaticProvider struct {
	Raw         *roadgraph.RawGraph
	BuildingSet []density.Building
}

// RoadNetwork ingests and returns the provider's fixed raw graph.
func (p *StaticProvider) RoadNetwork(ctx context.Context, _ geoarea.Polygon, _ routing.TravelMode) (*roadgraph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return roadgraph.Ingest(p.Raw)
}

// Buildings returns the provider's fixed building set.
func (p *StaticProvider) Buildings(ctx context.Context, _ geoarea.Polygon) ([]density.Building, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return p.BuildingSet, nil
}
