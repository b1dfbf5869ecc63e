package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/flyermap/planner/internal/density"
	"github.com/flyermap/planner/internal/partition"
	"github.com/flyermap/planner/internal/provider"
	"github.com/flyermap/planner/internal/roadgraph"
	"github.com/flyermap/planner/internal/routing"
)

// Orchestrator drives one route-generation request end to end: geometry is
// assumed already resolved into GenerateParams.Area by the caller (the
// HTTP layer owns turning an AreaSpec into a geoarea.Polygon), and from
// there Orchestrator fetches the road network and buildings, estimates
// density, partitions into zones, routes each zone, and stores the result.
type Orchestrator struct {
	Roads     provider.RoadNetworkProvider
	Buildings provider.BuildingProvider
	Store     *Store
	Logger    *zap.Logger

	ProviderTimeout      time.Duration
	BuildingMaxDistanceM float64
}

// Generate runs the full pipeline for one request and returns the
// resulting Job, already recorded in o.Store.
func (o *Orchestrator) Generate(ctx context.Context, params GenerateParams) (*Job, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g, err := o.fetchRoadNetwork(ctx, params, logger)
	if err != nil {
		return nil, err
	}

	buildings := o.fetchBuildings(ctx, params, logger)

	start := time.Now()
	g = density.Estimate(g, params.Area, buildings, o.BuildingMaxDistanceM)
	logger.Info("density estimation complete", zap.Duration("elapsed", time.Since(start)), zap.Int("edges", g.NumEdges()))

	actualZones := params.NumRoutes
	if g.NumEdges() < actualZones {
		actualZones = g.NumEdges()
	}

	start = time.Now()
	zones, err := partition.Partition(g, actualZones, params.Priority)
	if err != nil {
		return nil, fmt.Errorf("%w: partitioning failed: %v", ErrInternal, err)
	}
	if len(zones) == 0 {
		return nil, ErrNoZones
	}
	logger.Info("partitioning complete", zap.Duration("elapsed", time.Since(start)), zap.Int("zones", len(zones)))

	start = time.Now()
	routes, err := o.routeZones(ctx, zones, params)
	if err != nil {
		return nil, fmt.Errorf("%w: routing failed: %v", ErrInternal, err)
	}
	logger.Info("routing complete", zap.Duration("elapsed", time.Since(start)), zap.Int("routes", len(routes)))

	zoneAddresses := make([]int, len(routes))
	for i, r := range routes {
		zoneAddresses[i] = r.EstimatedAddresses
	}
	flyers := allocateFlyers(params.TotalFlyers, zoneAddresses)

	summary := Summary{}
	for i := range routes {
		routes[i].RouteID = i + 1
		routes[i].ZoneID = i + 1
		routes[i].Color = colorForRoute(i)
		routes[i].AssignedFlyers = flyers[i]

		summary.TotalAddressesEstimated += routes[i].EstimatedAddresses
		summary.TotalDistanceM += routes[i].TotalDistanceM
		summary.TotalEstimatedDurationMin += routes[i].EstimatedDurationMin
	}

	job := &Job{
		JobID:   "job_" + uuid.New().String(),
		Routes:  routes,
		Summary: summary,
	}
	o.Store.Put(job)
	logger.Info("job stored", zap.String("job_id", job.JobID))

	return job, nil
}

func (o *Orchestrator) fetchRoadNetwork(ctx context.Context, params GenerateParams, logger *zap.Logger) (*roadgraph.Graph, error) {
	start := time.Now()
	timeoutCtx, cancel := context.WithTimeout(ctx, o.providerTimeout())
	defer cancel()

	g, err := o.Roads.RoadNetwork(timeoutCtx, params.Area, params.Mode)
	logger.Info("road network fetched", zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		if errors.Is(err, roadgraph.ErrNoRoads) {
			return nil, ErrNoRoads
		}
		if errors.Is(timeoutCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}

		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	if g.NumEdges() == 0 {
		return nil, ErrNoRoads
	}

	return g, nil
}

// fetchBuildings recovers from a failing BuildingProvider: the pipeline
// falls back to density.Estimate's road-length heuristic rather than
// aborting the whole request over an unavailable buildings layer.
func (o *Orchestrator) fetchBuildings(ctx context.Context, params GenerateParams, logger *zap.Logger) []density.Building {
	timeoutCtx, cancel := context.WithTimeout(ctx, o.providerTimeout())
	defer cancel()

	buildings, err := o.Buildings.Buildings(timeoutCtx, params.Area)
	if err != nil {
		logger.Warn("building provider failed, falling back to road-length density estimate", zap.Error(err))

		return nil
	}

	return buildings
}

func (o *Orchestrator) providerTimeout() time.Duration {
	if o.ProviderTimeout <= 0 {
		return 300 * time.Second
	}

	return o.ProviderTimeout
}

// routeZones routes every zone concurrently — zones are edge-disjoint
// after partitioning, so there is no shared graph state between them —
// and returns the results in zone order regardless of completion order.
func (o *Orchestrator) routeZones(ctx context.Context, zones []*partition.Zone, params GenerateParams) ([]routing.Route, error) {
	routes := make([]routing.Route, len(zones))

	g, _ := errgroup.WithContext(ctx)
	for i, zone := range zones {
		i, zone := i, zone
		g.Go(func() error {
			r, err := routing.Route(zone, routing.RouteOptions{
				Mode:          params.Mode,
				Start:         params.StartPoint,
				ReturnToStart: params.ReturnToStart,
			})
			if err != nil {
				return fmt.Errorf("zone %d: %w", zone.ZoneID, err)
			}
			routes[i] = *r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return routes, nil
}
