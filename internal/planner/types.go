package planner

import (
	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/partition"
	"github.com/flyermap/planner/internal/routing"
)

// GenerateParams is the orchestrator's domain-level request: the area,
// travel parameters, and flyer count for one route-generation run. The
// HTTP-facing request DTO validates and converts into this shape.
type GenerateParams struct {
	Area          geoarea.Polygon
	NumRoutes     int
	TotalFlyers   int
	Mode          routing.TravelMode
	StartPoint    *geoarea.Point
	ReturnToStart bool
	Priority      partition.Priority
}

// Summary aggregates totals across every route of a Job.
type Summary struct {
	TotalAddressesEstimated   int
	TotalDistanceM            float64
	TotalEstimatedDurationMin int
}

// Job is one completed route-generation run: every route produced plus
// its aggregate summary. A Job holds no graph references — its Routes are
// plain data copied out of the zones they were generated from.
type Job struct {
	JobID   string
	Routes  []routing.Route
	Summary Summary
}
