package transport

import (
	"github.com/flyermap/planner/internal/export"
	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/planner"
	"github.com/flyermap/planner/internal/routing"
)

// StepResponse is one line of turn-by-turn directions in the response body.
type StepResponse struct {
	Number      int     `json:"number"`
	Instruction string  `json:"instruction"`
	StreetName  string  `json:"street_name"`
	DistanceM   float64 `json:"distance_m"`
}

// PointResponse is a (lat,lng) pair as it appears on the wire.
type PointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteResponse is one route of a GenerateResponse.
type RouteResponse struct {
	RouteID              int             `json:"route_id"`
	ZoneID               int             `json:"zone_id"`
	Color                string          `json:"color"`
	AssignedFlyers       int             `json:"assigned_flyers"`
	EstimatedAddresses   int             `json:"estimated_addresses"`
	TotalDistanceM       float64         `json:"total_distance_m"`
	EstimatedDurationMin int             `json:"estimated_duration_min"`
	Waypoints            []PointResponse `json:"waypoints"`
	Geometry             []PointResponse `json:"geometry"`
	TurnByTurn           []StepResponse  `json:"turn_by_turn"`
	GoogleMapsURL        string          `json:"google_maps_url"`
}

// SummaryResponse aggregates totals across every route of a GenerateResponse.
type SummaryResponse struct {
	TotalAddressesEstimated   int     `json:"total_addresses_estimated"`
	TotalDistanceM            float64 `json:"total_distance_m"`
	TotalEstimatedDurationMin int     `json:"total_estimated_duration_min"`
}

// GenerateResponse is the body of a successful POST /api/generate.
type GenerateResponse struct {
	JobID   string          `json:"job_id"`
	Routes  []RouteResponse `json:"routes"`
	Summary SummaryResponse `json:"summary"`
}

// FromJob converts a completed planner.Job into its wire representation,
// computing each route's shareable Google Maps directions URL along the way.
func FromJob(job *planner.Job, mode routing.TravelMode) GenerateResponse {
	routes := make([]RouteResponse, len(job.Routes))
	for i, r := range job.Routes {
		routes[i] = routeResponseFrom(r, mode)
	}

	return GenerateResponse{
		JobID:  job.JobID,
		Routes: routes,
		Summary: SummaryResponse{
			TotalAddressesEstimated:   job.Summary.TotalAddressesEstimated,
			TotalDistanceM:            job.Summary.TotalDistanceM,
			TotalEstimatedDurationMin: job.Summary.TotalEstimatedDurationMin,
		},
	}
}

func routeResponseFrom(r routing.Route, mode routing.TravelMode) RouteResponse {
	steps := make([]StepResponse, len(r.TurnByTurn))
	for i, s := range r.TurnByTurn {
		steps[i] = StepResponse{
			Number:      s.Number,
			Instruction: s.Instruction,
			StreetName:  s.StreetName,
			DistanceM:   s.DistanceM,
		}
	}

	return RouteResponse{
		RouteID:              r.RouteID,
		ZoneID:               r.ZoneID,
		Color:                r.Color,
		AssignedFlyers:       r.AssignedFlyers,
		EstimatedAddresses:   r.EstimatedAddresses,
		TotalDistanceM:       r.TotalDistanceM,
		EstimatedDurationMin: r.EstimatedDurationMin,
		Waypoints:            pointResponsesFrom(r.Waypoints),
		Geometry:             pointResponsesFrom(r.Geometry),
		TurnByTurn:           steps,
		GoogleMapsURL:        export.GoogleMapsURL(r.Waypoints, mode),
	}
}

func pointResponsesFrom(points []geoarea.Point) []PointResponse {
	out := make([]PointResponse, len(points))
	for i, p := range points {
		out[i] = PointResponse{Lat: p.Lat, Lng: p.Lng}
	}

	return out
}
