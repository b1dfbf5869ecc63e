package transport

import (
	"fmt"

	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/partition"
	"github.com/flyermap/planner/internal/planner"
	"github.com/flyermap/planner/internal/routing"
)

// AreaSpec describes the area to plan routes over, as either a circle
// (Center + RadiusM) or an explicit Polygon (Points).
type AreaSpec struct {
	Type    string          `json:"type" validate:"required,oneof=circle polygon"`
	Center  *geoarea.Point  `json:"center,omitempty" validate:"required_if=Type circle"`
	RadiusM float64         `json:"radius_m,omitempty" validate:"required_if=Type circle"`
	Points  []geoarea.Point `json:"points,omitempty" validate:"required_if=Type polygon"`
}

// GenerateRequest is the body of POST /api/generate. NumRoutes, TotalFlyers,
// TravelMode and BalancePriority are pointers so an omitted field (nil) can
// be told apart from an explicit zero-value/empty-string field: omitted
// fields fall back to their documented default in ToParams, explicit ones
// are validated as given.
type GenerateRequest struct {
	Area            AreaSpec       `json:"area" validate:"required"`
	NumRoutes       *int           `json:"num_routes,omitempty" validate:"omitempty,min=1,max=20"`
	TotalFlyers     *int           `json:"total_flyers,omitempty" validate:"omitempty,min=0"`
	TravelMode      *string        `json:"travel_mode,omitempty" validate:"omitempty,oneof=walking driving"`
	StartPoint      *geoarea.Point `json:"start_point"`
	ReturnToStart   bool           `json:"return_to_start"`
	BalancePriority *string        `json:"balance_priority,omitempty" validate:"omitempty,oneof=density area"`
}

// Defaults applied to GenerateRequest fields left unset (omitted from the
// request body).
const (
	DefaultNumRoutes       = 4
	DefaultTotalFlyers     = 1000
	DefaultTravelMode      = "walking"
	DefaultBalancePriority = "density"
)

// ToParams converts a validated GenerateRequest into the orchestrator's
// domain-level GenerateParams, resolving AreaSpec into a concrete polygon
// and substituting defaults for any field left unset.
func (r GenerateRequest) ToParams() (planner.GenerateParams, error) {
	area, err := r.Area.resolve()
	if err != nil {
		return planner.GenerateParams{}, err
	}

	return planner.GenerateParams{
		Area:          area,
		NumRoutes:     intOrDefault(r.NumRoutes, DefaultNumRoutes),
		TotalFlyers:   intOrDefault(r.TotalFlyers, DefaultTotalFlyers),
		Mode:          routing.TravelMode(stringOrDefault(r.TravelMode, DefaultTravelMode)),
		StartPoint:    r.StartPoint,
		ReturnToStart: r.ReturnToStart,
		Priority:      partition.Priority(stringOrDefault(r.BalancePriority, DefaultBalancePriority)),
	}, nil
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}

	return *v
}

func stringOrDefault(v *string, def string) string {
	if v == nil {
		return def
	}

	return *v
}

func (a AreaSpec) resolve() (geoarea.Polygon, error) {
	switch a.Type {
	case "circle":
		if a.Center == nil {
			return geoarea.Polygon{}, fmt.Errorf("%w: circle area requires center", geoarea.ErrInvalidArea)
		}

		return geoarea.Circle(*a.Center, a.RadiusM, geoarea.DefaultCirclePoints)
	case "polygon":
		return geoarea.FromPoints(a.Points)
	default:
		return geoarea.Polygon{}, fmt.Errorf("%w: area.type must be \"circle\" or \"polygon\", got %q", geoarea.ErrInvalidArea, a.Type)
	}
}
