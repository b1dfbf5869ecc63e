package planner

import "fmt"

func validateParams(p GenerateParams) error {
	if p.NumRoutes < 1 || p.NumRoutes > 20 {
		return fmt.Errorf("%w: num_routes must be between 1 and 20, got %d", ErrInvalidParameters, p.NumRoutes)
	}
	if p.TotalFlyers < 0 {
		return fmt.Errorf("%w: total_flyers must be >= 0, got %d", ErrInvalidParameters, p.TotalFlyers)
	}
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: unrecognized travel_mode %q", ErrInvalidParameters, p.Mode)
	}
	if !p.Priority.Valid() {
		return fmt.Errorf("%w: unrecognized balance_priority %q", ErrInvalidParameters, p.Priority)
	}
	if p.Area.NumVertices() < 3 {
		return fmt.Errorf("%w: area must have at least 3 vertices", ErrInvalidArea)
	}

	return nil
}
