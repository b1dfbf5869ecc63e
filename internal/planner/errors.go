package planner

import "errors"

var (
	// ErrInvalidArea is returned when the requested area fails geometry
	// validation (fewer than 3 polygon vertices, bad circle radius, etc).
	ErrInvalidArea = errors.New("planner: invalid area")
	// ErrInvalidParameters is returned for any other out-of-range or
	// unrecognized request field (route count, travel mode, priority).
	ErrInvalidParameters = errors.New("planner: invalid parameters")
	// ErrNoRoads is returned when the provider's road network has zero
	// usable edges within the requested area.
	ErrNoRoads = errors.New("planner: no roads found in area")
	// ErrNoZones is returned when partitioning produces zero non-empty
	// zones (should only happen alongside ErrNoRoads in practice).
	ErrNoZones = errors.New("planner: partitioning produced no zones")
	// ErrProviderFailure wraps an unrecoverable RoadNetworkProvider error.
	ErrProviderFailure = errors.New("planner: road network provider failed")
	// ErrProviderTimeout wraps a provider call that exceeded its timeout.
	ErrProviderTimeout = errors.New("planner: provider call timed out")
	// ErrInternal wraps any other failure not attributable to the request.
	ErrInternal = errors.New("planner: internal error")
)
