package routing

import "errors"

// ErrEmptyZone is returned by Route when the zone has no edges to cover.
var ErrEmptyZone = errors.New("routing: zone has no edges")

// ErrUnknownTravelMode is returned by Route when opts.Mode is not one of
// ModeWalking or ModeDriving.
var ErrUnknownTravelMode = errors.New("routing: unknown travel mode")
