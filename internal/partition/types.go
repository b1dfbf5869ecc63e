package partition

import (
	"errors"

	"github.com/flyermap/planner/internal/roadgraph"
)

// ErrInvalidK is returned by Partition when k is less than 1.
var ErrInvalidK = errors.New("partition: k must be >= 1")

// Zone is one connected, edge-disjoint piece of a road graph produced by
// Partition. ZoneID is the zone's 0-based position in the returned slice,
// carried on the value itself so a caller can label output (route
// numbers, flyer colors) after zones have been reordered or filtered.
type Zone struct {
	*roadgraph.Graph
	ZoneID int
}
