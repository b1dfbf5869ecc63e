package partition

// Priority selects which per-edge quantity the partitioner balances across
// zones.
type Priority string

const (
	// PriorityDensity balances zones by total estimated dwelling count,
	// the default: every flyer route ends up covering roughly the same
	// number of addresses.
	PriorityDensity Priority = "density"
	// PriorityArea balances zones by total road length instead, useful
	// when the density estimate is known to be unreliable (e.g. a
	// building-less fallback area) and geographic fairness is preferred.
	PriorityArea Priority = "area"
)

// Valid reports whether p is a recognized priority.
func (p Priority) Valid() bool {
	return p == PriorityDensity || p == PriorityArea
}
