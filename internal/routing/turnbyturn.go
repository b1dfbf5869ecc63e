package routing

import "github.com/flyermap/planner/internal/roadgraph"

// buildTurnByTurn converts an ordered edge list into merged, numbered
// directions: one step per maximal run of consecutive edges sharing a
// street name, the first step phrased as "Start on X" and every
// subsequent step as "Turn onto X" — even when the underlying edges were
// walked as a "Continue" during generation, once a run has ended it is, by
// definition, a turn onto (or back onto) a named street relative to the
// one before it.
func buildTurnByTurn(edges []roadgraph.Edge) []Step {
	if len(edges) == 0 {
		return nil
	}

	type run struct {
		name     string
		distance float64
	}

	var runs []run
	for _, e := range edges {
		if len(runs) > 0 && runs[len(runs)-1].name == e.Name {
			runs[len(runs)-1].distance += e.Length

			continue
		}
		runs = append(runs, run{name: e.Name, distance: e.Length})
	}

	steps := make([]Step, len(runs))
	for i, r := range runs {
		instruction := "Turn onto " + r.name
		if i == 0 {
			instruction = "Start on " + r.name
		}
		steps[i] = Step{
			Number:      i + 1,
			Instruction: instruction,
			StreetName:  r.name,
			DistanceM:   r.distance,
		}
	}

	return steps
}
