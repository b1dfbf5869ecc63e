package routing

import (
	"math"

	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/partition"
	"github.com/flyermap/planner/internal/roadgraph"
)

// Route plans a single walkable or drivable route covering every edge of
// zone at least once. ZoneID and EstimatedAddresses on the returned Route
// are taken from zone directly; RouteID, Color, and AssignedFlyers are left
// zero for the orchestrator to fill in once every zone's route is known.
func Route(zone *partition.Zone, opts RouteOptions) (*Route, error) {
	if !opts.Mode.Valid() {
		return nil, ErrUnknownTravelMode
	}
	if zone.NumEdges() == 0 {
		return nil, ErrEmptyZone
	}

	oriented := zone.Graph
	if opts.Mode == ModeWalking {
		oriented = zone.Graph.Undirected()
	}

	start := startNode(oriented, opts.Start)
	nodePath, edgeOrder := edgeCoverWalk(oriented, start, opts.ReturnToStart)

	edges := make([]roadgraph.Edge, 0, len(edgeOrder))
	totalDistance := 0.0
	for _, id := range edgeOrder {
		e, ok := oriented.Edge(id)
		if !ok {
			continue
		}
		edges = append(edges, e)
		totalDistance += e.Length
	}

	waypoints := make([]geoarea.Point, len(nodePath))
	for i, id := range nodePath {
		n, _ := oriented.Node(id)
		waypoints[i] = n.Point()
	}

	return &Route{
		ZoneID:               zone.ZoneID,
		EstimatedAddresses:   zoneEstimatedAddresses(zone),
		TotalDistanceM:       totalDistance,
		EstimatedDurationMin: durationMinutes(totalDistance, opts.Mode),
		Waypoints:            waypoints,
		Geometry:             routeGeometry(oriented, edges),
		TurnByTurn:           buildTurnByTurn(edges),
	}, nil
}

func zoneEstimatedAddresses(zone *partition.Zone) int {
	total := 0
	for _, e := range zone.Edges() {
		total += e.EstimatedAddresses
	}

	return total
}

// routeGeometry concatenates each edge's recorded polyline (or its two
// endpoints, when no polyline was recorded) into one continuous point
// sequence for the whole route.
func routeGeometry(g *roadgraph.Graph, edges []roadgraph.Edge) []geoarea.Point {
	var geom []geoarea.Point
	for _, e := range edges {
		if len(e.Geometry) >= 2 {
			geom = append(geom, e.Geometry...)

			continue
		}
		from, _ := g.Node(e.From)
		to, _ := g.Node(e.To)
		geom = append(geom, from.Point(), to.Point())
	}

	return geom
}

func durationMinutes(distanceM float64, mode TravelMode) int {
	minutes := distanceM / 1000 / mode.speedKMH() * 60

	return int(math.Max(1, math.Floor(minutes)))
}

// startNode picks the zone node nearest to caller-supplied point when one
// is given, otherwise nearest to the arithmetic mean of all zone node
// coordinates. "Nearest" is squared (lat, lng) distance with no cosine
// correction for longitude, which is adequate at the scale of a single
// zone but not an exact ground distance.
func startNode(g *roadgraph.Graph, target *geoarea.Point) string {
	var t geoarea.Point
	if target != nil {
		t = *target
	} else {
		t = nodeCentroid(g)
	}

	nodes := g.Nodes()
	best, bestDist := nodes[0], math.Inf(1)
	for _, id := range nodes {
		n, _ := g.Node(id)
		p := n.Point()
		dLat := p.Lat - t.Lat
		dLng := p.Lng - t.Lng
		d := dLat*dLat + dLng*dLng
		if d < bestDist {
			bestDist, best = d, id
		}
	}

	return best
}

func nodeCentroid(g *roadgraph.Graph) geoarea.Point {
	nodes := g.Nodes()
	sumLat, sumLng := 0.0, 0.0
	for _, id := range nodes {
		n, _ := g.Node(id)
		p := n.Point()
		sumLat += p.Lat
		sumLng += p.Lng
	}
	count := float64(len(nodes))

	return geoarea.Point{Lat: sumLat / count, Lng: sumLng / count}
}
