// Package routing turns one partitioned zone into a single walkable or
// drivable Route: an edge-cover walk that visits every edge of the zone at
// least once, bridged by shortest paths where the walk runs out of
// unvisited neighbors, with merged turn-by-turn directions and a
// duration estimate attached.
package routing
