package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/flyermap/planner/internal/geoarea"
	"github.com/flyermap/planner/internal/routing"
)

// maxGoogleMapsWaypoints is Google's documented cap on waypoints in a
// directions URL; the subsampling below keeps the total point count
// (origin + intermediate waypoints + destination) at or below this.
const maxGoogleMapsWaypoints = 23

// GoogleMapsURL builds a shareable Google Maps directions URL for a
// waypoint sequence. Returns "" if there are fewer than two waypoints (no
// route to direct to). When there are more points than Google's limit
// allows, the sequence is stride-subsampled down to maxGoogleMapsWaypoints
// points, always keeping the first and last.
func GoogleMapsURL(waypoints []geoarea.Point, mode routing.TravelMode) string {
	if len(waypoints) < 2 {
		return ""
	}

	sampled := waypoints
	if len(sampled) > maxGoogleMapsWaypoints {
		step := len(sampled) / maxGoogleMapsWaypoints
		sampled = strideSample(sampled, step, maxGoogleMapsWaypoints)
		sampled[len(sampled)-1] = waypoints[len(waypoints)-1]
	}

	travelMode := "driving"
	if mode == routing.ModeWalking {
		travelMode = "walking"
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", pointStr(sampled[0]))
	q.Set("destination", pointStr(sampled[len(sampled)-1]))
	q.Set("travelmode", travelMode)

	if len(sampled) > 2 {
		mid := make([]string, len(sampled)-2)
		for i, p := range sampled[1 : len(sampled)-1] {
			mid[i] = pointStr(p)
		}
		q.Set("waypoints", strings.Join(mid, "|"))
	}

	return "https://www.google.com/maps/dir/?" + q.Encode()
}

func strideSample(points []geoarea.Point, step, limit int) []geoarea.Point {
	if step < 1 {
		step = 1
	}
	var out []geoarea.Point
	for i := 0; i < len(points) && len(out) < limit; i += step {
		out = append(out, points[i])
	}

	return out
}

func pointStr(p geoarea.Point) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
