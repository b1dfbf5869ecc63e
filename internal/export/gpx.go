package export

import (
	"encoding/xml"
	"fmt"

	"github.com/flyermap/planner/internal/routing"
)

type gpxPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

type gpxTrackSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxTrack struct {
	Name     string          `xml:"name"`
	Desc     string          `xml:"desc,omitempty"`
	Segments gpxTrackSegment `xml:"trkseg"`
}

type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
	Version string     `xml:"version,attr"`
	Creator string     `xml:"creator,attr"`
	Xmlns   string     `xml:"xmlns,attr"`
	Name    string     `xml:"metadata>name,omitempty"`
	Desc    string     `xml:"metadata>desc,omitempty"`
	Tracks  []gpxTrack `xml:"trk"`
}

func newGPXFile() gpxFile {
	return gpxFile{Version: "1.1", Creator: "flyerrouted", Xmlns: "http://www.topografix.com/GPX/1/1"}
}

func trackFor(r routing.Route) gpxTrack {
	points := make([]gpxPoint, len(r.Waypoints))
	for i, p := range r.Waypoints {
		points[i] = gpxPoint{Lat: p.Lat, Lon: p.Lng}
	}

	return gpxTrack{
		Name:     fmt.Sprintf("Route %d", r.RouteID),
		Desc:     fmt.Sprintf("%d flyers, %.2f km", r.AssignedFlyers, r.TotalDistanceM/1000),
		Segments: gpxTrackSegment{Points: points},
	}
}

// GPX renders a single route as a one-track GPX document.
func GPX(r routing.Route) (string, error) {
	f := newGPXFile()
	f.Tracks = []gpxTrack{trackFor(r)}

	return marshalGPX(f)
}

// GPXAll renders every route of a job as one GPX document, each route its
// own track.
func GPXAll(routes []routing.Route) (string, error) {
	f := newGPXFile()
	f.Name = "Flyer Distribution Routes"
	f.Desc = fmt.Sprintf("%d delivery routes", len(routes))
	f.Tracks = make([]gpxTrack, len(routes))
	for i, r := range routes {
		f.Tracks[i] = trackFor(r)
	}

	return marshalGPX(f)
}

func marshalGPX(f gpxFile) (string, error) {
	out, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: marshaling gpx: %w", err)
	}

	return xml.Header + string(out), nil
}
