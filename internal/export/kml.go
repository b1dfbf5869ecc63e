package export

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/flyermap/planner/internal/routing"
)

type kmlLineStyle struct {
	Color string `xml:"color"`
	Width int    `xml:"width"`
}

type kmlStyle struct {
	LineStyle kmlLineStyle `xml:"LineStyle"`
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name        string        `xml:"name"`
	Description string        `xml:"description,omitempty"`
	Style       kmlStyle      `xml:"Style"`
	LineString  kmlLineString `xml:"LineString"`
}

type kmlFolder struct {
	Name      string       `xml:"name"`
	Placemark kmlPlacemark `xml:"Placemark"`
}

type kmlDocument struct {
	Folders []kmlFolder `xml:"Folder"`
}

type kmlFile struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

// KML renders every route of a job as one KML document: one folder per
// route, each containing a single colored LineString placemark.
func KML(routes []routing.Route) (string, error) {
	f := kmlFile{Xmlns: "http://www.opengis.net/kml/2.2"}
	f.Document.Folders = make([]kmlFolder, len(routes))

	for i, r := range routes {
		coords := make([]string, len(r.Waypoints))
		for j, p := range r.Waypoints {
			coords[j] = fmt.Sprintf("%f,%f,0", p.Lng, p.Lat)
		}

		f.Document.Folders[i] = kmlFolder{
			Name: fmt.Sprintf("Route %d", r.RouteID),
			Placemark: kmlPlacemark{
				Name: fmt.Sprintf("Route %d Path", r.RouteID),
				Description: fmt.Sprintf(
					"Flyers: %d<br>Distance: %.2f km<br>Est. Time: %d minutes",
					r.AssignedFlyers, r.TotalDistanceM/1000, r.EstimatedDurationMin,
				),
				Style:      kmlStyle{LineStyle: kmlLineStyle{Color: kmlColor(r.Color), Width: 4}},
				LineString: kmlLineString{Coordinates: strings.Join(coords, " ")},
			},
		}
	}

	out, err := xml.MarshalIndent(f, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: marshaling kml: %w", err)
	}

	return xml.Header + string(out), nil
}

// kmlColor converts a "#RRGGBB" hex color into KML's aabbggrr ordering,
// fully opaque.
func kmlColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "ffffffff"
	}
	r, g, b := hex[0:2], hex[2:4], hex[4:6]

	return "ff" + b + g + r
}
