package trip

import "fmt"

// GeoJSON document for the optimized route, in simplestyle properties so any
// map viewer renders it: one Point feature per visit in order (start green,
// end red, waypoints blue and numbered) and the route LineString in orange,
// plus the purple return line when the route is a round trip.

const (
	markerStartColor    = "#008000"
	markerEndColor      = "#ff0000"
	markerWaypointColor = "#0000ff"
	strokeRouteColor    = "#ffa500"
	strokeReturnColor   = "#800080"
)

type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Geometry   Geometry               `json:"geometry"`
}

type Geometry struct {
	Type string `json:"type"`
	// Coordinates holds [lng, lat] for a Point or a [lng, lat] list for a
	// LineString.
	Coordinates interface{} `json:"coordinates"`
}

func NewRouteCollection(r *Route) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection"}
	line := make([][]float64, 0, len(r.Order))
	last := len(r.Order) - 1
	for n, idx := range r.Order {
		p := r.Places[idx]
		coords := []float64{p.Details.Location.Lng, p.Details.Location.Lat}
		var color, title string
		switch {
		case n == 0:
			color = markerStartColor
			title = fmt.Sprintf("START: %s", p.Details.Name)
		case n == last:
			color = markerEndColor
			title = fmt.Sprintf("END: %s", p.Details.Name)
		default:
			color = markerWaypointColor
			title = fmt.Sprintf("%d. %s", n, p.Details.Name)
		}
		fc.Features = append(fc.Features, &Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"order":        n,
				"name":         p.Details.Name,
				"title":        title,
				"marker-color": color,
			},
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: coords,
			},
		})
		line = append(line, coords)
	}

	fc.Features = append(fc.Features, &Feature{
		Type: "Feature",
		Properties: map[string]interface{}{
			"title":          "Optimized Route",
			"stroke":         strokeRouteColor,
			"stroke-width":   5,
			"stroke-opacity": 0.8,
		},
		Geometry: Geometry{
			Type:        "LineString",
			Coordinates: line,
		},
	})

	if r.RoundTrip {
		back := make([][]float64, len(line))
		for i, c := range line {
			back[len(line)-1-i] = c
		}
		fc.Features = append(fc.Features, &Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"title":          "Return Trip",
				"stroke":         strokeReturnColor,
				"stroke-width":   5,
				"stroke-opacity": 0.5,
			},
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: back,
			},
		})
	}

	return fc
}
