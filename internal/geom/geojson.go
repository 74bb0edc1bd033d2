package geom

import (
	"encoding/json"
	"errors"

	"planeview/internal/vec"
)

// ParseGeoJSON collects coordinates from a Feature, FeatureCollection or bare
// geometry. Polygons contribute their outer ring.
func ParseGeoJSON(b []byte) (Data, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Data{}, err
	}
	t, _ := raw["type"].(string)
	if t == "" {
		return Data{}, errors.New("geojson: missing type")
	}

	var d Data
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(&d, g)
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			fm, _ := f.(map[string]any)
			if g, ok := fm["geometry"].(map[string]any); ok {
				walkGeom(&d, g)
			}
		}
	default:
		walkGeom(&d, raw)
	}
	return d.empty("geojson")
}

func walkGeom(d *Data, g map[string]any) {
	coords := g["coordinates"]
	switch g["type"] {
	case "Point":
		if p, ok := parsePosition(coords); ok {
			d.add(p)
		}
	case "MultiPoint", "LineString":
		addPositions(d, coords)
	case "MultiLineString":
		for _, ls := range asArray(coords) {
			addPositions(d, ls)
		}
	case "Polygon":
		if rings := asArray(coords); len(rings) > 0 {
			addPositions(d, rings[0])
		}
	case "MultiPolygon":
		for _, poly := range asArray(coords) {
			if rings := asArray(poly); len(rings) > 0 {
				addPositions(d, rings[0])
			}
		}
	case "GeometryCollection":
		gs, _ := g["geometries"].([]any)
		for _, sub := range gs {
			if m, ok := sub.(map[string]any); ok {
				walkGeom(d, m)
			}
		}
	}
}

func asArray(v any) []any {
	a, _ := v.([]any)
	return a
}

func addPositions(d *Data, v any) {
	for _, el := range asArray(v) {
		if p, ok := parsePosition(el); ok {
			d.add(p)
		}
	}
}

func parsePosition(v any) (vec.Vec2, bool) {
	a := asArray(v)
	if len(a) < 2 {
		return vec.Vec2{}, false
	}
	x, xok := a[0].(float64)
	y, yok := a[1].(float64)
	if !xok || !yok {
		return vec.Vec2{}, false
	}
	return vec.New(x, y), true
}
