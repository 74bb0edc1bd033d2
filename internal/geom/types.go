// Package geom reads point sets from CSV, WKT, GeoJSON and KML.
package geom

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"planeview/internal/vec"
)

var (
	ErrNoPoints    = errors.New("no points found")
	ErrUnsupported = errors.New("unsupported format")
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".csv", ".wkt", ".geojson", ".json", ".kml"}

// Data is a point sequence in file order with its bounding box.
type Data struct {
	Points []vec.Vec2
	Min    vec.Vec2
	Max    vec.Vec2
}

func (d *Data) add(p vec.Vec2) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return
	}
	if len(d.Points) == 0 {
		d.Min, d.Max = p, p
	} else {
		d.Min = vec.New(math.Min(d.Min.X, p.X), math.Min(d.Min.Y, p.Y))
		d.Max = vec.New(math.Max(d.Max.X, p.X), math.Max(d.Max.Y, p.Y))
	}
	d.Points = append(d.Points, p)
}

func (d Data) empty(format string) (Data, error) {
	if len(d.Points) == 0 {
		return Data{}, fmt.Errorf("%s: %w", format, ErrNoPoints)
	}
	return d, nil
}

// Supported reports whether Load can read path.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads a point file, choosing the parser by extension.
func Load(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}
	var d Data
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		d, err = ParseCSV(bytes.NewReader(b))
	case ".wkt":
		d, err = ParseWKT(string(b))
	case ".geojson", ".json":
		d, err = ParseGeoJSON(b)
	case ".kml":
		d, err = ParseKML(b)
	default:
		return Data{}, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
	if err != nil {
		return Data{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return d, nil
}
