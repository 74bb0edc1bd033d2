package geom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"planeview/internal/vec"
)

// ParseKML collects the coordinates of every Point and LineString, at any
// nesting depth. KML tuples are "lon,lat[,alt]"; altitude is ignored.
func ParseKML(b []byte) (Data, error) {
	dec := xml.NewDecoder(bytes.NewReader(b))
	var d Data
	var stack []string
	seen := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Data{}, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			seen = true
			if t.Name.Local != "coordinates" {
				stack = append(stack, t.Name.Local)
				continue
			}
			var text string
			if err := dec.DecodeElement(&text, &t); err != nil {
				return Data{}, err
			}
			if n := len(stack); n > 0 && (stack[n-1] == "Point" || stack[n-1] == "LineString") {
				parseKMLTuples(&d, text)
			}
		case xml.EndElement:
			if n := len(stack); n > 0 {
				stack = stack[:n-1]
			}
		}
	}
	if !seen {
		return Data{}, errors.New("kml: empty document")
	}
	return d.empty("kml")
}

func parseKMLTuples(d *Data, text string) {
	for _, tuple := range strings.Fields(text) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(vals[0], 64)
		y, err2 := strconv.ParseFloat(vals[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		d.add(vec.New(x, y))
	}
}
