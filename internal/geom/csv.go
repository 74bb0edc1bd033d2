package geom

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"planeview/internal/vec"
)

// ParseCSV reads x/y columns. Headers are matched case-insensitively:
// x|lon|lng|long|longitude and y|lat|latitude. A file whose first row is
// numeric has no header and uses the first two columns.
func ParseCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Data{}, err
	}
	if len(recs) == 0 {
		return Data{}, errors.New("csv: empty file")
	}

	ix, iy := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "lon", "lng", "long", "longitude":
			if ix == -1 {
				ix = i
			}
		case "y", "lat", "latitude":
			if iy == -1 {
				iy = i
			}
		}
	}
	rows := recs[1:]
	if ix == -1 || iy == -1 {
		if _, ok := parseRow(recs[0], 0, 1); !ok {
			return Data{}, errors.New("csv: x/y columns not found")
		}
		ix, iy, rows = 0, 1, recs
	}

	var d Data
	for _, row := range rows {
		if p, ok := parseRow(row, ix, iy); ok {
			d.add(p)
		}
	}
	return d.empty("csv")
}

func parseRow(row []string, ix, iy int) (vec.Vec2, bool) {
	if ix >= len(row) || iy >= len(row) {
		return vec.Vec2{}, false
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(row[ix]), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(row[iy]), 64)
	if err1 != nil || err2 != nil {
		return vec.Vec2{}, false
	}
	return vec.New(x, y), true
}
