package geom

import (
	"errors"
	"strconv"
	"strings"

	"planeview/internal/vec"
)

// ParseWKT reads one or more WKT geometries, one per line or separated by
// semicolons. Supported: POINT, MULTIPOINT, LINESTRING and the outer ring of
// POLYGON.
func ParseWKT(text string) (Data, error) {
	var d Data
	found := false
	for _, g := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == ';' }) {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if err := parseGeometry(&d, g); err != nil {
			return Data{}, err
		}
		found = true
	}
	if !found {
		return Data{}, errors.New("wkt: empty input")
	}
	return d.empty("wkt")
}

func parseGeometry(d *Data, s string) error {
	up := strings.ToUpper(s)
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if strings.HasSuffix(up, "EMPTY") {
		return nil
	}
	if i < 0 || j <= i {
		return errors.New("wkt: missing coordinate list in " + firstWord(up))
	}
	body := s[i+1 : j]
	switch kind := strings.TrimSpace(up[:i]); kind {
	case "POINT", "MULTIPOINT", "LINESTRING":
		// MULTIPOINT((1 2), (3 4)) and MULTIPOINT(1 2, 3 4) are both valid
		body = strings.NewReplacer("(", "", ")", "").Replace(body)
	case "POLYGON":
		body = strings.TrimSpace(body)
		if !strings.HasPrefix(body, "(") {
			return errors.New("wkt: polygon needs rings")
		}
		end := strings.Index(body, ")")
		if end < 0 {
			return errors.New("wkt: unterminated polygon ring")
		}
		body = body[1:end]
	default:
		return errors.New("wkt: unsupported geometry " + kind)
	}
	parseTuples(d, body)
	return nil
}

func parseTuples(d *Data, body string) {
	for _, tup := range strings.Split(body, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		d.add(vec.New(x, y))
	}
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}
