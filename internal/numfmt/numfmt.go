// Package numfmt turns graph coordinates into short axis labels.
//
// Values produced by repeated float64 arithmetic (gridline positions, zoomed
// offsets) often print as 0.30000000000000004 or 5.75699999999995e+13. Format
// recognises those binary rounding artifacts and prints the value the user
// would expect instead.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

const (
	// zeroBelow is the magnitude under which a value prints as "0".
	zeroBelow = 1e-10

	// fixed notation is used for magnitudes inside [expBelow, expAbove].
	expBelow = 0.001
	expAbove = 10000

	ninesRun = 4
	zerosRun = 5

	// minArtifactDigits: strings with fewer significant digits are exact
	// labels and are never rewritten.
	minArtifactDigits = 12
)

// Format returns a display string for x.
func Format(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if math.Abs(x) < zeroBelow {
		return "0"
	}
	exp := math.Abs(x) > expAbove || math.Abs(x) < expBelow
	text := render(x, exp)
	if keep, ok := artifact(text); ok {
		r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'e', keep-1, 64), 64)
		if err == nil {
			return render(r, exp)
		}
	}
	return text
}

// Precision formats x with exactly n significant digits, trailing zeros
// included, so a read-out keeps its width as the value changes. Exponent
// notation is used when the decimal exponent is below -6 or at least n.
func Precision(x float64, n int) string {
	if n < 1 {
		n = 1
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if x == 0 {
		return strconv.FormatFloat(0, 'f', n-1, 64)
	}
	// the exponent after rounding to n digits, so 9.996 at 3 digits is 1.00e+1
	e := strconv.FormatFloat(x, 'e', n-1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err != nil || exp < -6 || exp >= n {
		return trimExponent(e)
	}
	return strconv.FormatFloat(x, 'f', n-1-exp, 64)
}

func render(x float64, exp bool) string {
	if exp {
		return trimExponent(strconv.FormatFloat(x, 'e', -1, 64))
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// trimExponent rewrites "e+05" as "e+5".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// artifact scans the significant digits of text and reports how many of them
// to keep when a rounding artifact is present.
func artifact(text string) (keep int, ok bool) {
	mant := strings.TrimPrefix(text, "-")
	if i := strings.IndexByte(mant, 'e'); i >= 0 {
		mant = mant[:i]
	}
	digits := make([]byte, 0, len(mant))
	for i := 0; i < len(mant); i++ {
		c := mant[i]
		if c == '.' || (c == '0' && len(digits) == 0) {
			continue
		}
		digits = append(digits, c)
	}
	if len(digits) < minArtifactDigits {
		return 0, false
	}
	for i := 0; i < len(digits); {
		j := i
		for j < len(digits) && digits[j] == digits[i] {
			j++
		}
		run := j - i
		switch {
		case digits[i] == '9' && run >= ninesRun:
			return max(i, 1), true
		case digits[i] == '0' && run >= zerosRun && j < len(digits):
			return max(i, 1), true
		}
		i = j
	}
	return 0, false
}
