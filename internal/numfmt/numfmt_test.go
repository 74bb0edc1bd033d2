package numfmt

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"Zero", 0, "0"},
		{"Tiny", 1e-12, "0"},
		{"NegativeTiny", -5e-11, "0"},
		{"Integer", 42, "42"},
		{"Fraction", 0.25, "0.25"},
		{"Negative", -3.5, "-3.5"},
		{"FixedUpperEdge", 10000, "10000"},
		{"Large", 20000, "2e+4"},
		{"Small", 0.0005, "5e-4"},
		{"SumArtifact", 0.1 + 0.2, "0.3"},
		{"NinesArtifact", 57.5699999999995e12, "5.757e+13"},
		{"ZerosArtifact", 5.56000000001e-5, "5.56e-5"},
		{"LeadingNines", 9.99999999999999e5, "1e+6"},
		{"NegativeNines", -2.9999999999999996, "-3"},
		{"ShortNinesKept", 0.19999, "0.19999"},
		{"DeepZoomLabelKept", 1000.000001, "1000.000001"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.in))
		})
	}
}

func TestFormatArtifactProperties(t *testing.T) {
	s := Format(57.5699999999995e12)
	assert.NotContains(t, s, "9999")
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	assert.InDelta(t, 57.57e12, v, 1e6)

	s = Format(5.56000000001e-5)
	assert.False(t, strings.Contains(s, "00000"), "trailing zero run in %q", s)
	v, err = strconv.ParseFloat(s, 64)
	require.NoError(t, err)
	assert.InDelta(t, 5.56e-5, v, 1e-12)
}

func TestFormatGridlineMultiples(t *testing.T) {
	// gridlines are computed as index*spacing; labels must stay short
	for i := -30; i <= 30; i++ {
		s := Format(float64(i) * 0.1)
		assert.LessOrEqual(t, len(s), 4, "label for %d*0.1 = %q", i, s)
	}
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, "0.00", Precision(0, 3))
	assert.Equal(t, "1.23", Precision(1.23456, 3))
	assert.Equal(t, "-0.500", Precision(-0.5, 3))
	assert.Equal(t, "0.000123", Precision(0.000123, 3))
	assert.Equal(t, "123", Precision(123.4, 3))
	assert.Equal(t, "10.0", Precision(9.996, 3))
	assert.Equal(t, "1.00e+3", Precision(999.6, 3))
	assert.Equal(t, "1.23e+4", Precision(12345, 3))
	assert.Equal(t, "1.00e-7", Precision(1e-7, 3))
	assert.Equal(t, "-2", Precision(-1.5, 0))

	// same width as the value moves
	assert.Len(t, Precision(0.25, 3), len(Precision(0.125, 3)))
}
