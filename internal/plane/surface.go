package plane

// Color is a CSS-style hex colour ("#RRGGBB").
type Color string

// Surface is the drawing sink a Graph paints into. Coordinates are surface
// units with the origin at the top-left corner and y growing downwards.
// FillText places text with its baseline at y.
type Surface interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r float64)
	Stroke()

	FillText(text string, x, y float64)
	MeasureText(text string) float64
	FillRect(x, y, w, h float64)
	ClearRect(x, y, w, h float64)

	SetStroke(c Color, width float64)
	SetFill(c Color)
	SetFont(size float64)
}

// Theme holds the colours a Graph draws with.
type Theme struct {
	Axis      Color
	Grid      Color
	Label     Color
	Curve     Color
	Point     Color
	Hover     Color
	Readout   Color
	ReadoutBg Color
}

// DefaultTheme draws dark ink on a light surface.
func DefaultTheme() Theme {
	return Theme{
		Axis:      "#000000",
		Grid:      "#B3B3B3",
		Label:     "#000000",
		Curve:     "#54F330",
		Point:     "#2B6CB0",
		Hover:     "#FFA500",
		Readout:   "#000000",
		ReadoutBg: "#FFFFFF",
	}
}
