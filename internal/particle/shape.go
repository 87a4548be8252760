package particle

import "image/color"

// Cubic is a cubic Bézier segment continuing from the previous end point.
type Cubic struct {
	C1  Point
	C2  Point
	End Point
}

// Shape is a closed outline in glyph-local coordinates centred on the origin.
type Shape struct {
	Start  Point
	Curves []Cubic
}

// Stamp places a shape on a surface.
type Stamp struct {
	Position Point
	Rotation float64
	Size     float64
	Alpha    float64 // in [0, 1]
	Glow     float64 // blur radius in pixels
	Color    color.RGBA
}

// Surface is anything particles can be drawn on.
type Surface interface {
	FillShape(shape Shape, stamp Stamp)
}

// HeartOutline returns the two-segment heart path for a glyph of the given size.
// The notch sits at the top and the tip at the bottom in screen coordinates.
func HeartOutline(size float64) Shape {
	s := size / 100
	return Shape{
		Start: Point{X: 0, Y: -30 * s},
		Curves: []Cubic{
			{
				C1:  Point{X: -50 * s, Y: -80 * s},
				C2:  Point{X: -90 * s, Y: -10 * s},
				End: Point{X: 0, Y: 30 * s},
			},
			{
				C1:  Point{X: 90 * s, Y: -10 * s},
				C2:  Point{X: 50 * s, Y: -80 * s},
				End: Point{X: 0, Y: -30 * s},
			},
		},
	}
}

// Transform maps a glyph-local point into surface coordinates for the stamp.
func (st Stamp) Transform(local Point) Point {
	return local.Rotate(st.Rotation).Add(st.Position)
}
