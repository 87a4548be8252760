package particle

import "math"

// Point is a 2D vector used for positions, velocities and accelerations.
type Point struct {
	X float64
	Y float64
}

func (p Point) Clone() Point {
	return Point{X: p.X, Y: p.Y}
}

// Magnitude returns the Euclidean length of p.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalized returns the unit vector pointing in the direction of p.
// A zero-length vector stays zero instead of producing NaN.
func (p Point) Normalized() Point {
	length := p.Magnitude()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// ScaledTo returns p normalized and stretched to the target length.
func (p Point) ScaledTo(target float64) Point {
	return p.Normalized().Scale(target)
}

func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Rotate rotates p around the origin by angle radians.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}
