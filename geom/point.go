package geom

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// Transform returns p mapped through m.
func (p Point) Transform(m Matrix) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}
