package value

import "strconv"

// Point2D is a planar position.
type Point2D struct {
	X, Y float64
}

// Kind returns KindPoint2D.
func (Point2D) Kind() Kind { return KindPoint2D }

// Coords returns the X and Y coordinates.
func (p Point2D) Coords() []float64 { return []float64{p.X, p.Y} }

func (p Point2D) String() string {
	return "POINT(" + fmtCoord(p.X) + " " + fmtCoord(p.Y) + ")"
}

// Point3D is a spatial position.
type Point3D struct {
	X, Y, Z float64
}

// Kind returns KindPoint3D.
func (Point3D) Kind() Kind { return KindPoint3D }

// Coords returns the X, Y and Z coordinates.
func (p Point3D) Coords() []float64 { return []float64{p.X, p.Y, p.Z} }

func (p Point3D) String() string {
	return "POINT Z (" + fmtCoord(p.X) + " " + fmtCoord(p.Y) + " " + fmtCoord(p.Z) + ")"
}

func fmtCoord(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
