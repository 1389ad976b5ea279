package board

import "math"

// geomEps absorbs floating-point error on shape boundaries so tokens sitting
// exactly on a radius don't flicker in and out between recomputes.
const geomEps = 1e-6

// Point is a position in world-cell coordinates.
type Point struct {
	X float64
	Y float64
}

// Cell is an integer grid coordinate. A token occupying cell (x,y) has its
// geometric center at (x+0.5, y+0.5); adjacency and flanking work on the
// integer coordinates, every distance test works on the center.
type Cell struct {
	X int
	Y int
}

// Center returns the cell's center point.
func (c Cell) Center() Point {
	return Point{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
}

// Dist returns the Euclidean distance between two points, in cells.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInCircle reports whether p lies within radius cells of center,
// boundary inclusive.
func PointInCircle(p, center Point, radius float64) bool {
	return Dist(p, center) <= radius+geomEps
}

// DistPointToSegment returns the shortest distance from p to the segment
// a-b, using the standard clamped projection. A degenerate zero-length
// segment collapses to point distance.
func DistPointToSegment(p, a, b Point) float64 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < geomEps*geomEps {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Dist(p, Point{X: a.X + t*abx, Y: a.Y + t*aby})
}

// PointInCone reports whether p lies inside the cone with its apex at apex,
// axis and length defined by axisEnd, and the given total spread in degrees.
// A point coincident with the apex counts as inside (its angle is undefined).
func PointInCone(p, apex, axisEnd Point, spreadDeg float64) bool {
	length := Dist(apex, axisEnd)
	d := Dist(apex, p)
	if d > length+geomEps {
		return false
	}
	if d < geomEps {
		return true
	}
	axisAng := math.Atan2(axisEnd.Y-apex.Y, axisEnd.X-apex.X)
	ptAng := math.Atan2(p.Y-apex.Y, p.X-apex.X)
	diff := normalizeAngle(ptAng - axisAng)
	half := spreadDeg / 2 * math.Pi / 180
	return math.Abs(diff) <= half+geomEps
}

// CellsAdjacent reports whether two cells are orthogonal or diagonal
// neighbours: Chebyshev distance exactly 1. A cell is not adjacent to itself.
func CellsAdjacent(a, b Cell) bool {
	dx := absInt(a.X - b.X)
	dy := absInt(a.Y - b.Y)
	return maxInt(dx, dy) == 1
}

// OppositeAcross reports whether a and b sit on exactly opposite sides or
// corners of target: both adjacent, with their sign-reduced direction
// vectors from target being exact negations.
func OppositeAcross(target, a, b Cell) bool {
	if !CellsAdjacent(target, a) || !CellsAdjacent(target, b) {
		return false
	}
	ax := signInt(a.X - target.X)
	ay := signInt(a.Y - target.Y)
	bx := signInt(b.X - target.X)
	by := signInt(b.Y - target.Y)
	return ax == -bx && ay == -by
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func signInt(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
