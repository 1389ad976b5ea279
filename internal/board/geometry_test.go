package board

import (
	"math"
	"testing"
)

func TestPointInCircle_Inside(t *testing.T) {
	if !PointInCircle(Point{1, 1}, Point{0, 0}, 2) {
		t.Fatal("point inside radius should be in circle")
	}
}

func TestPointInCircle_BoundaryInclusive(t *testing.T) {
	// Distance exactly equals the radius — must be inside.
	if !PointInCircle(Point{3, 4}, Point{0, 0}, 5) {
		t.Fatal("point on the boundary should be in circle")
	}
}

func TestPointInCircle_JustOutside(t *testing.T) {
	if PointInCircle(Point{5.01, 0}, Point{0, 0}, 5) {
		t.Fatal("point past the boundary should not be in circle")
	}
}

func TestDistPointToSegment_Perpendicular(t *testing.T) {
	d := DistPointToSegment(Point{5, 3}, Point{0, 0}, Point{10, 0})
	if math.Abs(d-3) > 1e-9 {
		t.Fatalf("expected perpendicular distance 3, got %.6f", d)
	}
}

func TestDistPointToSegment_ClampsToEndpoint(t *testing.T) {
	// Point beyond the end of the segment clamps to the nearest endpoint.
	d := DistPointToSegment(Point{14, 3}, Point{0, 0}, Point{10, 0})
	want := math.Sqrt(16 + 9)
	if math.Abs(d-want) > 1e-9 {
		t.Fatalf("expected endpoint distance %.4f, got %.6f", want, d)
	}
}

func TestDistPointToSegment_DegenerateSegment(t *testing.T) {
	d := DistPointToSegment(Point{3, 4}, Point{0, 0}, Point{0, 0})
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("zero-length segment should collapse to point distance, got %.6f", d)
	}
}

func TestPointInCone_OnAxis(t *testing.T) {
	if !PointInCone(Point{2, 0}, Point{0, 0}, Point{4, 0}, 60) {
		t.Fatal("point on the cone axis should be inside")
	}
}

func TestPointInCone_ApexCoincident(t *testing.T) {
	// Angle undefined at the apex; treated as inside.
	if !PointInCone(Point{0, 0}, Point{0, 0}, Point{4, 0}, 60) {
		t.Fatal("point coincident with the apex should be inside")
	}
}

func TestPointInCone_BeyondLength(t *testing.T) {
	if PointInCone(Point{5, 0}, Point{0, 0}, Point{4, 0}, 60) {
		t.Fatal("point past the cone length should be outside")
	}
}

func TestPointInCone_OutsideSpread(t *testing.T) {
	// 45 degrees off-axis is outside a 60-degree (±30) cone.
	if PointInCone(Point{1, 1}, Point{0, 0}, Point{4, 0}, 60) {
		t.Fatal("point outside the half-angle should be outside the cone")
	}
	// But inside a 120-degree (±60) cone.
	if !PointInCone(Point{1, 1}, Point{0, 0}, Point{4, 0}, 120) {
		t.Fatal("point within a wider spread should be inside")
	}
}

func TestCellsAdjacent_Orthogonal(t *testing.T) {
	if !CellsAdjacent(Cell{5, 5}, Cell{6, 5}) {
		t.Fatal("orthogonal neighbours should be adjacent")
	}
}

func TestCellsAdjacent_Diagonal(t *testing.T) {
	if !CellsAdjacent(Cell{5, 5}, Cell{6, 6}) {
		t.Fatal("diagonal neighbours should be adjacent")
	}
}

func TestCellsAdjacent_SameCell(t *testing.T) {
	if CellsAdjacent(Cell{5, 5}, Cell{5, 5}) {
		t.Fatal("a cell is not adjacent to itself")
	}
}

func TestCellsAdjacent_TwoAway(t *testing.T) {
	if CellsAdjacent(Cell{5, 5}, Cell{7, 5}) {
		t.Fatal("cells two apart are not adjacent")
	}
}

func TestOppositeAcross_Horizontal(t *testing.T) {
	if !OppositeAcross(Cell{5, 5}, Cell{4, 5}, Cell{6, 5}) {
		t.Fatal("east/west neighbours are opposite across the target")
	}
}

func TestOppositeAcross_Diagonal(t *testing.T) {
	if !OppositeAcross(Cell{5, 5}, Cell{4, 4}, Cell{6, 6}) {
		t.Fatal("opposite corners are opposite across the target")
	}
}

func TestOppositeAcross_NotOpposite(t *testing.T) {
	if OppositeAcross(Cell{5, 5}, Cell{4, 5}, Cell{4, 6}) {
		t.Fatal("two neighbours on the same side are not opposite")
	}
}

func TestOppositeAcross_NotAdjacent(t *testing.T) {
	if OppositeAcross(Cell{5, 5}, Cell{3, 5}, Cell{7, 5}) {
		t.Fatal("non-adjacent cells cannot flank")
	}
}

func TestCellCenter(t *testing.T) {
	c := Cell{3, -2}.Center()
	if c.X != 3.5 || c.Y != -1.5 {
		t.Fatalf("expected (3.5,-1.5), got (%.1f,%.1f)", c.X, c.Y)
	}
}
