package board

import (
	"math"
	"testing"
)

func TestNewZoneFrom_AnchorsAtOwnerCenter(t *testing.T) {
	owner := NewToken("Wizard", Cell{4, 4}, false)
	z := NewZoneFrom(owner, ZoneCircle, "Web")
	if z.Start != (Point{4.5, 4.5}) {
		t.Fatalf("zone should anchor at the owner's center, got %+v", z.Start)
	}
	if math.Abs(z.Radius()-DefaultZoneReach) > 1e-9 {
		t.Fatalf("fresh zone should extend the default reach, got %.2f", z.Radius())
	}
	if !z.Enabled {
		t.Fatal("fresh zones start enabled")
	}
}

func TestZoneTranslate_PreservesRadius(t *testing.T) {
	owner := NewToken("Wizard", Cell{4, 4}, false)
	z := NewZoneFrom(owner, ZoneCircle, "Web")
	before := z.Radius()
	z.Translate(3, -2)
	if math.Abs(z.Radius()-before) > 1e-9 {
		t.Fatalf("translate changed the radius: %.4f -> %.4f", before, z.Radius())
	}
}

func TestZoneTranslate_ResnapsToCellCenters(t *testing.T) {
	owner := NewToken("Wizard", Cell{0, 0}, false)
	z := NewZoneFrom(owner, ZoneLine, "Wall of Fire")
	z.Translate(1.3, 0.8)
	for _, p := range []Point{z.Start, z.End} {
		if math.Mod(p.X, 1) != 0.5 || math.Mod(p.Y, 1) != 0.5 {
			t.Fatalf("anchor not snapped to a cell center: %+v", p)
		}
	}
}

func TestZoneContains_Circle(t *testing.T) {
	z := &Zone{Kind: ZoneCircle, Start: Point{0.5, 0.5}, End: Point{3.5, 0.5}}
	if !z.Contains(Point{0.5, 3.5}) {
		t.Fatal("point at exactly the radius should be inside")
	}
	if z.Contains(Point{0.5, 3.6}) {
		t.Fatal("point past the radius should be outside")
	}
}

func TestZoneContains_LineCorridor(t *testing.T) {
	z := &Zone{Kind: ZoneLine, Start: Point{0.5, 0.5}, End: Point{8.5, 0.5}}
	if !z.Contains(Point{4.5, 0.9}) {
		t.Fatal("point inside the half-width corridor should be inside")
	}
	if z.Contains(Point{4.5, 1.2}) {
		t.Fatal("point past the half-width should be outside")
	}
}

func TestZoneContains_Cone(t *testing.T) {
	z := &Zone{Kind: ZoneCone, Start: Point{0.5, 0.5}, End: Point{4.5, 0.5}}
	if !z.Contains(Point{2.5, 0.5}) {
		t.Fatal("point on the cone axis should be inside")
	}
	if z.Contains(Point{2.5, 2.5}) {
		t.Fatal("point outside the 30-degree half-angle should be outside")
	}
}

func TestRemoveZone(t *testing.T) {
	owner := NewToken("Wizard", Cell{0, 0}, false)
	a := NewZoneFrom(owner, ZoneCircle, "A")
	b := NewZoneFrom(owner, ZoneCircle, "B")
	zones := RemoveZone([]*Zone{a, b}, a.ID)
	if len(zones) != 1 || zones[0] != b {
		t.Fatalf("expected only zone B to remain, got %d zones", len(zones))
	}
}

func TestFindZone_Missing(t *testing.T) {
	if FindZone(nil, "nope") != nil {
		t.Fatal("FindZone on an empty set should return nil")
	}
}
