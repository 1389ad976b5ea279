package board

import (
	"math"
	"testing"
)

func roundTrip(t *testing.T, sx, sy float64, v View, g GridConfig) {
	t.Helper()
	wx, wy := ScreenToWorld(sx, sy, v, g)
	bx, by := WorldToScreen(wx, wy, v, g)
	if math.Abs(bx-sx) > 1e-9 || math.Abs(by-sy) > 1e-9 {
		t.Fatalf("round trip drifted: (%.2f,%.2f) -> (%.6f,%.6f)", sx, sy, bx, by)
	}
}

func TestMapper_RoundTrip_Identity(t *testing.T) {
	roundTrip(t, 100, 200, View{Zoom: 1}, GridConfig{CellPx: 48, DeviceScale: 1})
}

func TestMapper_RoundTrip_ZoomedAndPanned(t *testing.T) {
	v := View{Zoom: 2.5, PanX: -321.5, PanY: 87.25}
	g := GridConfig{CellPx: 64, DeviceScale: 2}
	for _, p := range [][2]float64{{0, 0}, {13.7, -42.1}, {1904, 912}, {-500, 1e6}} {
		roundTrip(t, p[0], p[1], v, g)
	}
}

func TestMapper_RoundTrip_FractionalZoom(t *testing.T) {
	roundTrip(t, 640, 360, View{Zoom: 0.73, PanX: 12.3, PanY: -9.9},
		GridConfig{CellPx: 50, DeviceScale: 1.5})
}

func TestWorldToScreen_KnownValue(t *testing.T) {
	// Cell 2 at 48px cells, zoom 1, pan 10 → 2*48 + 10 = 106.
	sx, sy := WorldToScreen(2, 0, View{Zoom: 1, PanX: 10}, GridConfig{CellPx: 48, DeviceScale: 1})
	if sx != 106 || sy != 0 {
		t.Fatalf("expected (106,0), got (%.2f,%.2f)", sx, sy)
	}
}

func TestCellAt_NegativeCoordinates(t *testing.T) {
	c := CellAt(-0.25, -1.75)
	if c.X != -1 || c.Y != -2 {
		t.Fatalf("expected (-1,-2), got (%d,%d)", c.X, c.Y)
	}
}

func TestSnapToCellCenter(t *testing.T) {
	p := SnapToCellCenter(Point{3.9, -0.1})
	if p.X != 3.5 || p.Y != -0.5 {
		t.Fatalf("expected (3.5,-0.5), got (%.2f,%.2f)", p.X, p.Y)
	}
}

func TestCellsToFeet(t *testing.T) {
	g := GridConfig{FeetPerCell: 5}
	if CellsToFeet(6, g) != 30 {
		t.Fatal("6 cells at 5ft should be 30ft")
	}
}
