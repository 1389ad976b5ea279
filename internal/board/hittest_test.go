package board

import "testing"

var (
	testView = View{Zoom: 1}
	testGrid = GridConfig{CellPx: 48, FeetPerCell: 5, DeviceScale: 1}
)

func TestHitTestToken_PicksTokenUnderPointer(t *testing.T) {
	tok := NewToken("Fighter", Cell{2, 3}, false)
	// Screen point at the token's center: (2.5*48, 3.5*48).
	hit := HitTestToken([]*Token{tok}, 120, 168, testView, testGrid)
	if hit != tok {
		t.Fatal("pointer on the token center should pick it")
	}
}

func TestHitTestToken_MissesEmptyCell(t *testing.T) {
	tok := NewToken("Fighter", Cell{2, 3}, false)
	if HitTestToken([]*Token{tok}, 400, 400, testView, testGrid) != nil {
		t.Fatal("pointer far from any token should pick nothing")
	}
}

func TestHitTestToken_TopmostWins(t *testing.T) {
	bottom := NewToken("Bottom", Cell{2, 3}, false)
	top := NewToken("Top", Cell{2, 3}, true)
	hit := HitTestToken([]*Token{bottom, top}, 120, 168, testView, testGrid)
	if hit != top {
		t.Fatal("the later (topmost-drawn) token should win the pick")
	}
}

func TestHitTestToken_RespectsZoom(t *testing.T) {
	tok := NewToken("Fighter", Cell{2, 3}, false)
	v := View{Zoom: 2, PanX: 10, PanY: -20}
	sx, sy := WorldToScreen(2.5, 3.5, v, testGrid)
	if HitTestToken([]*Token{tok}, sx, sy, v, testGrid) != tok {
		t.Fatal("hit test must apply the inverse view transform")
	}
}

func TestHitTestZone_LineUsesPickTolerance(t *testing.T) {
	z := &Zone{ID: "z", Kind: ZoneLine, Enabled: true,
		Start: Point{0.5, 0.5}, End: Point{8.5, 0.5}}
	// 0.55 off-axis: outside the 0.5 membership corridor but inside the
	// 0.6 pick tolerance.
	if HitTestZone([]*Zone{z}, Point{4.5, 1.05}) != z {
		t.Fatal("pick tolerance should be looser than membership")
	}
	if HitTestZone([]*Zone{z}, Point{4.5, 1.2}) != nil {
		t.Fatal("points past the pick tolerance miss the line zone")
	}
}

func TestHitTestZone_DisabledStillPickable(t *testing.T) {
	z := &Zone{ID: "z", Kind: ZoneCircle, Enabled: false,
		Start: Point{0.5, 0.5}, End: Point{3.5, 0.5}}
	if HitTestZone([]*Zone{z}, Point{0.5, 0.5}) != z {
		t.Fatal("a disabled zone must stay pickable, or it could never be re-enabled or deleted")
	}
}

func TestHitTestZone_TopmostWins(t *testing.T) {
	a := &Zone{ID: "a", Kind: ZoneCircle, Enabled: true,
		Start: Point{0.5, 0.5}, End: Point{3.5, 0.5}}
	b := &Zone{ID: "b", Kind: ZoneCircle, Enabled: true,
		Start: Point{0.5, 0.5}, End: Point{2.5, 0.5}}
	if HitTestZone([]*Zone{a, b}, Point{0.5, 0.5}) != b {
		t.Fatal("the later zone should win when shapes overlap")
	}
}
