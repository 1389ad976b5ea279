package board

// DragKind discriminates the single active pointer-drag session. Exactly
// one drag may run at a time; pointer-up clears it unconditionally no
// matter where the pointer is released.
type DragKind int

const (
	DragNone DragKind = iota
	DragToken
	DragPan
	DragZone
	DragMeasure
)

// DragSession is the active drag's state. Only the fields for its kind are
// meaningful.
type DragSession struct {
	Kind DragKind

	// DragToken: the token being moved and its cell at pointer-down.
	TokenID    string
	OriginCell Cell

	// DragPan: the view pan offset at pointer-down plus the anchor screen
	// point.
	OriginPanX   float64
	OriginPanY   float64
	AnchorScreen Point

	// DragZone: the zone being moved, its anchors at pointer-down, and the
	// world point grabbed.
	ZoneID      string
	OriginStart Point
	OriginEnd   Point
	GrabWorld   Point

	// DragMeasure: the uncommitted ghost shape being stretched out. Ghost
	// anchors live in world cells like a zone's.
	GhostKind  ZoneKind
	GhostStart Point
	GhostEnd   Point
}

// Active reports whether a drag session is running.
func (d *DragSession) Active() bool {
	return d.Kind != DragNone
}

// Clear resets the session. Called on pointer-up regardless of outcome.
func (d *DragSession) Clear() {
	*d = DragSession{}
}
