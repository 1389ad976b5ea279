package board

import "github.com/google/uuid"

// ZoneKind selects the geometry of a lingering zone.
type ZoneKind string

const (
	ZoneCircle ZoneKind = "circle"
	ZoneLine   ZoneKind = "line"
	ZoneCone   ZoneKind = "cone"
)

const (
	// LineHalfWidth is the corridor half-width of a line zone, in cells.
	LineHalfWidth = 0.5
	// LinePickTolerance is the slightly looser threshold used when
	// pointer-picking a line zone, to ease selection.
	LinePickTolerance = 0.6
	// ConeSpreadDeg is the fixed total spread of a cone zone.
	ConeSpreadDeg = 60.0
	// DefaultZoneReach is how far, in cells, a freshly placed zone extends
	// from its anchor along the default +X direction.
	DefaultZoneReach = 3.0
)

// Zone is a persistent, user-placed area effect. It records the token that
// created it for allegiance filtering but is otherwise independent of that
// token's later movement or deletion — lingering is literal, there is no
// round clock to expire it.
type Zone struct {
	ID      string
	Kind    ZoneKind
	Start   Point // cell-center anchor
	End     Point // cell-center anchor
	OwnerID string
	Affects Affects
	Enabled bool
	Label   string
	Effects []string
}

// NewZoneFrom places a zone anchored at the owner's current center,
// extended by the default reach along +X.
func NewZoneFrom(owner *Token, kind ZoneKind, label string) *Zone {
	start := owner.Center()
	end := SnapToCellCenter(Point{X: start.X + DefaultZoneReach, Y: start.Y})
	return &Zone{
		ID:      uuid.NewString(),
		Kind:    kind,
		Start:   start,
		End:     end,
		OwnerID: owner.ID,
		Affects: AffectsAll,
		Enabled: true,
		Label:   label,
	}
}

// Radius returns the scalar distance between the anchors: the circle
// radius, the line length, or the cone length depending on kind.
func (z *Zone) Radius() float64 {
	return Dist(z.Start, z.End)
}

// Contains reports whether a world point lies inside the zone's shape.
func (z *Zone) Contains(p Point) bool {
	switch z.Kind {
	case ZoneCircle:
		return PointInCircle(p, z.Start, z.Radius())
	case ZoneLine:
		return DistPointToSegment(p, z.Start, z.End) <= LineHalfWidth+geomEps
	case ZoneCone:
		return PointInCone(p, z.Start, z.End, ConeSpreadDeg)
	default:
		return false
	}
}

// Translate moves the whole zone by a cell delta and re-snaps both anchors
// to cell centers, so a drag never changes the shape.
func (z *Zone) Translate(dx, dy float64) {
	z.Start = SnapToCellCenter(Point{X: z.Start.X + dx, Y: z.Start.Y + dy})
	z.End = SnapToCellCenter(Point{X: z.End.X + dx, Y: z.End.Y + dy})
}

// FindZone returns the zone with the given id, or nil.
func FindZone(zones []*Zone, id string) *Zone {
	for _, z := range zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}

// RemoveZone deletes the zone with the given id, preserving order.
func RemoveZone(zones []*Zone, id string) []*Zone {
	for i, z := range zones {
		if z.ID == id {
			return append(zones[:i], zones[i+1:]...)
		}
	}
	return zones
}
