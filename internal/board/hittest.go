package board

// TokenPickRadius is how far, in cells, a pointer may land from a token's
// center and still pick it. Tokens fill their cell, so half a cell plus a
// small grace margin.
const TokenPickRadius = 0.6

// HitTestToken returns the topmost token whose pick circle contains the
// screen point, or nil. Tokens later in the slice draw on top, so the scan
// runs back to front.
func HitTestToken(tokens []*Token, sx, sy float64, v View, g GridConfig) *Token {
	wx, wy := ScreenToWorld(sx, sy, v, g)
	p := Point{X: wx, Y: wy}
	for i := len(tokens) - 1; i >= 0; i-- {
		if PointInCircle(p, tokens[i].Center(), TokenPickRadius) {
			return tokens[i]
		}
	}
	return nil
}

// HitTestZone returns the topmost zone whose shape contains the world
// point, or nil. Disabled zones stay pickable: the pointer is the only way
// to select one for re-enabling, editing or deletion. Line zones use the
// looser pick tolerance so a thin corridor is still grabbable.
func HitTestZone(zones []*Zone, p Point) *Zone {
	for i := len(zones) - 1; i >= 0; i-- {
		z := zones[i]
		var hit bool
		switch z.Kind {
		case ZoneLine:
			hit = DistPointToSegment(p, z.Start, z.End) <= LinePickTolerance+geomEps
		default:
			hit = z.Contains(p)
		}
		if hit {
			return z
		}
	}
	return nil
}
