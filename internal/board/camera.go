package board

import "math"

// View is the camera state: zoom factor plus pan offset in device-scaled
// screen pixels.
type View struct {
	Zoom float64
	PanX float64
	PanY float64
}

// GridConfig describes the grid scale. CellPx is the size of one cell in
// logical pixels at zoom 1; DeviceScale is the device pixel ratio applied
// as a final output scale; FeetPerCell is used only for measurement labels,
// never for geometry.
type GridConfig struct {
	CellPx      float64
	FeetPerCell float64
	DeviceScale float64
}

// WorldToScreen converts world-cell coordinates to device pixel coordinates.
// The inverse of ScreenToWorld for all finite inputs; hit-testing, dragging
// and zone anchoring all rely on the pair staying exact.
func WorldToScreen(wx, wy float64, v View, g GridConfig) (float64, float64) {
	sx := (wx*g.CellPx*v.Zoom + v.PanX) * g.DeviceScale
	sy := (wy*g.CellPx*v.Zoom + v.PanY) * g.DeviceScale
	return sx, sy
}

// ScreenToWorld converts device pixel coordinates back to world cells.
func ScreenToWorld(sx, sy float64, v View, g GridConfig) (float64, float64) {
	wx := (sx/g.DeviceScale - v.PanX) / (g.CellPx * v.Zoom)
	wy := (sy/g.DeviceScale - v.PanY) / (g.CellPx * v.Zoom)
	return wx, wy
}

// CellAt returns the integer cell containing the given world point.
func CellAt(wx, wy float64) Cell {
	return Cell{X: int(math.Floor(wx)), Y: int(math.Floor(wy))}
}

// SnapToCellCenter snaps a world point to the center of its cell. Snapping
// is caller policy, not part of the mapper itself.
func SnapToCellCenter(p Point) Point {
	return Point{X: math.Floor(p.X) + 0.5, Y: math.Floor(p.Y) + 0.5}
}

// CellsToFeet converts a cell distance to feet for display labels.
func CellsToFeet(cells float64, g GridConfig) float64 {
	return cells * g.FeetPerCell
}
