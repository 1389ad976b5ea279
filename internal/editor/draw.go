package editor

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"battlemap/internal/board"
)

var (
	allyColor    = color.RGBA{R: 80, G: 140, B: 220, A: 255}
	enemyColor   = color.RGBA{R: 200, G: 70, B: 60, A: 255}
	selectColor  = color.RGBA{R: 255, G: 240, B: 60, A: 220}
	targetColor  = color.RGBA{R: 255, G: 140, B: 40, A: 220}
	zoneColor    = color.RGBA{R: 120, G: 90, B: 200, A: 255}
	zoneOffColor = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	ghostColor   = color.RGBA{R: 120, G: 200, B: 160, A: 200}
)

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 16, A: 255})

	if e.worldBuf == nil {
		e.worldBuf = ebiten.NewImage(e.viewW, e.viewH)
	}
	e.worldBuf.Fill(color.RGBA{R: 22, G: 24, B: 30, A: 255})
	e.drawWorld(e.worldBuf)

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(float64(e.offX), float64(e.offY))
	screen.DrawImage(e.worldBuf, &blit)

	// Viewport border frame.
	ox := float32(e.offX)
	oy := float32(e.offY)
	vector.StrokeRect(screen, ox-1, oy-1, float32(e.viewW)+2, float32(e.viewH)+2, 2.0, color.RGBA{R: 70, G: 70, B: 95, A: 255}, false)

	logX := e.offX + e.viewW + e.offX
	e.log.Draw(screen, logX, e.height)

	e.drawTurnStrip(screen)
	if e.showHUD {
		e.drawHUD(screen)
	}
	e.drawInspector(screen)

	if e.status != "" {
		ebitenutil.DebugPrintAt(screen, e.status, e.offX+6, e.offY+6)
	}
}

// wts maps world cells to worldBuf pixels (the buffer is blitted at the
// viewport offset, so the plain view applies here).
func (e *Editor) wts(wx, wy float64) (float32, float32) {
	sx, sy := board.WorldToScreen(wx, wy, e.view, e.grid)
	return float32(sx), float32(sy)
}

func (e *Editor) drawWorld(dst *ebiten.Image) {
	e.drawGrid(dst)

	for _, z := range e.zones {
		e.drawZone(dst, z)
	}
	for _, s := range e.auraIndex {
		e.drawAuraRing(dst, s)
	}
	for _, t := range e.tokens {
		e.drawToken(dst, t)
	}
	if e.drag.Kind == board.DragMeasure {
		e.drawMeasureGhost(dst)
	}
}

// drawGrid paints the cell lines covering the visible world range.
func (e *Editor) drawGrid(dst *ebiten.Image) {
	wx0, wy0 := board.ScreenToWorld(0, 0, e.view, e.grid)
	wx1, wy1 := board.ScreenToWorld(float64(e.viewW), float64(e.viewH), e.view, e.grid)

	lineCol := color.RGBA{R: 38, G: 42, B: 52, A: 255}
	coarseCol := color.RGBA{R: 52, G: 58, B: 72, A: 255}

	for cx := int(math.Floor(wx0)); cx <= int(math.Ceil(wx1)); cx++ {
		x, _ := e.wts(float64(cx), 0)
		c := lineCol
		if cx%5 == 0 {
			c = coarseCol
		}
		vector.StrokeLine(dst, x, 0, x, float32(e.viewH), 1.0, c, false)
	}
	for cy := int(math.Floor(wy0)); cy <= int(math.Ceil(wy1)); cy++ {
		_, y := e.wts(0, float64(cy))
		c := lineCol
		if cy%5 == 0 {
			c = coarseCol
		}
		vector.StrokeLine(dst, 0, y, float32(e.viewW), y, 1.0, c, false)
	}
}

// cellPxZoomed is the on-screen size of one cell.
func (e *Editor) cellPxZoomed() float32 {
	return float32(e.grid.CellPx * e.view.Zoom)
}

// strokeRing draws a circle outline as a 24-segment line loop.
func strokeRing(dst *ebiten.Image, cx, cy, r, width float32, c color.RGBA) {
	const steps = 24
	for i := 0; i < steps; i++ {
		a0 := float64(i) / steps * 2 * math.Pi
		a1 := float64(i+1) / steps * 2 * math.Pi
		vector.StrokeLine(dst,
			cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0)),
			cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1)),
			width, c, false)
	}
}

func (e *Editor) drawZone(dst *ebiten.Image, z *board.Zone) {
	col := zoneColor
	if !z.Enabled {
		col = zoneOffColor
	}
	fill := color.RGBA{R: col.R, G: col.G, B: col.B, A: 36}
	if z == e.selectedZone {
		col.A = 255
		fill.A = 56
	}

	sx, sy := e.wts(z.Start.X, z.Start.Y)
	ex, ey := e.wts(z.End.X, z.End.Y)
	cp := e.cellPxZoomed()

	switch z.Kind {
	case board.ZoneCircle:
		r := float32(z.Radius()) * cp
		vector.FillCircle(dst, sx, sy, r, fill, true)
		strokeRing(dst, sx, sy, r, 1.5, col)
	case board.ZoneLine:
		// Corridor of one cell total width.
		vector.StrokeLine(dst, sx, sy, ex, ey, cp*2*board.LineHalfWidth, fill, true)
		vector.StrokeLine(dst, sx, sy, ex, ey, 1.5, col, false)
	case board.ZoneCone:
		e.fillConePath(dst, z.Start, z.End, fill, col)
	}
	// Anchor handles.
	vector.FillCircle(dst, sx, sy, 3, col, false)
	vector.FillCircle(dst, ex, ey, 3, col, false)
}

// fillConePath renders a cone zone as a filled fan from the apex: apex,
// then arc points, then close.
func (e *Editor) fillConePath(dst *ebiten.Image, apex, axisEnd board.Point, fill, edge color.RGBA) {
	arc := coneFanPoints(apex, axisEnd)
	if arc == nil {
		return
	}

	ax, ay := e.wts(apex.X, apex.Y)
	var p vector.Path
	p.MoveTo(ax, ay)
	for _, pt := range arc {
		px, py := e.wts(pt.X, pt.Y)
		p.LineTo(px, py)
	}
	p.Close()
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(fill)
	vector.FillPath(dst, &p, nil, op)

	// Bounding rays to the first and last arc points.
	for _, pt := range []board.Point{arc[0], arc[len(arc)-1]} {
		px, py := e.wts(pt.X, pt.Y)
		vector.StrokeLine(dst, ax, ay, px, py, 1.5, edge, false)
	}
}

// coneFanPoints samples the cone's far arc in world cells, sweeping the
// full spread from one bounding ray to the other. Nil for a degenerate
// zero-length cone.
func coneFanPoints(apex, axisEnd board.Point) []board.Point {
	length := board.Dist(apex, axisEnd)
	if length <= 0 {
		return nil
	}
	axis := math.Atan2(axisEnd.Y-apex.Y, axisEnd.X-apex.X)
	half := board.ConeSpreadDeg / 2 * math.Pi / 180

	const steps = 18
	out := make([]board.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := axis - half + 2*half*float64(i)/steps
		out = append(out, board.Point{
			X: apex.X + math.Cos(a)*length,
			Y: apex.Y + math.Sin(a)*length,
		})
	}
	return out
}

func (e *Editor) drawAuraRing(dst *ebiten.Image, s board.AuraSource) {
	cx, cy := e.wts(s.Center.X, s.Center.Y)
	r := float32(s.Entry.Radius) * e.cellPxZoomed()
	col := allyColor
	if s.OwnerEnemy {
		col = enemyColor
	}
	col.A = 90
	strokeRing(dst, cx, cy, r, 1.0, col)
}

func (e *Editor) drawToken(dst *ebiten.Image, t *board.Token) {
	c := t.Center()
	cx, cy := e.wts(c.X, c.Y)
	cp := e.cellPxZoomed()
	r := cp * 0.42

	body := t.Color
	if body.A == 0 {
		body = allyColor
		if t.IsEnemy {
			body = enemyColor
		}
	}
	vector.FillCircle(dst, cx, cy, r, body, true)
	strokeRing(dst, cx, cy, r, 1.2, color.RGBA{R: 20, G: 20, B: 24, A: 255})

	// Highlight ring for advantaged targets, selection ring, turn marker.
	if e.highlights[t.ID] {
		strokeRing(dst, cx, cy, r+5, 1.5, targetColor)
	}
	if t == e.selected {
		strokeRing(dst, cx, cy, r+3, 1.5, selectColor)
	}
	if order, cursor := e.currentOrder(); len(order) > 0 && order[cursor] == t {
		vector.FillCircle(dst, cx, cy-r-8, 3, selectColor, false)
	}

	// Name and HP under the token.
	label := fmt.Sprintf("%s %d", t.Name, t.HP)
	tw := len(label) * 7
	text.Draw(dst, label, basicfont.Face7x13, int(cx)-tw/2, int(cy+r)+14, color.White)

	// Effect-count badge, top-right of the circle.
	if n := len(e.effects[t.ID]); n > 0 {
		bx := cx + r - 2
		by := cy - r + 2
		vector.FillCircle(dst, bx, by, 7, color.RGBA{R: 40, G: 44, B: 60, A: 230}, true)
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d", n), int(bx)-3, int(by)-8)
	}

	// Hidden tokens render with a faint overlay dot.
	if t.HasCondition(board.CondHidden) {
		vector.FillCircle(dst, cx, cy, r*0.3, color.RGBA{R: 230, G: 230, B: 240, A: 120}, true)
	}
}

// drawMeasureGhost renders the uncommitted measurement shape with a
// distance label in feet.
func (e *Editor) drawMeasureGhost(dst *ebiten.Image) {
	g := e.drag
	sx, sy := e.wts(g.GhostStart.X, g.GhostStart.Y)
	ex, ey := e.wts(g.GhostEnd.X, g.GhostEnd.Y)

	dist := board.Dist(g.GhostStart, g.GhostEnd)
	r := float32(dist) * e.cellPxZoomed()

	vector.StrokeLine(dst, sx, sy, ex, ey, 1.0, ghostColor, false)
	strokeRing(dst, sx, sy, r, 1.0, ghostColor)

	label := fmt.Sprintf("%.0f ft", board.CellsToFeet(dist, e.grid))
	ebitenutil.DebugPrintAt(dst, label, int(ex)+8, int(ey)-4)
}
