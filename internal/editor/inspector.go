package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"battlemap/internal/board"
)

// The inspector is rendered into a small offscreen buffer at 1x and blitted
// scaled, so the debug font stays crisp at readable size.
const (
	inspScale = 2
	inspBufW  = 230
	inspBufH  = 170
	inspPad   = 6
	inspLineH = 12
)

// drawInspector renders the selected token or zone card in the lower-left
// corner of the window.
func (e *Editor) drawInspector(screen *ebiten.Image) {
	if e.selected == nil && e.selectedZone == nil {
		return
	}

	e.inspBuf.Fill(color.RGBA{R: 14, G: 14, B: 20, A: 244})
	vector.StrokeRect(e.inspBuf, 0.5, 0.5, inspBufW-1, inspBufH-1, 1.0, color.RGBA{R: 80, G: 80, B: 110, A: 255}, false)

	y := inspPad
	put := func(line string) {
		if y > inspBufH-inspLineH {
			return
		}
		ebitenutil.DebugPrintAt(e.inspBuf, line, inspPad, y)
		y += inspLineH
	}

	if t := e.selected; t != nil {
		side := "ally"
		if t.IsEnemy {
			side = "enemy"
		}
		put(fmt.Sprintf("%s  (%s)", t.Name, side))
		put(fmt.Sprintf("hp %d  init %d  cell (%d,%d)", t.HP, t.Initiative, t.Cell.X, t.Cell.Y))
		if t.HasCondition(board.CondHidden) {
			put(fmt.Sprintf("hidden, stealth %d", t.StealthCheck))
		}
		for _, a := range t.Auras {
			put(fmt.Sprintf("aura: %s r=%.0f %s", a.Name, a.Radius, a.Affects))
		}
		fx := e.effects[t.ID]
		put(fmt.Sprintf("-- effects (%d) --", len(fx)))
		for _, ef := range fx {
			put(fmt.Sprintf("[%s] %s", effectTag(ef.Origin), ef.Text))
		}
	} else if z := e.selectedZone; z != nil {
		state := "on"
		if !z.Enabled {
			state = "off"
		}
		put(fmt.Sprintf("%s  (%s zone, %s)", z.Label, z.Kind, state))
		put(fmt.Sprintf("reach %.1f cells  affects %s", z.Radius(), z.Affects))
		owner := board.FindToken(e.tokens, z.OwnerID)
		if owner != nil {
			put(fmt.Sprintf("owner: %s", owner.Name))
		} else {
			put("owner: (deleted)")
		}
		for _, ef := range z.Effects {
			put("  " + ef)
		}
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(inspScale, inspScale)
	op.GeoM.Translate(float64(e.offX), float64(e.height-inspBufH*inspScale-e.offY))
	screen.DrawImage(e.inspBuf, &op)
}

func effectTag(o board.Origin) string {
	switch o {
	case board.OriginAura:
		return "A"
	case board.OriginZone:
		return "Z"
	case board.OriginManual:
		return "M"
	case board.OriginFlanking:
		return "F"
	}
	return "?"
}
