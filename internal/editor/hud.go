package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var hudLines = []string{
	"drag: move token/zone, empty: pan | right-drag: measure | wheel: zoom",
	"A/E add ally/enemy  X del  C/L/K circle/line/cone zone  T toggle zone",
	"H hidden  G advantage  R sneak-attack  1-6 auras  =/- hp  [/] init",
	"N/P turn  Y copy report  Tab hud",
}

// drawHUD paints the key legend along the bottom edge of the viewport.
func (e *Editor) drawHUD(screen *ebiten.Image) {
	h := len(hudLines)*logLineHeight + 8
	x := float32(e.offX + e.viewW - 470)
	y := float32(e.offY + e.viewH - h - 4)
	vector.FillRect(screen, x, y, 466, float32(h), color.RGBA{R: 10, G: 10, B: 14, A: 210}, false)
	for i, line := range hudLines {
		ebitenutil.DebugPrintAt(screen, line, int(x)+6, int(y)+4+i*logLineHeight)
	}
}

// drawTurnStrip renders the initiative order across the top of the viewport
// with a marker on the token whose turn it is.
func (e *Editor) drawTurnStrip(screen *ebiten.Image) {
	order, cursor := e.currentOrder()
	if len(order) == 0 {
		return
	}

	x := e.offX
	y := 4
	for i, t := range order {
		label := fmt.Sprintf("%d %s", t.Initiative, t.Name)
		w := len(label)*6 + 14
		bg := color.RGBA{R: 26, G: 28, B: 38, A: 255}
		if i == cursor {
			bg = color.RGBA{R: 60, G: 58, B: 30, A: 255}
			label = "> " + label
			w += 12
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), 15, bg, false)
		side := allyColor
		if t.IsEnemy {
			side = enemyColor
		}
		vector.FillRect(screen, float32(x), float32(y), 3, 15, side, false)
		ebitenutil.DebugPrintAt(screen, label, x+6, y)
		x += w + 4
		if x > e.offX+e.viewW-120 {
			break
		}
	}
}
