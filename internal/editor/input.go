package editor

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"battlemap/internal/board"
)

// edgeKeys lists every key the editor edge-triggers. All of them are
// polled every frame, even when their action is gated on selection, so a
// key held across gated frames never replays its edge once the gate opens.
var edgeKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyE, ebiten.KeyX, ebiten.KeyDelete,
	ebiten.KeyC, ebiten.KeyL, ebiten.KeyK, ebiten.KeyT,
	ebiten.KeyN, ebiten.KeyP,
	ebiten.KeyH, ebiten.KeyG, ebiten.KeyR,
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.KeyEqual, ebiten.KeyMinus,
	ebiten.KeyBracketRight, ebiten.KeyBracketLeft,
	ebiten.KeyTab, ebiten.KeyY,
}

// keyEdges returns the keys down this frame that were up the previous one.
func keyEdges(current, prev map[ebiten.Key]bool) map[ebiten.Key]bool {
	out := make(map[ebiten.Key]bool, len(current))
	for k, down := range current {
		if down && !prev[k] {
			out[k] = true
		}
	}
	return out
}

// handleInput processes keys (edge-triggered via the prevKeys map) and the
// pointer state machine. Exactly one drag session runs at a time; pointer
// up clears it unconditionally wherever the pointer lands.
func (e *Editor) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(edgeKeys))
	for _, k := range edgeKeys {
		currentKeys[k] = ebiten.IsKeyPressed(k)
	}
	edges := keyEdges(currentKeys, e.prevKeys)
	pressed := func(k ebiten.Key) bool { return edges[k] }

	mx, my := ebiten.CursorPosition()
	wx, wy := board.ScreenToWorld(float64(mx), float64(my), e.viewForMap(), e.grid)
	cursorCell := board.CellAt(wx, wy)
	cursorWorld := board.Point{X: wx, Y: wy}

	// Camera pan: arrow keys, slower when zoomed in.
	panSpeed := 8.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		e.view.PanY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		e.view.PanY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		e.view.PanX += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		e.view.PanX -= panSpeed
	}

	// Wheel zoom toward the cursor: the world point under the pointer must
	// stay put across the zoom change.
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		oldZoom := e.view.Zoom
		newZoom := oldZoom * math.Pow(1.12, wheelY)
		if newZoom < zoomMin {
			newZoom = zoomMin
		}
		if newZoom > zoomMax {
			newZoom = zoomMax
		}
		if newZoom != oldZoom {
			factor := newZoom / oldZoom
			mfx := float64(mx) - float64(e.offX)
			mfy := float64(my) - float64(e.offY)
			e.view.PanX = mfx - (mfx-e.view.PanX)*factor
			e.view.PanY = mfy - (mfy-e.view.PanY)*factor
			e.view.Zoom = newZoom
		}
	}

	// Token placement at the cursor cell.
	if pressed(ebiten.KeyA) {
		t := board.NewToken(fmt.Sprintf("Ally %d", e.countSide(false)+1), cursorCell, false)
		e.tokens = append(e.tokens, t)
		e.selected = t
		e.log.Add("token", fmt.Sprintf("%s placed at (%d,%d)", t.Name, t.Cell.X, t.Cell.Y))
	}
	if pressed(ebiten.KeyE) {
		t := board.NewToken(fmt.Sprintf("Enemy %d", e.countSide(true)+1), cursorCell, true)
		e.tokens = append(e.tokens, t)
		e.selected = t
		e.log.Add("token", fmt.Sprintf("%s placed at (%d,%d)", t.Name, t.Cell.X, t.Cell.Y))
	}

	// Deletion: selected zone first, then selected token.
	if pressed(ebiten.KeyX) || pressed(ebiten.KeyDelete) {
		switch {
		case e.selectedZone != nil:
			e.log.Add("zone", fmt.Sprintf("%s deleted", e.selectedZone.Label))
			e.zones = board.RemoveZone(e.zones, e.selectedZone.ID)
			e.selectedZone = nil
		case e.selected != nil:
			e.log.Add("token", fmt.Sprintf("%s deleted", e.selected.Name))
			e.removeToken(e.selected)
		}
	}

	// Zone placement anchored at the selected token.
	for _, zk := range []struct {
		key  ebiten.Key
		kind board.ZoneKind
	}{
		{ebiten.KeyC, board.ZoneCircle},
		{ebiten.KeyL, board.ZoneLine},
		{ebiten.KeyK, board.ZoneCone},
	} {
		if pressed(zk.key) {
			if e.selected == nil {
				e.status = "select a token to anchor a zone"
				continue
			}
			z := board.NewZoneFrom(e.selected, zk.kind, fmt.Sprintf("%s %s", e.selected.Name, zk.kind))
			e.zones = append(e.zones, z)
			e.selectedZone = z
			e.log.Add("zone", fmt.Sprintf("%s zone placed by %s", zk.kind, e.selected.Name))
		}
	}
	if pressed(ebiten.KeyT) && e.selectedZone != nil {
		e.selectedZone.Enabled = !e.selectedZone.Enabled
		e.log.Add("zone", fmt.Sprintf("%s enabled=%v", e.selectedZone.Label, e.selectedZone.Enabled))
	}

	// Turn order: N next, P previous. Advancing selects the token whose
	// turn it now is — a UI policy layered on the sequencer.
	if pressed(ebiten.KeyN) {
		e.stepTurn(+1)
	}
	if pressed(ebiten.KeyP) {
		e.stepTurn(-1)
	}

	// Condition tags on the selected token.
	if e.selected != nil {
		if pressed(ebiten.KeyH) {
			e.toggleCondition(e.selected, board.CondHidden)
		}
		if pressed(ebiten.KeyG) {
			e.toggleCondition(e.selected, board.CondAdvantage)
		}
		if pressed(ebiten.KeyR) {
			e.toggleCondition(e.selected, board.CondSneakAttackReady)
		}

		// Digits toggle aura templates from the preset library.
		digitKeys := []ebiten.Key{
			ebiten.Key1, ebiten.Key2, ebiten.Key3,
			ebiten.Key4, ebiten.Key5, ebiten.Key6,
		}
		for i, k := range digitKeys {
			if i < len(e.presets.Auras) && pressed(k) {
				e.toggleAura(e.selected, e.presets.Auras[i])
			}
		}

		// HP and initiative nudges.
		if pressed(ebiten.KeyEqual) {
			e.selected.HP++
		}
		if pressed(ebiten.KeyMinus) {
			e.selected.HP--
		}
		if pressed(ebiten.KeyBracketRight) {
			e.selected.Initiative++
		}
		if pressed(ebiten.KeyBracketLeft) {
			e.selected.Initiative--
		}
	}

	if pressed(ebiten.KeyTab) {
		e.showHUD = !e.showHUD
	}
	if pressed(ebiten.KeyY) {
		e.copyReport()
	}

	e.handlePointer(mx, my, cursorCell, cursorWorld)
	e.prevKeys = currentKeys
}

// handlePointer runs the modal drag state machine.
func (e *Editor) handlePointer(mx, my int, cursorCell board.Cell, cursorWorld board.Point) {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	// Left pointer-down: start token, zone or pan drag.
	if left && !e.prevMouseLeft && !e.drag.Active() {
		if tok := board.HitTestToken(e.tokens, float64(mx), float64(my), e.viewForMap(), e.grid); tok != nil {
			e.selected = tok
			e.selectedZone = nil
			e.drag = board.DragSession{
				Kind:       board.DragToken,
				TokenID:    tok.ID,
				OriginCell: tok.Cell,
			}
		} else if z := board.HitTestZone(e.zones, cursorWorld); z != nil {
			e.selectedZone = z
			e.selected = nil
			e.drag = board.DragSession{
				Kind:        board.DragZone,
				ZoneID:      z.ID,
				OriginStart: z.Start,
				OriginEnd:   z.End,
				GrabWorld:   cursorWorld,
			}
		} else {
			e.selected = nil
			e.selectedZone = nil
			e.drag = board.DragSession{
				Kind:         board.DragPan,
				OriginPanX:   e.view.PanX,
				OriginPanY:   e.view.PanY,
				AnchorScreen: board.Point{X: float64(mx), Y: float64(my)},
			}
		}
	}

	// Right pointer-down: start a measurement ghost.
	if right && !e.prevMouseRight && !e.drag.Active() {
		start := board.SnapToCellCenter(cursorWorld)
		e.drag = board.DragSession{
			Kind:       board.DragMeasure,
			GhostKind:  board.ZoneCircle,
			GhostStart: start,
			GhostEnd:   start,
		}
	}

	// Drag motion.
	switch e.drag.Kind {
	case board.DragToken:
		if tok := board.FindToken(e.tokens, e.drag.TokenID); tok != nil {
			tok.Cell = cursorCell
		}
	case board.DragZone:
		if z := board.FindZone(e.zones, e.drag.ZoneID); z != nil {
			z.Start = e.drag.OriginStart
			z.End = e.drag.OriginEnd
			z.Translate(cursorWorld.X-e.drag.GrabWorld.X, cursorWorld.Y-e.drag.GrabWorld.Y)
		}
	case board.DragPan:
		e.view.PanX = e.drag.OriginPanX + float64(mx) - e.drag.AnchorScreen.X
		e.view.PanY = e.drag.OriginPanY + float64(my) - e.drag.AnchorScreen.Y
	case board.DragMeasure:
		e.drag.GhostEnd = board.SnapToCellCenter(cursorWorld)
	}

	// Pointer-up ends whatever drag was running. The measurement ghost is
	// discarded, never committed.
	if e.drag.Active() {
		releasedLeft := !left && e.drag.Kind != board.DragMeasure
		releasedRight := !right && e.drag.Kind == board.DragMeasure
		if releasedLeft || releasedRight {
			if e.drag.Kind == board.DragToken {
				if tok := board.FindToken(e.tokens, e.drag.TokenID); tok != nil && tok.Cell != e.drag.OriginCell {
					e.log.Add("token", fmt.Sprintf("%s moved to (%d,%d)", tok.Name, tok.Cell.X, tok.Cell.Y))
				}
			}
			e.drag.Clear()
		}
	}

	e.prevMouseLeft = left
	e.prevMouseRight = right
}

func (e *Editor) stepTurn(dir int) {
	order, cursor := e.currentOrder()
	if len(order) == 0 {
		return
	}
	e.turnCursor = board.AdvanceCursor(cursor, len(order), dir)
	e.selected = order[e.turnCursor]
	e.selectedZone = nil
	e.log.Add("turn", fmt.Sprintf("%s's turn", e.selected.Name))
}

func (e *Editor) toggleCondition(t *board.Token, name string) {
	if t.HasCondition(name) {
		t.RemoveCondition(name)
		e.log.Add("cond", fmt.Sprintf("%s: -%s", t.Name, name))
	} else {
		t.AddCondition(name)
		e.log.Add("cond", fmt.Sprintf("%s: +%s", t.Name, name))
	}
}

func (e *Editor) toggleAura(t *board.Token, tpl board.AuraTemplate) {
	for i, a := range t.Auras {
		if a.Key == tpl.Key {
			t.Auras = append(t.Auras[:i], t.Auras[i+1:]...)
			e.log.Add("aura", fmt.Sprintf("%s: -%s", t.Name, tpl.Name))
			return
		}
	}
	t.Auras = append(t.Auras, tpl.Entry())
	e.log.Add("aura", fmt.Sprintf("%s: +%s", t.Name, tpl.Name))
}

func (e *Editor) countSide(enemy bool) int {
	n := 0
	for _, t := range e.tokens {
		if t.IsEnemy == enemy {
			n++
		}
	}
	return n
}
