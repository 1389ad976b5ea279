package editor

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"battlemap/internal/board"
)

// borderWidth is the pixel gap between the window edge and the map viewport.
const borderWidth = 24

const (
	defaultCellPx      = 48
	defaultFeetPerCell = 5
	zoomMin            = 0.25
	zoomMax            = 4.0
)

// Editor is the interactive battle-map session: the token and zone
// collections, the camera, the single active drag, and the derived effect
// state recomputed every frame.
type Editor struct {
	width      int
	height     int
	viewW      int // map viewport width (log panel takes the rest)
	viewH      int // map viewport height (inside border)
	offX       int
	offY       int

	tokens []*board.Token
	zones  []*board.Zone

	view board.View
	grid board.GridConfig

	// Derived per frame — pure projections of tokens/zones, never cached
	// across mutations.
	auraIndex  []board.AuraSource
	effects    map[string][]board.Effect
	highlights map[string]bool

	selected     *board.Token
	selectedZone *board.Zone
	turnCursor   int

	drag    board.DragSession
	presets board.PresetLibrary
	log     *EventLog

	// Input edge detection: previous frame's key state.
	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool
	prevMouseRight bool

	showHUD bool
	status  string

	// Offscreen buffers: the map viewport (so world drawing clips at the
	// frame) and the inspector panel, rendered at 1x and blitted at
	// inspScale.
	worldBuf *ebiten.Image
	inspBuf  *ebiten.Image
}

// New creates an editor with an empty board and a small demo encounter.
func New() *Editor {
	viewW := 1280
	viewH := 864
	e := &Editor{
		width:    borderWidth + viewW + borderWidth + logPanelWidth,
		height:   borderWidth + viewH + borderWidth,
		viewW:    viewW,
		viewH:    viewH,
		offX:     borderWidth,
		offY:     borderWidth,
		view:     board.View{Zoom: 1},
		grid:     board.GridConfig{CellPx: defaultCellPx, FeetPerCell: defaultFeetPerCell, DeviceScale: 1},
		presets:  board.DefaultPresets(),
		log:      NewEventLog(),
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
		inspBuf:  ebiten.NewImage(inspBufW, inspBufH),
	}
	e.seedDemo()
	return e
}

// seedDemo places a small starting encounter so the editor opens onto
// something draggable rather than an empty grid.
func (e *Editor) seedDemo() {
	pal := board.NewToken("Paladin", board.Cell{X: 5, Y: 5}, false)
	pal.Initiative = 14
	pal.HP = 38
	pal.Color = color.RGBA{R: 80, G: 140, B: 220, A: 255}
	if tpl, ok := e.presetByKey(board.AuraProtection); ok {
		pal.Auras = append(pal.Auras, tpl.Entry())
	}

	rog := board.NewToken("Rogue", board.Cell{X: 7, Y: 6}, false)
	rog.Initiative = 17
	rog.HP = 27
	rog.Color = color.RGBA{R: 90, G: 180, B: 110, A: 255}

	ogre := board.NewToken("Ogre", board.Cell{X: 11, Y: 6}, true)
	ogre.Initiative = 8
	ogre.HP = 59
	ogre.Color = color.RGBA{R: 200, G: 70, B: 60, A: 255}

	e.tokens = append(e.tokens, pal, rog, ogre)
	e.log.Add("setup", "demo encounter placed")
}

func (e *Editor) presetByKey(key string) (board.AuraTemplate, bool) {
	for _, tpl := range e.presets.Auras {
		if tpl.Key == key {
			return tpl, true
		}
	}
	return board.AuraTemplate{}, false
}

func (e *Editor) Update() error {
	e.handleInput()

	// Full recompute from current state — no incremental paths, no
	// staleness.
	e.auraIndex = board.BuildAuraIndex(e.tokens)
	e.effects = board.ResolveEffects(e.tokens, e.auraIndex, e.zones)
	e.highlights = board.HighlightedTargets(e.selected, e.tokens)
	e.turnCursor = board.ClampCursor(e.turnCursor, len(e.tokens))
	return nil
}

func (e *Editor) Layout(_, _ int) (int, int) {
	return e.width, e.height
}

// viewForMap shifts the camera so world coordinates land inside the map
// viewport rather than at the window origin.
func (e *Editor) viewForMap() board.View {
	v := e.view
	v.PanX += float64(e.offX)
	v.PanY += float64(e.offY)
	return v
}

// currentOrder returns the initiative order and the clamped cursor.
func (e *Editor) currentOrder() ([]*board.Token, int) {
	order := board.TurnOrder(e.tokens)
	return order, board.ClampCursor(e.turnCursor, len(order))
}

// removeToken deletes a token, keeping the turn cursor on the same logical
// token where possible.
func (e *Editor) removeToken(tok *board.Token) {
	order, cursor := e.currentOrder()
	var current *board.Token
	if len(order) > 0 {
		current = order[cursor]
	}

	for i, t := range e.tokens {
		if t == tok {
			e.tokens = append(e.tokens[:i], e.tokens[i+1:]...)
			break
		}
	}
	if e.selected == tok {
		e.selected = nil
	}

	// Re-find the token the cursor was on; fall back to clamping.
	order, _ = e.currentOrder()
	if current != nil && current != tok {
		for i, t := range order {
			if t == current {
				e.turnCursor = i
				return
			}
		}
	}
	e.turnCursor = board.ClampCursor(e.turnCursor, len(order))
}
