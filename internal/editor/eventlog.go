package editor

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 300
	logMaxEntries = 80
	logLineHeight = 12
)

// EventEntry is one line in the session log.
type EventEntry struct {
	Seq     int
	Tag     string // "token", "zone", "cond", "aura", "turn", ...
	Message string
}

// EventLog is a ring buffer of editor actions rendered on-screen, so a GM
// can see what just changed without watching the whole board.
type EventLog struct {
	entries []EventEntry
	head    int
	count   int
	seq     int
}

func NewEventLog() *EventLog {
	return &EventLog{entries: make([]EventEntry, logMaxEntries)}
}

// Add appends an entry to the log.
func (el *EventLog) Add(tag, msg string) {
	el.seq++
	el.entries[el.head] = EventEntry{Seq: el.seq, Tag: tag, Message: msg}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Recent returns entries in chronological order, oldest first.
func (el *EventLog) Recent() []EventEntry {
	result := make([]EventEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the log panel on the right side of the screen.
func (el *EventLog) Draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 24, G: 24, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "SESSION LOG", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+logPanelWidth), 16, 1.0, color.RGBA{R: 60, G: 60, B: 90, A: 200}, false)

	entries := el.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, en := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 28, G: 28, B: 42, A: 160}, false)
		}
		line := fmt.Sprintf("%4d [%-5s] %s", en.Seq, en.Tag, en.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+8, y)
		y += logLineHeight
	}
}
