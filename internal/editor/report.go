package editor

import (
	"fmt"

	"github.com/atotto/clipboard"

	"battlemap/internal/board"
)

// copyReport writes the plain-text encounter report to the system
// clipboard.
func (e *Editor) copyReport() {
	_, cursor := e.currentOrder()
	rep := board.EncounterReport(e.tokens, e.zones, e.effects, cursor)
	if err := clipboard.WriteAll(rep); err != nil {
		e.status = fmt.Sprintf("clipboard error: %v", err)
		e.log.Add("report", "clipboard write failed")
		return
	}
	e.status = "encounter report copied"
	e.log.Add("report", fmt.Sprintf("report copied (%d bytes)", len(rep)))
}
