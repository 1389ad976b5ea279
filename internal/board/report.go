package board

import (
	"fmt"
	"strings"
)

// EncounterReport renders the whole board state as plain text: the turn
// order, every token with its resolved effects, and every zone. The editor
// copies this to the clipboard; the headless CLI prints it.
func EncounterReport(tokens []*Token, zones []*Zone, effects map[string][]Effect, cursor int) string {
	var b strings.Builder
	b.WriteString("--- battlemap encounter report ---\n")
	fmt.Fprintf(&b, "tokens=%d zones=%d\n\n", len(tokens), len(zones))

	order := TurnOrder(tokens)
	if len(order) > 0 {
		b.WriteString("== turn order ==\n")
		cursor = ClampCursor(cursor, len(order))
		for i, t := range order {
			marker := "  "
			if i == cursor {
				marker = "> "
			}
			side := "ally"
			if t.IsEnemy {
				side = "enemy"
			}
			fmt.Fprintf(&b, "%s%2d  %-20s %s\n", marker, t.Initiative, t.Name, side)
		}
		b.WriteString("\n")
	}

	for _, t := range order {
		side := "ally"
		if t.IsEnemy {
			side = "enemy"
		}
		fmt.Fprintf(&b, "== %s (%s) cell=(%d,%d) hp=%d init=%d ==\n",
			t.Name, side, t.Cell.X, t.Cell.Y, t.HP, t.Initiative)
		if t.HasCondition(CondHidden) {
			fmt.Fprintf(&b, "hidden, stealth check %d\n", t.StealthCheck)
		}
		fx := effects[t.ID]
		if len(fx) == 0 {
			b.WriteString("(no active effects)\n")
		}
		for _, e := range fx {
			fmt.Fprintf(&b, "[%s] %s\n", originTag(e.Origin), e.Text)
		}
		b.WriteString("\n")
	}

	for _, z := range zones {
		state := "on"
		if !z.Enabled {
			state = "off"
		}
		fmt.Fprintf(&b, "zone %-8s %-20s reach=%.1f affects=%s [%s]\n",
			z.Kind, z.Label, z.Radius(), z.Affects, state)
	}

	return b.String()
}

func originTag(o Origin) string {
	switch o {
	case OriginAura:
		return "A"
	case OriginZone:
		return "Z"
	case OriginManual:
		return "M"
	case OriginFlanking:
		return "F"
	default:
		return "?"
	}
}
