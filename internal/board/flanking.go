package board

// Flanked reports whether two distinct tokens opposing target sit on
// exactly opposite sides or corners of it. Pairwise over the opposing
// subset — quadratic, fine at tabletop scale.
func Flanked(target *Token, tokens []*Token) bool {
	var opposing []*Token
	for _, t := range tokens {
		if t.ID != target.ID && t.IsEnemy != target.IsEnemy {
			opposing = append(opposing, t)
		}
	}
	for i := 0; i < len(opposing); i++ {
		for j := i + 1; j < len(opposing); j++ {
			if OppositeAcross(target.Cell, opposing[i].Cell, opposing[j].Cell) {
				return true
			}
		}
	}
	return false
}

// FlankingAdvantage reports whether attacker gains advantage against target
// from flanking: opposite allegiance, adjacent, and some ally of the
// attacker (other than the attacker) stands opposite-across the target.
func FlankingAdvantage(attacker, target *Token, tokens []*Token) bool {
	if attacker.IsEnemy == target.IsEnemy {
		return false
	}
	if !CellsAdjacent(attacker.Cell, target.Cell) {
		return false
	}
	for _, t := range tokens {
		if t.ID == attacker.ID || t.ID == target.ID {
			continue
		}
		if t.IsEnemy != attacker.IsEnemy {
			continue
		}
		if OppositeAcross(target.Cell, attacker.Cell, t.Cell) {
			return true
		}
	}
	return false
}

// HighlightedTargets returns the ids of opposing tokens the renderer should
// ring-highlight for the selected token. An opponent qualifies when the
// selection carries a manual advantage tag and the opponent stands adjacent
// to one of the selection's allies (the sneak-attack setup), or when the
// selection would flank it outright.
func HighlightedTargets(selected *Token, tokens []*Token) map[string]bool {
	out := make(map[string]bool)
	if selected == nil {
		return out
	}
	tagged := selected.HasCondition(CondAdvantage) || selected.HasCondition(CondSneakAttackReady)
	for _, t := range tokens {
		if t.ID == selected.ID || t.IsEnemy == selected.IsEnemy {
			continue
		}
		if tagged && adjacentToAllyOf(selected, t, tokens) {
			out[t.ID] = true
			continue
		}
		if FlankingAdvantage(selected, t, tokens) {
			out[t.ID] = true
		}
	}
	return out
}

// adjacentToAllyOf reports whether target stands adjacent to some ally of
// attacker other than the attacker itself.
func adjacentToAllyOf(attacker, target *Token, tokens []*Token) bool {
	for _, t := range tokens {
		if t.ID == attacker.ID || t.ID == target.ID {
			continue
		}
		if t.IsEnemy != attacker.IsEnemy {
			continue
		}
		if CellsAdjacent(t.Cell, target.Cell) {
			return true
		}
	}
	return false
}
