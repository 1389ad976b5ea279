package board

// FlankedAdvisory is the fixed string appended to a flanked token's effect
// list.
const FlankedAdvisory = "Flanked: melee attackers have advantage"

// Origin tags where an effect came from, so consumers filter by provenance
// instead of matching strings that may collide across sources.
type Origin string

const (
	OriginAura     Origin = "aura"
	OriginZone     Origin = "zone"
	OriginManual   Origin = "manual"
	OriginFlanking Origin = "flanking"
)

// Effect is one resolved influence on a token. Source is the owning
// token's id for auras, the zone id for zones, and empty otherwise.
type Effect struct {
	Text   string
	Origin Origin
	Source string
}

// affectsMatch applies the allegiance filter of a source against a target.
// ownerKnown is false when the source's owner token no longer exists, in
// which case only "all" can pass.
func affectsMatch(affects Affects, ownerEnemy bool, ownerKnown bool, target *Token) bool {
	switch affects {
	case AffectsAll:
		return true
	case AffectsAllies:
		return ownerKnown && ownerEnemy == target.IsEnemy
	case AffectsEnemies:
		return ownerKnown && ownerEnemy != target.IsEnemy
	default:
		return false
	}
}

// ResolveEffects computes, for every token, the ordered list of influences
// currently acting on it: aura contributions first (in aura-source order),
// then enabled zone contributions (in zone order), then the token's own
// manual conditions, then the flanking advisory. Nothing is de-duplicated —
// identical strings from different sources stay distinct entries.
//
// Pure function of its inputs; safe to recompute every frame.
func ResolveEffects(tokens []*Token, auras []AuraSource, zones []*Zone) map[string][]Effect {
	out := make(map[string][]Effect, len(tokens))
	for _, t := range tokens {
		out[t.ID] = resolveToken(t, tokens, auras, zones)
	}
	return out
}

func resolveToken(t *Token, tokens []*Token, auras []AuraSource, zones []*Zone) []Effect {
	var fx []Effect
	center := t.Center()

	for _, s := range auras {
		// Owner==target counts as allied, so an "allies" aura covers its
		// own owner standing at distance zero.
		selfOrAlly := s.OwnerID == t.ID || s.OwnerEnemy == t.IsEnemy
		switch s.Entry.Affects {
		case AffectsEnemies:
			if selfOrAlly {
				continue
			}
		case AffectsAll:
			// always passes
		default: // allies is the default scope
			if !selfOrAlly {
				continue
			}
		}
		if !PointInCircle(center, s.Center, s.Entry.Radius) {
			continue
		}
		for _, text := range presetEffects(s) {
			fx = append(fx, Effect{Text: text, Origin: OriginAura, Source: s.OwnerID})
		}
		if s.Entry.Name != "" {
			fx = append(fx, Effect{Text: s.Entry.Name, Origin: OriginAura, Source: s.OwnerID})
		}
		for _, text := range s.Entry.Effects {
			fx = append(fx, Effect{Text: text, Origin: OriginAura, Source: s.OwnerID})
		}
	}

	for _, z := range zones {
		if !z.Enabled {
			continue
		}
		owner := FindToken(tokens, z.OwnerID)
		ownerEnemy := false
		if owner != nil {
			ownerEnemy = owner.IsEnemy
		}
		if !affectsMatch(z.Affects, ownerEnemy, owner != nil, t) {
			continue
		}
		if !z.Contains(center) {
			continue
		}
		if z.Label != "" {
			fx = append(fx, Effect{Text: z.Label, Origin: OriginZone, Source: z.ID})
		}
		for _, text := range z.Effects {
			fx = append(fx, Effect{Text: text, Origin: OriginZone, Source: z.ID})
		}
	}

	for _, c := range t.Conditions {
		fx = append(fx, Effect{Text: c, Origin: OriginManual, Source: t.ID})
	}

	if Flanked(t, tokens) {
		fx = append(fx, Effect{Text: FlankedAdvisory, Origin: OriginFlanking})
	}

	return fx
}

// EffectTexts flattens resolved effects to their raw strings, preserving
// order and duplicates.
func EffectTexts(fx []Effect) []string {
	out := make([]string, len(fx))
	for i, e := range fx {
		out[i] = e.Text
	}
	return out
}
