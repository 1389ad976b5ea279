package board

import "fmt"

// Affects is the allegiance scope of an aura or zone, evaluated relative to
// its owner.
type Affects string

const (
	AffectsAll     Affects = "all"
	AffectsAllies  Affects = "allies"
	AffectsEnemies Affects = "enemies"
)

// MaxAuraRadius is the largest radius, in cells, an aura entry may carry.
// Input surfaces clamp to this before the entry reaches the engine.
const MaxAuraRadius = 20

// AuraEntry is one radius effect a token projects around itself. A zero
// radius or an empty key contributes nothing.
type AuraEntry struct {
	Key     string
	Name    string
	Radius  float64
	Affects Affects
	Effects []string
	// Value is a preset-specific scalar, e.g. the save bonus granted by a
	// protection aura.
	Value int
}

// AuraSource is one (token, aura-entry) pair flattened out with the owner's
// current state. Rebuilt in full on every token-set change — it is a pure
// projection, never mutated in place.
type AuraSource struct {
	OwnerID    string
	OwnerName  string
	OwnerEnemy bool
	Center     Point
	Entry      AuraEntry
}

// Preset aura keys understood by the effect string table.
const (
	AuraProtection     = "protection"      // flat bonus to saving throws
	AuraBless          = "bless"           // bonus die to attacks and saves
	AuraBane           = "bane"            // penalty die to attacks and saves
	AuraResistance     = "resistance"      // resistance to a damage kind
	AuraSaveAdvantage  = "save-advantage"  // advantage on saving throws
	AuraFrighteningAir = "frightening-air" // disadvantage while near the owner
)

// BuildAuraIndex projects every token's aura entries into a flat list of
// active sources anchored at the owners' current cells.
func BuildAuraIndex(tokens []*Token) []AuraSource {
	var out []AuraSource
	for _, t := range tokens {
		for _, e := range t.Auras {
			if e.Key == "" || e.Radius <= 0 {
				continue
			}
			out = append(out, AuraSource{
				OwnerID:    t.ID,
				OwnerName:  t.Name,
				OwnerEnemy: t.IsEnemy,
				Center:     t.Center(),
				Entry:      e,
			})
		}
	}
	return out
}

// presetEffects maps a preset aura key to the canonical strings it grants.
// Every string names the owner so a GM reading a token's effect list can
// trace it back to its source.
func presetEffects(s AuraSource) []string {
	e := s.Entry
	switch e.Key {
	case AuraProtection:
		return []string{fmt.Sprintf("+%d to saving throws (%s)", e.Value, s.OwnerName)}
	case AuraBless:
		return []string{fmt.Sprintf("+1d4 to attack rolls and saving throws (%s)", s.OwnerName)}
	case AuraBane:
		return []string{fmt.Sprintf("-1d4 to attack rolls and saving throws (%s)", s.OwnerName)}
	case AuraResistance:
		return []string{fmt.Sprintf("Resistance to damage (%s)", s.OwnerName)}
	case AuraSaveAdvantage:
		return []string{fmt.Sprintf("Advantage on saving throws (%s)", s.OwnerName)}
	case AuraFrighteningAir:
		return []string{fmt.Sprintf("Disadvantage on ability checks near %s", s.OwnerName)}
	default:
		return nil
	}
}
