package board

import "encoding/json"

// AuraTemplate is a reusable aura definition a GM applies to tokens from
// the preset picker.
type AuraTemplate struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Radius  float64  `json:"radius"`
	Affects Affects  `json:"affects"`
	Effects []string `json:"effects,omitempty"`
	Value   int      `json:"value,omitempty"`
}

// PresetLibrary bundles the condition name list and aura templates offered
// by the editing UI.
type PresetLibrary struct {
	Conditions []string       `json:"conditions"`
	Auras      []AuraTemplate `json:"auras"`
}

// DefaultPresets returns the bundled library.
func DefaultPresets() PresetLibrary {
	return PresetLibrary{
		Conditions: []string{
			"Blinded", "Charmed", "Deafened", "Frightened", "Grappled",
			CondHidden, "Incapacitated", "Invisible", "Paralyzed",
			"Poisoned", "Prone", "Restrained", "Stunned", "Unconscious",
			CondAdvantage, CondSneakAttackReady, "Concentrating",
		},
		Auras: []AuraTemplate{
			{Key: AuraProtection, Name: "Aura of Protection", Radius: 2, Affects: AffectsAllies, Value: 3},
			{Key: AuraBless, Name: "Bless", Radius: 6, Affects: AffectsAllies},
			{Key: AuraBane, Name: "Bane", Radius: 6, Affects: AffectsEnemies},
			{Key: AuraResistance, Name: "Aura of Warding", Radius: 2, Affects: AffectsAllies},
			{Key: AuraSaveAdvantage, Name: "Aura of Courage", Radius: 2, Affects: AffectsAllies},
			{Key: AuraFrighteningAir, Name: "Frightful Presence", Radius: 4, Affects: AffectsEnemies},
		},
	}
}

// Entry instantiates the template as an aura entry for a token, clamping
// the radius into the legal range.
func (t AuraTemplate) Entry() AuraEntry {
	r := t.Radius
	if r < 0 {
		r = 0
	}
	if r > MaxAuraRadius {
		r = MaxAuraRadius
	}
	return AuraEntry{
		Key:     t.Key,
		Name:    t.Name,
		Radius:  r,
		Affects: t.Affects,
		Effects: append([]string(nil), t.Effects...),
		Value:   t.Value,
	}
}

// ImportPresets parses a library from JSON, silently dropping entries that
// are malformed or out of range rather than failing the whole import.
func ImportPresets(data []byte) (PresetLibrary, error) {
	var raw PresetLibrary
	if err := json.Unmarshal(data, &raw); err != nil {
		return PresetLibrary{}, err
	}
	out := PresetLibrary{}
	for _, c := range raw.Conditions {
		if c != "" {
			out.Conditions = append(out.Conditions, c)
		}
	}
	for _, a := range raw.Auras {
		if a.Key == "" || a.Radius <= 0 || a.Radius > MaxAuraRadius {
			continue
		}
		switch a.Affects {
		case AffectsAll, AffectsAllies, AffectsEnemies:
		case "":
			a.Affects = AffectsAllies
		default:
			continue
		}
		out.Auras = append(out.Auras, a)
	}
	return out, nil
}

// ExportPresets renders the library as indented JSON.
func ExportPresets(lib PresetLibrary) ([]byte, error) {
	return json.MarshalIndent(lib, "", "  ")
}
