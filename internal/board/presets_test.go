package board

import "testing"

func TestImportPresets_Valid(t *testing.T) {
	data := []byte(`{
		"conditions": ["Dazed", "Winded"],
		"auras": [{"key": "bless", "name": "Bless", "radius": 6, "affects": "allies"}]
	}`)
	lib, err := ImportPresets(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lib.Conditions) != 2 || len(lib.Auras) != 1 {
		t.Fatalf("expected 2 conditions and 1 aura, got %d/%d", len(lib.Conditions), len(lib.Auras))
	}
}

func TestImportPresets_FiltersInvalidEntries(t *testing.T) {
	// Missing key, zero radius, oversized radius, unknown affects, empty
	// condition — each silently dropped rather than partially applied.
	data := []byte(`{
		"conditions": ["", "Dazed"],
		"auras": [
			{"name": "no key", "radius": 3},
			{"key": "bless", "radius": 0},
			{"key": "bless", "radius": 999},
			{"key": "bless", "radius": 3, "affects": "frenemies"},
			{"key": "bless", "radius": 3}
		]
	}`)
	lib, err := ImportPresets(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lib.Conditions) != 1 || lib.Conditions[0] != "Dazed" {
		t.Fatalf("empty condition names must be dropped, got %v", lib.Conditions)
	}
	if len(lib.Auras) != 1 {
		t.Fatalf("expected only the valid aura to survive, got %d", len(lib.Auras))
	}
	if lib.Auras[0].Affects != AffectsAllies {
		t.Fatal("a missing affects field defaults to allies")
	}
}

func TestImportPresets_MalformedJSON(t *testing.T) {
	if _, err := ImportPresets([]byte("{")); err == nil {
		t.Fatal("malformed JSON must be rejected")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	lib := DefaultPresets()
	data, err := ExportPresets(lib)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	back, err := ImportPresets(data)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if len(back.Conditions) != len(lib.Conditions) || len(back.Auras) != len(lib.Auras) {
		t.Fatal("bundled presets must survive an export/import cycle intact")
	}
}

func TestAuraTemplate_EntryClampsRadius(t *testing.T) {
	e := AuraTemplate{Key: AuraBless, Radius: 50}.Entry()
	if e.Radius != MaxAuraRadius {
		t.Fatalf("radius must clamp to %d, got %.0f", MaxAuraRadius, e.Radius)
	}
	e = AuraTemplate{Key: AuraBless, Radius: -1}.Entry()
	if e.Radius != 0 {
		t.Fatalf("negative radius clamps to 0, got %.0f", e.Radius)
	}
}
