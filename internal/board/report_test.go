package board

import (
	"strings"
	"testing"
)

func TestEncounterReport_Sections(t *testing.T) {
	pal := NewToken("Paladin", Cell{5, 5}, false)
	pal.Initiative = 15
	pal.Auras = []AuraEntry{{Key: AuraProtection, Radius: 2, Affects: AffectsAllies, Value: 3}}
	foe := NewToken("Ogre", Cell{8, 8}, true)
	foe.Initiative = 9
	z := NewZoneFrom(pal, ZoneCircle, "Moonbeam")

	tokens := []*Token{pal, foe}
	fx := ResolveEffects(tokens, BuildAuraIndex(tokens), []*Zone{z})
	rep := EncounterReport(tokens, []*Zone{z}, fx, 0)

	for _, want := range []string{"turn order", "Paladin", "Ogre", "Moonbeam", "[A]"} {
		if !strings.Contains(rep, want) {
			t.Fatalf("report missing %q:\n%s", want, rep)
		}
	}
	// The cursor marker sits on the highest initiative.
	if !strings.Contains(rep, "> 15  Paladin") {
		t.Fatalf("cursor marker missing from turn order:\n%s", rep)
	}
}

func TestEncounterReport_EmptyBoard(t *testing.T) {
	rep := EncounterReport(nil, nil, nil, 0)
	if !strings.Contains(rep, "tokens=0") {
		t.Fatalf("empty report should still render a header:\n%s", rep)
	}
}
