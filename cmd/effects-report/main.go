package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"battlemap/internal/board"
)

func main() {
	var scenario string
	var presetPath string
	var exportPresets bool

	flag.StringVar(&scenario, "scenario", "skirmish", "scenario name (skirmish, flanking, zones)")
	flag.StringVar(&presetPath, "presets", "", "path to a preset library JSON to load")
	flag.BoolVar(&exportPresets, "export-presets", false, "print the bundled preset library as JSON and exit")
	flag.Parse()

	if exportPresets {
		data, err := board.ExportPresets(board.DefaultPresets())
		if err != nil {
			fmt.Printf("error: export presets: %v\n", err)
			return
		}
		fmt.Println(string(data))
		return
	}

	presets := board.DefaultPresets()
	if presetPath != "" {
		data, err := os.ReadFile(presetPath)
		if err != nil {
			fmt.Printf("error: read presets: %v\n", err)
			return
		}
		presets, err = board.ImportPresets(data)
		if err != nil {
			fmt.Printf("error: parse presets: %v\n", err)
			return
		}
		fmt.Printf("loaded %d aura presets, %d conditions from %s\n\n",
			len(presets.Auras), len(presets.Conditions), presetPath)
	}

	var tokens []*board.Token
	var zones []*board.Zone
	switch scenario {
	case "skirmish":
		tokens, zones = scenarioSkirmish(presets)
	case "flanking":
		tokens, zones = scenarioFlanking()
	case "zones":
		tokens, zones = scenarioZones()
	default:
		fmt.Printf("error: unsupported scenario %q (supported: skirmish, flanking, zones)\n", scenario)
		return
	}

	auras := board.BuildAuraIndex(tokens)
	effects := board.ResolveEffects(tokens, auras, zones)
	fmt.Print(board.EncounterReport(tokens, zones, effects, 0))

	printHighlights(tokens)
}

// scenarioSkirmish is a paladin party against an ogre, with an aura preset
// applied from the library.
func scenarioSkirmish(presets board.PresetLibrary) ([]*board.Token, []*board.Zone) {
	pal := board.NewToken("Paladin", board.Cell{X: 7, Y: 5}, false)
	pal.Initiative = 14
	pal.HP = 38
	for _, tpl := range presets.Auras {
		if tpl.Key == board.AuraProtection {
			pal.Auras = append(pal.Auras, tpl.Entry())
			break
		}
	}

	rog := board.NewToken("Rogue", board.Cell{X: 6, Y: 6}, false)
	rog.Initiative = 17
	rog.HP = 27
	rog.AddCondition(board.CondSneakAttackReady)

	ogre := board.NewToken("Ogre", board.Cell{X: 7, Y: 6}, true)
	ogre.Initiative = 8
	ogre.HP = 59

	return []*board.Token{pal, rog, ogre}, nil
}

// scenarioFlanking puts two allies on opposite sides of an enemy.
func scenarioFlanking() ([]*board.Token, []*board.Zone) {
	a := board.NewToken("Fighter", board.Cell{X: 4, Y: 5}, false)
	a.Initiative = 12
	b := board.NewToken("Cleric", board.Cell{X: 6, Y: 5}, false)
	b.Initiative = 10
	foe := board.NewToken("Bandit", board.Cell{X: 5, Y: 5}, true)
	foe.Initiative = 11
	return []*board.Token{a, b, foe}, nil
}

// scenarioZones anchors one zone of each shape on a caster.
func scenarioZones() ([]*board.Token, []*board.Zone) {
	wiz := board.NewToken("Wizard", board.Cell{X: 5, Y: 5}, false)
	wiz.Initiative = 13
	foe := board.NewToken("Ghoul", board.Cell{X: 8, Y: 5}, true)
	foe.Initiative = 9

	circle := board.NewZoneFrom(wiz, board.ZoneCircle, "Moonbeam")
	line := board.NewZoneFrom(wiz, board.ZoneLine, "Wall of Fire")
	cone := board.NewZoneFrom(wiz, board.ZoneCone, "Burning Hands")
	cone.Affects = board.AffectsEnemies

	return []*board.Token{wiz, foe}, []*board.Zone{circle, line, cone}
}

// printHighlights runs the advantage highlight rule from each token's point
// of view.
func printHighlights(tokens []*board.Token) {
	fmt.Println("== advantage highlights ==")
	for _, t := range tokens {
		hl := board.HighlightedTargets(t, tokens)
		if len(hl) == 0 {
			continue
		}
		names := make([]string, 0, len(hl))
		for _, other := range tokens {
			if hl[other.ID] {
				names = append(names, other.Name)
			}
		}
		sort.Strings(names)
		fmt.Printf("%s has advantage against: %s\n", t.Name, strings.Join(names, ", "))
	}
}
