package board

import (
	"image/color"

	"github.com/google/uuid"
)

// Distinguished condition labels the engine gives behaviour to. Anything
// else is free text carried verbatim into the effect list.
const (
	CondHidden           = "Hidden"
	CondAdvantage        = "Advantage"
	CondSneakAttackReady = "Sneak Attack Ready"
)

// Token is a positioned actor on the grid.
type Token struct {
	ID   string
	Name string
	Cell Cell

	IsEnemy    bool
	HP         int
	Initiative int

	// Auras this token projects around itself.
	Auras []AuraEntry

	// Conditions are manually assigned labels in insertion order,
	// duplicates suppressed on insert.
	Conditions []string
	// StealthCheck is the roll associated with the Hidden condition.
	// Meaningful only while CondHidden is present.
	StealthCheck int

	// Cosmetic only — never consulted by the effects engine.
	Color    color.RGBA
	Portrait string
	Note     string
}

// NewToken mints a token with a fresh identity at the given cell.
func NewToken(name string, cell Cell, isEnemy bool) *Token {
	return &Token{
		ID:      uuid.NewString(),
		Name:    name,
		Cell:    cell,
		IsEnemy: isEnemy,
		HP:      10,
	}
}

// Center returns the token's geometric center, the point all distance
// tests operate on.
func (t *Token) Center() Point {
	return t.Cell.Center()
}

// HasCondition reports whether the token carries the given label.
func (t *Token) HasCondition(name string) bool {
	for _, c := range t.Conditions {
		if c == name {
			return true
		}
	}
	return false
}

// AddCondition appends a condition label, suppressing duplicates.
func (t *Token) AddCondition(name string) {
	if name == "" || t.HasCondition(name) {
		return
	}
	t.Conditions = append(t.Conditions, name)
}

// RemoveCondition deletes a condition label if present, preserving the
// order of the rest.
func (t *Token) RemoveCondition(name string) {
	for i, c := range t.Conditions {
		if c == name {
			t.Conditions = append(t.Conditions[:i], t.Conditions[i+1:]...)
			return
		}
	}
}

// AlliedWith reports whether two tokens are on the same side. A token is
// always allied with itself, so an "allies" aura applies to its own owner.
func (t *Token) AlliedWith(other *Token) bool {
	if t == other || t.ID == other.ID {
		return true
	}
	return t.IsEnemy == other.IsEnemy
}

// FindToken returns the token with the given id, or nil.
func FindToken(tokens []*Token, id string) *Token {
	for _, t := range tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}
