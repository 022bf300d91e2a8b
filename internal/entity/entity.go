// Package entity provides the map actor/item record and its owning list.
package entity

import (
	"math"

	"github.com/google/uuid"
)

// ItemKind identifies an item definition in the gamedata registry.
type ItemKind string

// Entity is the single polymorphic record for anything on the map: the
// player, monsters, items, corpses and the stairs. Behavior payloads are
// optional; a nil Fighter means the entity cannot fight, a nil AI means it
// never acts, and so on.
type Entity struct {
	ID     uuid.UUID `json:"id"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Glyph  rune      `json:"glyph"`
	Color  string    `json:"color"` // hex, e.g. "#3F7F3F"
	Name   string    `json:"name"`
	Blocks bool      `json:"blocks"`
	Alive  bool      `json:"alive"`
	// AlwaysVisible entities render on any explored tile even when currently
	// out of view. Used for the stairs so they stay drawn once discovered.
	AlwaysVisible bool `json:"alwaysVisible"`
	Level         int  `json:"level"`

	Fighter   *Fighter   `json:"fighter,omitempty"`
	AI        *AIState   `json:"ai,omitempty"`
	Item      *ItemKind  `json:"item,omitempty"`
	Equipment *Equipment `json:"equipment,omitempty"`
}

// New creates an entity with a fresh ID at the given position.
func New(x, y int, glyph rune, name, color string, blocks bool) *Entity {
	return &Entity{
		ID:     uuid.New(),
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
		Name:   name,
		Blocks: blocks,
	}
}

// Pos returns the entity's map coordinates.
func (e *Entity) Pos() (int, int) {
	return e.X, e.Y
}

// SetPos moves the entity to the given coordinates.
func (e *Entity) SetPos(x, y int) {
	e.X = x
	e.Y = y
}

// DistanceTo returns the Euclidean distance to another entity.
func (e *Entity) DistanceTo(other *Entity) float64 {
	dx := float64(other.X - e.X)
	dy := float64(other.Y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance returns the Euclidean distance to a coordinate.
func (e *Entity) Distance(x, y int) float64 {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
