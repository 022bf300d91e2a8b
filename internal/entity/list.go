package entity

import (
	"errors"

	"github.com/google/uuid"
)

// ErrSameEntity is returned by Pair when both handles name the same entity.
var ErrSameEntity = errors.New("entity: pair requires two distinct entities")

// List owns the live entities on the current map and distinguishes the
// player by handle rather than by slot position. Iteration order is stable
// insertion order, which is also the deterministic AI activation order.
type List struct {
	entities []*Entity
	playerID uuid.UUID
}

// NewList creates a list owning the given player entity.
func NewList(player *Entity) *List {
	return &List{
		entities: []*Entity{player},
		playerID: player.ID,
	}
}

// Restore rebuilds a list from loaded entities and a player handle.
func Restore(entities []*Entity, playerID uuid.UUID) (*List, error) {
	l := &List{entities: entities, playerID: playerID}
	if l.ByID(playerID) == nil {
		return nil, errors.New("entity: player handle not present in entity list")
	}
	return l, nil
}

// Player returns the player entity.
func (l *List) Player() *Entity {
	return l.ByID(l.playerID)
}

// PlayerID returns the player's handle.
func (l *List) PlayerID() uuid.UUID {
	return l.playerID
}

// IsPlayer reports whether the entity is the player.
func (l *List) IsPlayer(e *Entity) bool {
	return e != nil && e.ID == l.playerID
}

// All returns the entities in activation order. The slice is shared; callers
// must not reorder it.
func (l *List) All() []*Entity {
	return l.entities
}

// Add appends an entity to the list.
func (l *List) Add(e *Entity) {
	l.entities = append(l.entities, e)
}

// Remove detaches the entity with the given handle and returns it, or nil
// if absent. The player cannot be removed.
func (l *List) Remove(id uuid.UUID) *Entity {
	if id == l.playerID {
		return nil
	}
	for i, e := range l.entities {
		if e.ID == id {
			l.entities = append(l.entities[:i], l.entities[i+1:]...)
			return e
		}
	}
	return nil
}

// ByID returns the entity with the given handle, or nil.
func (l *List) ByID(id uuid.UUID) *Entity {
	for _, e := range l.entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Pair returns two distinct entities for operations that mutate an
// attacker/defender pair together.
func (l *List) Pair(a, b uuid.UUID) (*Entity, *Entity, error) {
	if a == b {
		return nil, nil, ErrSameEntity
	}
	ea, eb := l.ByID(a), l.ByID(b)
	if ea == nil || eb == nil {
		return nil, nil, errors.New("entity: unknown handle in pair")
	}
	return ea, eb, nil
}

// BlockingAt returns the blocking entity at the position, or nil.
func (l *List) BlockingAt(x, y int) *Entity {
	for _, e := range l.entities {
		if e.Blocks && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// At returns every entity at the position in activation order.
func (l *List) At(x, y int) []*Entity {
	var out []*Entity
	for _, e := range l.entities {
		if e.X == x && e.Y == y {
			out = append(out, e)
		}
	}
	return out
}
