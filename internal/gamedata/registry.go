package gamedata

import (
	"errors"
	"math/rand"
)

// Registry bundles the loaded monster and item tables and answers the two
// questions generation asks: how many of each may spawn in a room at a given
// depth, and which definition a weighted roll selects.
type Registry struct {
	monsters MonstersFile
	items    ItemsFile

	monstersByID map[string]*MonsterDef
	itemsByID    map[string]*ItemDef
}

// LoadRegistry loads the embedded game data.
func LoadRegistry() (*Registry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters.Monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items.Items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}

	r := &Registry{
		monsters:     monsters,
		items:        items,
		monstersByID: make(map[string]*MonsterDef, len(monsters.Monsters)),
		itemsByID:    make(map[string]*ItemDef, len(items.Items)),
	}
	for i := range monsters.Monsters {
		r.monstersByID[monsters.Monsters[i].ID] = &monsters.Monsters[i]
	}
	for i := range items.Items {
		r.itemsByID[items.Items[i].ID] = &items.Items[i]
	}
	return r, nil
}

// MustLoadRegistry loads the registry, panicking on error.
func MustLoadRegistry() *Registry {
	r, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// MonsterByID returns the monster definition with the given ID, or nil.
func (r *Registry) MonsterByID(id string) *MonsterDef {
	return r.monstersByID[id]
}

// ItemByID returns the item definition with the given ID, or nil.
func (r *Registry) ItemByID(id string) *ItemDef {
	return r.itemsByID[id]
}

// MaxMonstersPerRoom returns the spawn cap for rooms at the given depth.
func (r *Registry) MaxMonstersPerRoom(depth int) int {
	return ValueAt(r.monsters.MaxPerRoom, depth)
}

// MaxItemsPerRoom returns the item spawn cap for rooms at the given depth.
func (r *Registry) MaxItemsPerRoom(depth int) int {
	return ValueAt(r.items.MaxPerRoom, depth)
}

// PickMonster selects a monster definition by weighted random choice among
// the species unlocked at the given depth. Returns nil if nothing is
// unlocked yet.
func (r *Registry) PickMonster(rng *rand.Rand, depth int) *MonsterDef {
	total := 0
	for i := range r.monsters.Monsters {
		total += ValueAt(r.monsters.Monsters[i].SpawnWeight, depth)
	}
	if total <= 0 {
		return nil
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range r.monsters.Monsters {
		cumulative += ValueAt(r.monsters.Monsters[i].SpawnWeight, depth)
		if roll < cumulative {
			return &r.monsters.Monsters[i]
		}
	}
	return nil
}

// PickItem selects an item definition by weighted random choice among the
// kinds unlocked at the given depth. Returns nil if nothing is unlocked.
func (r *Registry) PickItem(rng *rand.Rand, depth int) *ItemDef {
	total := 0
	for i := range r.items.Items {
		total += ValueAt(r.items.Items[i].SpawnWeight, depth)
	}
	if total <= 0 {
		return nil
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range r.items.Items {
		cumulative += ValueAt(r.items.Items[i].SpawnWeight, depth)
		if roll < cumulative {
			return &r.items.Items[i]
		}
	}
	return nil
}
