package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
	"github.com/samdwyer/hollowdeep/internal/telemetry"
	"github.com/samdwyer/hollowdeep/internal/world"
)

const stairsName = "stairs down"

// buildLevel generates a fresh map for the given depth, truncates the entity
// list to the player, and repopulates rooms and stairs. A zero-room layout
// is retried with fresh randomness up to maxGenerationRetries times.
func (g *Engine) buildLevel(ctx context.Context, depth int) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.build_level")
	defer span.End()
	span.SetAttributes(attribute.Int("depth", depth))

	var (
		m     *world.Map
		rooms []world.Rect
		err   error
	)
	for attempt := 0; attempt < maxGenerationRetries; attempt++ {
		m, rooms, err = world.Generate(ctx, g.width, g.height, g.rng)
		if err == nil {
			break
		}
		g.logger.Warn("dungeon generation rejected every room, retrying",
			zap.Int("attempt", attempt+1), zap.Int("depth", depth))
	}
	if err != nil {
		return fmt.Errorf("generating level %d: %w", depth, err)
	}

	g.state.Map = m

	// Truncate to the player and respawn everything else.
	player := g.entities.Player()
	g.entities = entity.NewList(player)
	start := rooms[0].Center()
	player.SetPos(start.X, start.Y)

	for _, room := range rooms {
		g.populateRoom(room, depth)
	}

	last := rooms[len(rooms)-1].Center()
	stairs := entity.New(last.X, last.Y, '>', stairsName, ColorWhite, false)
	stairs.AlwaysVisible = true
	g.entities.Add(stairs)
	g.stairsID = stairs.ID

	// Force a recompute on the next visibility update.
	g.visible = nil
	g.prevPlayerPos = world.Point{X: -1, Y: -1}

	span.SetAttributes(attribute.Int("rooms", len(rooms)), attribute.Int("entities", len(g.entities.All())))
	return nil
}

// populateRoom spawns the depth-scaled number of monsters and items inside
// a room. A candidate cell already blocked by terrain or another blocking
// entity is skipped.
func (g *Engine) populateRoom(room world.Rect, depth int) {
	numMonsters := g.rng.Intn(g.reg.MaxMonstersPerRoom(depth) + 1)
	for i := 0; i < numMonsters; i++ {
		x, y := g.randomCellIn(room)
		if g.isBlocked(x, y) {
			continue
		}
		def := g.reg.PickMonster(g.rng, depth)
		if def == nil {
			continue
		}
		g.entities.Add(newMonster(def, x, y))
	}

	numItems := g.rng.Intn(g.reg.MaxItemsPerRoom(depth) + 1)
	for i := 0; i < numItems; i++ {
		x, y := g.randomCellIn(room)
		if g.isBlocked(x, y) {
			continue
		}
		def := g.reg.PickItem(g.rng, depth)
		if def == nil {
			continue
		}
		g.entities.Add(newItem(def, x, y))
	}
}

// randomCellIn samples a cell from the room interior.
func (g *Engine) randomCellIn(room world.Rect) (int, int) {
	x := room.X1 + 1 + g.rng.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + g.rng.Intn(room.Y2-room.Y1-1)
	return x, y
}

// newMonster instantiates a monster entity from its definition.
func newMonster(def *gamedata.MonsterDef, x, y int) *entity.Entity {
	m := entity.New(x, y, def.GlyphRune(), def.Name, def.Color, true)
	m.Alive = true
	m.Fighter = entity.NewFighter(def.HP, def.Defense, def.Power, def.XP, entity.DeathMonster)
	m.AI = entity.BasicAI()
	return m
}

// newItem instantiates an item entity from its definition.
func newItem(def *gamedata.ItemDef, x, y int) *entity.Entity {
	it := entity.New(x, y, def.GlyphRune(), def.Name, def.Color, false)
	kind := entity.ItemKind(def.ID)
	it.Item = &kind
	if def.IsEquipment() {
		it.Equipment = &entity.Equipment{
			Slot:         entity.Slot(def.Slot),
			PowerBonus:   def.PowerBonus,
			DefenseBonus: def.DefenseBonus,
			MaxHPBonus:   def.MaxHPBonus,
		}
	}
	return it
}

// giveStartingGear puts an equipped dagger in the player's inventory.
func (g *Engine) giveStartingGear() {
	def := g.reg.ItemByID("dagger")
	if def == nil {
		return
	}
	dagger := newItem(def, 0, 0)
	dagger.Equipment.Equipped = true
	g.state.Inventory = append(g.state.Inventory, dagger)
}
