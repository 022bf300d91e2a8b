package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/fov"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
	"github.com/samdwyer/hollowdeep/internal/telemetry"
	"github.com/samdwyer/hollowdeep/internal/world"
)

const (
	// TorchRadius is the player's field-of-view radius.
	TorchRadius = 10

	// Player base stats; the starting dagger supplies the rest.
	playerBaseHP      = 100
	playerBaseDefense = 1
	playerBasePower   = 2

	// maxGenerationRetries bounds how often a level regenerates after a
	// zero-room layout before the engine gives up.
	maxGenerationRetries = 5
)

// Targeter resolves a target tile for a targeted item. Implementations block
// until the user picks a tile that is currently visible and within maxRange
// of the player (maxRange 0 means unbounded), or cancels. ok is false on
// cancellation; the engine then charges nothing.
type Targeter interface {
	PickTile(maxRange int) (p world.Point, ok bool)
}

// Options configures a new engine.
type Options struct {
	Width    int
	Height   int
	Seed     int64 // 0 derives a seed from the clock
	Logger   *zap.Logger
	Targeter Targeter
	Registry *gamedata.Registry // nil loads the embedded data
}

// Engine is the turn-based game core. It owns the live entity list, the
// game state and the visibility set, and is the only mutator of all three.
// It is single-threaded: one HandleAction call resolves one player action
// and, if that consumed a turn, every monster's response.
type Engine struct {
	state    *State
	entities *entity.List
	reg      *gamedata.Registry
	rng      *rand.Rand
	logger   *zap.Logger
	targeter Targeter

	visible       fov.Set
	prevPlayerPos world.Point
	stairsID      uuid.UUID
	width, height int
}

// New creates an engine with a freshly generated first level.
func New(ctx context.Context, opts Options) (*Engine, error) {
	g, err := newEngine(opts)
	if err != nil {
		return nil, err
	}

	player := entity.New(0, 0, '@', "Player", ColorWhite, true)
	player.Alive = true
	player.Level = 1
	player.Fighter = entity.NewFighter(playerBaseHP, playerBaseDefense, playerBasePower, 0, entity.DeathPlayer)
	g.entities = entity.NewList(player)

	g.state = &State{
		Log:          NewMessageLog(),
		DungeonLevel: 1,
	}
	g.giveStartingGear()

	if err := g.buildLevel(ctx, 1); err != nil {
		return nil, err
	}

	g.state.Log.Add("Welcome stranger! Prepare to perish in the depths.", ColorRed)
	return g, nil
}

// Resume rebuilds an engine from loaded save data.
func Resume(ctx context.Context, entities []*entity.Entity, playerID uuid.UUID, state *State, opts Options) (*Engine, error) {
	g, err := newEngine(opts)
	if err != nil {
		return nil, err
	}

	list, err := entity.Restore(entities, playerID)
	if err != nil {
		return nil, err
	}
	g.entities = list
	g.state = state
	for _, e := range entities {
		if e.Name == stairsName {
			g.stairsID = e.ID
		}
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.resume")
	span.SetAttributes(
		attribute.Int("dungeon_level", state.DungeonLevel),
		attribute.Int("entities", len(entities)))
	span.End()

	g.logger.Info("resumed saved game",
		zap.Int("dungeon_level", state.DungeonLevel),
		zap.Int("entities", len(entities)))
	return g, nil
}

func newEngine(opts Options) (*Engine, error) {
	if opts.Width <= 0 {
		opts.Width = world.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = world.DefaultHeight
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	reg := opts.Registry
	if reg == nil {
		var err error
		reg, err = gamedata.LoadRegistry()
		if err != nil {
			return nil, fmt.Errorf("loading game data: %w", err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		reg:           reg,
		rng:           rand.New(rand.NewSource(seed)),
		logger:        opts.Logger,
		targeter:      opts.Targeter,
		prevPlayerPos: world.Point{X: -1, Y: -1},
		width:         opts.Width,
		height:        opts.Height,
	}, nil
}

// HandleAction resolves one player action. On a turn-consuming action every
// AI-bearing entity acts once, in list order, before control returns.
func (g *Engine) HandleAction(ctx context.Context, a Action) ActionResult {
	player := g.entities.Player()
	result := DidntTakeTurn

	switch a.Kind {
	case ActExit:
		return Exit

	case ActMove:
		if player.Alive {
			g.movePlayerOrAttack(a.DX, a.DY)
			result = TookTurn
		}

	case ActPickUp:
		if player.Alive && g.pickUp() {
			result = TookTurn
		}

	case ActUseItem:
		if player.Alive {
			g.useItem(ctx, a.Index)
		}

	case ActDropItem:
		if player.Alive && g.dropItem(a.Index) {
			result = TookTurn
		}

	case ActDescend:
		if player.Alive {
			g.descendStairs(ctx)
		}
	}

	if result == TookTurn && player.Alive {
		g.runMonsterTurns(ctx)
	}
	return result
}

// UpdateVisibility recomputes the field of view if and only if the player
// has moved since the last recompute, and marks every visible tile explored.
func (g *Engine) UpdateVisibility() {
	player := g.entities.Player()
	x, y := player.Pos()
	pos := world.Point{X: x, Y: y}
	if pos == g.prevPlayerPos {
		return
	}

	g.visible = fov.Compute(g.state.Map, x, y, TorchRadius)
	for p := range g.visible {
		g.state.Map.MarkExplored(p.X, p.Y)
	}
	g.prevPlayerPos = pos
}

// IsVisible reports whether the tile is in the current field of view.
func (g *Engine) IsVisible(x, y int) bool {
	return g.visible.Contains(x, y)
}

// State returns the game state aggregate.
func (g *Engine) State() *State {
	return g.state
}

// Entities returns the live entity list.
func (g *Engine) Entities() *entity.List {
	return g.entities
}

// movePlayerOrAttack moves the player by one step, or attacks the fighter
// standing in the way.
func (g *Engine) movePlayerOrAttack(dx, dy int) {
	player := g.entities.Player()
	x, y := player.X+dx, player.Y+dy

	for _, e := range g.entities.At(x, y) {
		if e.Fighter != nil && e.Alive && !g.entities.IsPlayer(e) {
			g.attack(player.ID, e.ID)
			return
		}
	}
	if !g.isBlocked(x, y) {
		player.SetPos(x, y)
	}
}

// isBlocked reports whether terrain or a blocking entity occupies the tile.
func (g *Engine) isBlocked(x, y int) bool {
	if g.state.Map.IsBlocked(x, y) {
		return true
	}
	return g.entities.BlockingAt(x, y) != nil
}

// descendStairs regenerates the dungeon one level deeper if the player is
// standing on the stairs. Descending itself costs no turn.
func (g *Engine) descendStairs(ctx context.Context) {
	player := g.entities.Player()
	stairs := g.entities.ByID(g.stairsID)
	if stairs == nil || stairs.X != player.X || stairs.Y != player.Y {
		g.state.Log.Add("There are no stairs here.", ColorWhite)
		return
	}

	g.state.Log.Add("You take a moment to rest, and recover your strength.", ColorViolet)
	g.heal(player, g.effectiveMaxHP(player)/2)

	g.state.Log.Add("After a rare moment of peace, you descend deeper into the heart of the dungeon...", ColorRed)
	g.state.DungeonLevel++
	if err := g.buildLevel(ctx, g.state.DungeonLevel); err != nil {
		// Generation exhausted its retries; keep the current level rather
		// than stranding the player on an undefined map.
		g.logger.Error("level generation failed", zap.Error(err), zap.Int("depth", g.state.DungeonLevel))
		g.state.DungeonLevel--
		g.state.Log.Add("The way down collapses before you!", ColorRed)
	}
}

// runMonsterTurns gives every AI-bearing entity one activation, in
// deterministic list order, skipping the player.
func (g *Engine) runMonsterTurns(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.monster_turns")
	defer span.End()

	acted := 0
	for _, e := range g.entities.All() {
		if g.entities.IsPlayer(e) || e.AI == nil {
			continue
		}
		g.monsterTurn(e)
		acted++
	}
	span.SetAttributes(attribute.Int("monsters_acted", acted))
}
