package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
	"github.com/samdwyer/hollowdeep/internal/world"
)

// newTestEngine builds an engine around a 20x20 open chamber with the player
// at (5,5), bypassing level generation so tests control every entity.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	m := world.NewMap(20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			*m.At(x, y) = world.FloorTile()
		}
	}

	player := entity.New(5, 5, '@', "Player", ColorWhite, true)
	player.Alive = true
	player.Level = 1
	player.Fighter = entity.NewFighter(100, 1, 2, 0, entity.DeathPlayer)

	return &Engine{
		state:         &State{Map: m, Log: NewMessageLog(), DungeonLevel: 1},
		entities:      entity.NewList(player),
		reg:           gamedata.MustLoadRegistry(),
		rng:           rand.New(rand.NewSource(42)),
		logger:        zap.NewNop(),
		prevPlayerPos: world.Point{X: -1, Y: -1},
		width:         20,
		height:        20,
	}
}

// spawnMonster adds a monster from the registry at the given position.
func spawnMonster(t *testing.T, g *Engine, id string, x, y int) *entity.Entity {
	t.Helper()
	def := g.reg.MonsterByID(id)
	if def == nil {
		t.Fatalf("unknown monster %q", id)
	}
	m := newMonster(def, x, y)
	g.entities.Add(m)
	return m
}

// carryItem puts an item from the registry straight into the inventory.
func carryItem(t *testing.T, g *Engine, id string) *entity.Entity {
	t.Helper()
	def := g.reg.ItemByID(id)
	if def == nil {
		t.Fatalf("unknown item %q", id)
	}
	it := newItem(def, 0, 0)
	g.state.Inventory = append(g.state.Inventory, it)
	return it
}

// countMessages counts log entries containing the substring.
func countMessages(g *Engine, substr string) int {
	n := 0
	for _, m := range g.state.Log.Messages {
		if strings.Contains(m.Text, substr) {
			n++
		}
	}
	return n
}

type stubChooser struct {
	choice StatChoice
	calls  int
}

func (s *stubChooser) ChooseStat(int) StatChoice {
	s.calls++
	return s.choice
}

func TestMoveConsumesTurnAndMonstersAct(t *testing.T) {
	g := newTestEngine(t)
	orc := spawnMonster(t, g, "orc", 9, 5)
	g.UpdateVisibility()

	result := g.HandleAction(context.Background(), Action{Kind: ActMove, DX: 1})
	if result != TookTurn {
		t.Fatalf("move result = %v, want %v", result, TookTurn)
	}
	player := g.entities.Player()
	if player.X != 6 || player.Y != 5 {
		t.Fatalf("player at (%d,%d), want (6,5)", player.X, player.Y)
	}
	if orc.X != 8 || orc.Y != 5 {
		t.Fatalf("orc at (%d,%d), want (8,5): monsters must act on a consumed turn", orc.X, orc.Y)
	}
}

func TestUseItemConsumesNoTurn(t *testing.T) {
	g := newTestEngine(t)
	orc := spawnMonster(t, g, "orc", 9, 5)
	carryItem(t, g, "healing_potion")
	g.UpdateVisibility()

	result := g.HandleAction(context.Background(), Action{Kind: ActUseItem, Index: 0})
	if result != DidntTakeTurn {
		t.Fatalf("use result = %v, want %v", result, DidntTakeTurn)
	}
	if orc.X != 9 || orc.Y != 5 {
		t.Fatalf("orc moved to (%d,%d) on a free action", orc.X, orc.Y)
	}
}

func TestDeadPlayerActionsIgnored(t *testing.T) {
	g := newTestEngine(t)
	orc := spawnMonster(t, g, "orc", 9, 5)
	g.UpdateVisibility()
	g.entities.Player().Alive = false

	result := g.HandleAction(context.Background(), Action{Kind: ActMove, DX: 1})
	if result != DidntTakeTurn {
		t.Fatalf("move result = %v, want %v", result, DidntTakeTurn)
	}
	if g.entities.Player().X != 5 {
		t.Fatal("dead player moved")
	}
	if orc.X != 9 {
		t.Fatal("monsters acted on a dead player's turn")
	}
}

func TestExitAction(t *testing.T) {
	g := newTestEngine(t)
	if got := g.HandleAction(context.Background(), Action{Kind: ActExit}); got != Exit {
		t.Fatalf("exit result = %v, want %v", got, Exit)
	}
}

func TestVisibilityRecomputeOnlyOnMove(t *testing.T) {
	g := newTestEngine(t)
	g.UpdateVisibility()
	if len(g.visible) == 0 {
		t.Fatal("no visible tiles after first update")
	}

	// Poison the set: a stationary player must not trigger a recompute.
	g.visible = nil
	g.UpdateVisibility()
	if g.visible != nil {
		t.Fatal("visibility recomputed without player movement")
	}

	g.entities.Player().SetPos(6, 5)
	g.UpdateVisibility()
	if len(g.visible) == 0 {
		t.Fatal("visibility not recomputed after player moved")
	}
}

func TestExploredNeverReverts(t *testing.T) {
	g := newTestEngine(t)
	g.UpdateVisibility()
	if !g.state.Map.At(5, 5).Explored {
		t.Fatal("player's own tile not explored")
	}

	g.entities.Player().SetPos(15, 15)
	g.UpdateVisibility()
	if !g.state.Map.At(5, 5).Explored {
		t.Fatal("explored flag reverted after moving away")
	}
}

func TestDescendStairsHealsAndDeepens(t *testing.T) {
	g := newTestEngine(t)
	player := g.entities.Player()
	stairs := entity.New(player.X, player.Y, '>', stairsName, ColorWhite, false)
	stairs.AlwaysVisible = true
	g.entities.Add(stairs)
	g.stairsID = stairs.ID
	g.UpdateVisibility()

	player.Fighter.HP = 40
	g.HandleAction(context.Background(), Action{Kind: ActDescend})

	if g.state.DungeonLevel != 2 {
		t.Fatalf("dungeon level = %d, want 2", g.state.DungeonLevel)
	}
	if player.Fighter.HP != 90 {
		t.Fatalf("player HP = %d, want 90 (40 plus half of max 100)", player.Fighter.HP)
	}
	if g.entities.ByID(stairs.ID) != nil {
		t.Fatal("old stairs survived the level rebuild")
	}
	if g.entities.ByID(g.stairsID) == nil {
		t.Fatal("new level has no stairs")
	}
	if g.visible != nil {
		t.Fatal("stale visibility set survived the level rebuild")
	}
}

func TestDescendWithoutStairs(t *testing.T) {
	g := newTestEngine(t)
	stairs := entity.New(15, 15, '>', stairsName, ColorWhite, false)
	g.entities.Add(stairs)
	g.stairsID = stairs.ID

	result := g.HandleAction(context.Background(), Action{Kind: ActDescend})
	if result != DidntTakeTurn {
		t.Fatalf("descend result = %v, want %v", result, DidntTakeTurn)
	}
	if g.state.DungeonLevel != 1 {
		t.Fatalf("dungeon level = %d, want 1", g.state.DungeonLevel)
	}
	if countMessages(g, "no stairs here") != 1 {
		t.Fatal("missing refusal message")
	}
}

func TestLevelUpSingle(t *testing.T) {
	g := newTestEngine(t)
	if got := g.RequiredXP(); got != 350 {
		t.Fatalf("RequiredXP at level 1 = %d, want 350", got)
	}

	player := g.entities.Player()
	player.Fighter.XP = 350
	chooser := &stubChooser{choice: ChoosePower}
	g.CheckLevelUp(chooser)

	if player.Level != 2 {
		t.Fatalf("player level = %d, want 2", player.Level)
	}
	if player.Fighter.XP != 0 {
		t.Fatalf("leftover XP = %d, want 0", player.Fighter.XP)
	}
	if player.Fighter.BasePower != 3 {
		t.Fatalf("base power = %d, want 3", player.Fighter.BasePower)
	}
	if chooser.calls != 1 {
		t.Fatalf("chooser called %d times, want 1", chooser.calls)
	}
}

func TestLevelUpMultipleFromOneAward(t *testing.T) {
	g := newTestEngine(t)
	player := g.entities.Player()

	// 350 pays for level 2, the remaining 500 pays for level 3 exactly.
	player.Fighter.XP = 850
	chooser := &stubChooser{choice: ChooseHP}
	g.CheckLevelUp(chooser)

	if player.Level != 3 {
		t.Fatalf("player level = %d, want 3", player.Level)
	}
	if player.Fighter.XP != 0 {
		t.Fatalf("leftover XP = %d, want 0", player.Fighter.XP)
	}
	if chooser.calls != 2 {
		t.Fatalf("chooser called %d times, want 2", chooser.calls)
	}
	if player.Fighter.BaseMaxHP != 140 || player.Fighter.HP != 140 {
		t.Fatalf("HP %d/%d, want 140/140", player.Fighter.HP, player.Fighter.BaseMaxHP)
	}
}

func TestSnapshotHidesUnseenMonsters(t *testing.T) {
	g := newTestEngine(t)
	spawnMonster(t, g, "orc", 7, 5)
	spawnMonster(t, g, "troll", 18, 18)
	stairs := entity.New(18, 17, '>', stairsName, ColorWhite, false)
	stairs.AlwaysVisible = true
	g.entities.Add(stairs)
	g.UpdateVisibility()

	snap := g.Snapshot()
	var glyphs []rune
	for _, e := range snap.Entities {
		glyphs = append(glyphs, e.Glyph)
	}
	if !containsRune(glyphs, '@') || !containsRune(glyphs, 'o') {
		t.Fatalf("snapshot %q missing player or visible orc", string(glyphs))
	}
	if containsRune(glyphs, 'T') {
		t.Fatalf("snapshot %q shows a troll outside the field of view", string(glyphs))
	}
	// Stairs are out of view and unexplored, so hidden for now.
	if containsRune(glyphs, '>') {
		t.Fatalf("snapshot %q shows unexplored stairs", string(glyphs))
	}

	// Once explored, the stairs stay on screen even out of view.
	g.state.Map.MarkExplored(18, 17)
	snap = g.Snapshot()
	glyphs = glyphs[:0]
	for _, e := range snap.Entities {
		glyphs = append(glyphs, e.Glyph)
	}
	if !containsRune(glyphs, '>') {
		t.Fatalf("snapshot %q hides explored stairs", string(glyphs))
	}
}

func containsRune(rs []rune, r rune) bool {
	for _, c := range rs {
		if c == r {
			return true
		}
	}
	return false
}
