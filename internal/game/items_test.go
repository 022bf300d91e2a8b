package game

import (
	"context"
	"testing"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/world"
)

type stubTargeter struct {
	p  world.Point
	ok bool
}

func (s stubTargeter) PickTile(int) (world.Point, bool) {
	return s.p, s.ok
}

func TestHealingPotionAtFullHealth(t *testing.T) {
	g := newTestEngine(t)
	carryItem(t, g, "healing_potion")

	g.useItem(context.Background(), 0)

	if len(g.state.Inventory) != 1 {
		t.Fatal("potion consumed despite full health")
	}
	if countMessages(g, "already at full health") != 1 {
		t.Fatal("missing refusal message")
	}
}

func TestHealingPotionConsumed(t *testing.T) {
	g := newTestEngine(t)
	player := g.entities.Player()
	player.Fighter.HP = 30
	carryItem(t, g, "healing_potion")

	g.useItem(context.Background(), 0)

	if player.Fighter.HP != 70 {
		t.Fatalf("player HP = %d, want 70", player.Fighter.HP)
	}
	if len(g.state.Inventory) != 0 {
		t.Fatal("potion not consumed")
	}
}

func TestLightningStrikesClosestVisible(t *testing.T) {
	g := newTestEngine(t)
	near := spawnMonster(t, g, "orc", 7, 5)
	far := spawnMonster(t, g, "troll", 10, 5)
	g.UpdateVisibility()
	carryItem(t, g, "lightning_scroll")

	g.useItem(context.Background(), 0)

	if near.Fighter != nil {
		t.Fatal("nearest orc survived a 40 damage bolt")
	}
	if far.Fighter.HP != 30 {
		t.Fatalf("troll HP = %d, want untouched 30", far.Fighter.HP)
	}
	if g.entities.Player().Fighter.XP != 35 {
		t.Fatalf("player XP = %d, want 35", g.entities.Player().Fighter.XP)
	}
	if len(g.state.Inventory) != 0 {
		t.Fatal("scroll not consumed")
	}
}

func TestLightningWithoutTargetKeepsScroll(t *testing.T) {
	g := newTestEngine(t)
	// The orc exists but nothing is visible yet, so there is no target.
	spawnMonster(t, g, "orc", 7, 5)
	carryItem(t, g, "lightning_scroll")

	g.useItem(context.Background(), 0)

	if len(g.state.Inventory) != 1 {
		t.Fatal("scroll consumed with no target")
	}
	if countMessages(g, "No enemy is close enough to strike") != 1 {
		t.Fatal("missing cancellation message")
	}
}

func TestConfusionLifecycle(t *testing.T) {
	g := newTestEngine(t)
	orc := spawnMonster(t, g, "orc", 10, 10)
	g.targeter = stubTargeter{p: world.Point{X: 10, Y: 10}, ok: true}
	g.UpdateVisibility()
	carryItem(t, g, "confusion_scroll")

	g.useItem(context.Background(), 0)

	if orc.AI.Kind != entity.AIConfused {
		t.Fatalf("orc AI = %v, want confused", orc.AI.Kind)
	}
	if len(g.state.Inventory) != 0 {
		t.Fatal("scroll not consumed")
	}

	// Ten stumbling activations, one that flips the timer negative, one that
	// restores. The monster is back to normal after twelve.
	activations := 0
	for orc.AI.Kind == entity.AIConfused && activations < 30 {
		g.monsterTurn(orc)
		activations++
	}
	if activations != 12 {
		t.Fatalf("confusion lasted %d activations, want 12", activations)
	}
	if orc.AI.Kind != entity.AIBasic {
		t.Fatalf("orc AI = %v after wearing off, want basic", orc.AI.Kind)
	}
	if countMessages(g, "no longer confused") != 1 {
		t.Fatalf("restore message logged %d times, want once", countMessages(g, "no longer confused"))
	}
}

func TestConfusionCancelledKeepsScroll(t *testing.T) {
	g := newTestEngine(t)
	g.targeter = stubTargeter{ok: false}
	carryItem(t, g, "confusion_scroll")

	g.useItem(context.Background(), 0)

	if len(g.state.Inventory) != 1 {
		t.Fatal("scroll consumed on cancellation")
	}
	if countMessages(g, "Spell cancelled.") != 1 {
		t.Fatal("missing cancellation message")
	}
}

func TestConfusionNeedsMonsterOnTile(t *testing.T) {
	g := newTestEngine(t)
	g.targeter = stubTargeter{p: world.Point{X: 12, Y: 12}, ok: true}
	carryItem(t, g, "confusion_scroll")

	g.useItem(context.Background(), 0)

	if len(g.state.Inventory) != 1 {
		t.Fatal("scroll consumed on an empty tile")
	}
	if countMessages(g, "no monster there to confuse") != 1 {
		t.Fatal("missing empty-tile message")
	}
}

func TestFireballBurnsEverythingInRadius(t *testing.T) {
	g := newTestEngine(t)
	player := g.entities.Player()
	inBlast := spawnMonster(t, g, "orc", 7, 5)
	outside := spawnMonster(t, g, "troll", 15, 15)
	g.targeter = stubTargeter{p: world.Point{X: 7, Y: 5}, ok: true}
	g.UpdateVisibility()
	carryItem(t, g, "fireball_scroll")

	g.useItem(context.Background(), 0)

	if inBlast.Fighter != nil {
		t.Fatal("orc at ground zero survived 25 damage")
	}
	// The player stands 2 tiles from the blast center, inside radius 3.
	if player.Fighter.HP != 75 {
		t.Fatalf("player HP = %d, want 75: the fireball does not spare its caster", player.Fighter.HP)
	}
	if outside.Fighter.HP != 30 {
		t.Fatalf("troll HP = %d, want untouched 30", outside.Fighter.HP)
	}
	if player.Fighter.XP != 35 {
		t.Fatalf("player XP = %d, want a single summed award of 35", player.Fighter.XP)
	}
	if len(g.state.Inventory) != 0 {
		t.Fatal("scroll not consumed")
	}
}

func TestFireballCancelledLeavesStateUntouched(t *testing.T) {
	g := newTestEngine(t)
	orc := spawnMonster(t, g, "orc", 7, 5)
	g.targeter = stubTargeter{ok: false}
	carryItem(t, g, "fireball_scroll")

	g.useItem(context.Background(), 0)

	if len(g.state.Inventory) != 1 {
		t.Fatal("scroll consumed on cancellation")
	}
	if orc.Fighter.HP != 20 {
		t.Fatalf("orc HP = %d after a cancelled cast", orc.Fighter.HP)
	}
	if g.entities.Player().Fighter.HP != 100 {
		t.Fatal("player damaged by a cancelled cast")
	}
}
