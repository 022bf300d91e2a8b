package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
	"github.com/samdwyer/hollowdeep/internal/telemetry"
)

// UseOutcome classifies how an item use ended.
type UseOutcome int

const (
	// UseConsumed spends the item; it leaves the inventory.
	UseConsumed UseOutcome = iota
	// UseCancelled aborts without spending a charge; state is untouched.
	UseCancelled
	// UseKept applies the item without consuming it (equipment toggles).
	UseKept
)

// useItem dispatches an inventory item to its effect. The effect is read
// off the definition: equipment toggles, area blasts, confusion, bolts and
// potions, in that precedence order.
func (g *Engine) useItem(ctx context.Context, index int) {
	if index < 0 || index >= len(g.state.Inventory) {
		return
	}
	item := g.state.Inventory[index]
	if item.Item == nil {
		g.state.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), ColorYellow)
		return
	}
	def := g.reg.ItemByID(string(*item.Item))
	if def == nil {
		g.state.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), ColorYellow)
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.use_item")
	span.SetAttributes(attribute.String("item", def.ID))
	defer span.End()

	var outcome UseOutcome
	switch {
	case def.IsEquipment():
		g.toggleEquip(item)
		outcome = UseKept
	case def.Radius > 0:
		outcome = g.castFireball(def)
	case def.Turns > 0:
		outcome = g.castConfuse(def)
	case def.Damage > 0:
		outcome = g.castLightning(def)
	case def.Heal > 0:
		outcome = g.castHeal(def)
	default:
		g.state.Log.Add(fmt.Sprintf("The %s cannot be used.", item.Name), ColorYellow)
		outcome = UseKept
	}
	span.SetAttributes(attribute.Int("outcome", int(outcome)))

	if outcome == UseConsumed {
		g.state.Inventory = append(g.state.Inventory[:index], g.state.Inventory[index+1:]...)
	}
}

// castHeal restores HP, refusing (and keeping the charge) at full health.
func (g *Engine) castHeal(def *gamedata.ItemDef) UseOutcome {
	player := g.entities.Player()
	if player.Fighter == nil || player.Fighter.HP >= g.effectiveMaxHP(player) {
		g.state.Log.Add("You are already at full health.", ColorRed)
		return UseCancelled
	}
	g.state.Log.Add("Your wounds start to feel better!", ColorViolet)
	g.heal(player, def.Heal)
	return UseConsumed
}

// castLightning strikes the nearest visible monster within range.
func (g *Engine) castLightning(def *gamedata.ItemDef) UseOutcome {
	target := g.closestMonster(def.Range)
	if target == nil {
		g.state.Log.Add("No enemy is close enough to strike. Spell cancelled.", ColorRed)
		return UseCancelled
	}
	g.state.Log.Add(
		fmt.Sprintf("A lightning bolt strikes the %s with a loud thunder! The damage is %d hit points.",
			target.Name, def.Damage),
		ColorLightBlue)
	if xp := g.takeDamage(target, def.Damage); xp > 0 {
		g.awardXP(xp)
	}
	return UseConsumed
}

// castConfuse asks the targeter for a tile and replaces the AI of the
// monster there with a confusion wrapper.
func (g *Engine) castConfuse(def *gamedata.ItemDef) UseOutcome {
	if g.targeter == nil {
		g.state.Log.Add("Spell cancelled.", ColorWhite)
		return UseCancelled
	}
	p, ok := g.targeter.PickTile(def.Range)
	if !ok {
		g.state.Log.Add("Spell cancelled.", ColorWhite)
		return UseCancelled
	}

	for _, e := range g.entities.At(p.X, p.Y) {
		if e.AI != nil && !g.entities.IsPlayer(e) {
			e.AI = entity.Confuse(e.AI, def.Turns)
			g.state.Log.Add(
				fmt.Sprintf("The eyes of the %s look vacant, as it starts to stumble around!", e.Name),
				ColorGreen)
			return UseConsumed
		}
	}
	g.state.Log.Add("There is no monster there to confuse.", ColorWhite)
	return UseCancelled
}

// castFireball asks for a target tile and burns every living fighter within
// the blast radius, the player included. Monster kills are summed into one
// experience award.
func (g *Engine) castFireball(def *gamedata.ItemDef) UseOutcome {
	if g.targeter == nil {
		g.state.Log.Add("Spell cancelled.", ColorWhite)
		return UseCancelled
	}
	p, ok := g.targeter.PickTile(0)
	if !ok {
		g.state.Log.Add("Spell cancelled.", ColorWhite)
		return UseCancelled
	}

	g.state.Log.Add(
		fmt.Sprintf("The fireball explodes, burning everything within %d tiles!", def.Radius),
		ColorOrange)

	totalXP := 0
	for _, e := range g.entities.All() {
		if e.Fighter == nil || !e.Alive {
			continue
		}
		if e.Distance(p.X, p.Y) > float64(def.Radius) {
			continue
		}
		g.state.Log.Add(
			fmt.Sprintf("The %s gets burned for %d hit points.", e.Name, def.Damage),
			ColorOrange)
		totalXP += g.takeDamage(e, def.Damage)
	}
	if totalXP > 0 {
		g.awardXP(totalXP)
	}
	return UseConsumed
}

// closestMonster returns the nearest AI-bearing fighter within range that
// the player can currently see, or nil.
func (g *Engine) closestMonster(maxRange int) *entity.Entity {
	var closest *entity.Entity
	best := float64(maxRange) + 1

	player := g.entities.Player()
	for _, e := range g.entities.All() {
		if g.entities.IsPlayer(e) || e.Fighter == nil || e.AI == nil {
			continue
		}
		if !g.IsVisible(e.X, e.Y) {
			continue
		}
		if d := player.DistanceTo(e); d < best {
			best = d
			closest = e
		}
	}
	return closest
}
