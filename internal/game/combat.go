package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samdwyer/hollowdeep/internal/entity"
)

// effectivePower returns base power plus equipped bonuses. Only the player
// has an equipment bonus lookup; monsters fight with bare stats.
func (g *Engine) effectivePower(e *entity.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BasePower + g.equipmentBonus(e, func(eq *entity.Equipment) int { return eq.PowerBonus })
}

// effectiveDefense returns base defense plus equipped bonuses.
func (g *Engine) effectiveDefense(e *entity.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseDefense + g.equipmentBonus(e, func(eq *entity.Equipment) int { return eq.DefenseBonus })
}

// effectiveMaxHP returns base max HP plus equipped bonuses.
func (g *Engine) effectiveMaxHP(e *entity.Entity) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.BaseMaxHP + g.equipmentBonus(e, func(eq *entity.Equipment) int { return eq.MaxHPBonus })
}

// equipmentBonus sums a bonus over the player's currently equipped items.
// Derived every call, never cached, so equip changes apply immediately.
func (g *Engine) equipmentBonus(e *entity.Entity, pick func(*entity.Equipment) int) int {
	if !g.entities.IsPlayer(e) {
		return 0
	}
	total := 0
	for _, item := range g.state.Inventory {
		if item.Equipment != nil && item.Equipment.Equipped {
			total += pick(item.Equipment)
		}
	}
	return total
}

// attack resolves one melee attack between two distinct entities, addressed
// by handle so the pair accessor can enforce distinctness. Damage is
// effective power minus effective defense; a non-positive result still
// counts as an attempt and is logged, but applies nothing.
func (g *Engine) attack(attackerID, defenderID uuid.UUID) {
	attacker, defender, err := g.entities.Pair(attackerID, defenderID)
	if err != nil {
		g.logger.Error("melee pair resolution failed", zap.Error(err))
		return
	}
	damage := g.effectivePower(attacker) - g.effectiveDefense(defender)

	if damage > 0 {
		g.state.Log.Add(
			fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, defender.Name, damage),
			ColorWhite)
		xp := g.takeDamage(defender, damage)
		if xp > 0 && g.entities.IsPlayer(attacker) {
			g.awardXP(xp)
		}
	} else {
		g.state.Log.Add(
			fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, defender.Name),
			ColorWhite)
	}
}

// takeDamage applies damage and handles death. HP may go negative
// transiently; death fires the instant it reaches zero or below, exactly
// once. Damage to an already-dead entity is ignored entirely. The return
// value is the XP the death yields, for the killer to collect.
func (g *Engine) takeDamage(e *entity.Entity, amount int) int {
	if e.Fighter == nil || !e.Alive {
		return 0
	}
	if amount > 0 {
		e.Fighter.HP -= amount
	}
	if e.Fighter.HP <= 0 {
		xp := e.Fighter.XP
		death := e.Fighter.Death
		g.applyDeath(e)
		if death == entity.DeathMonster {
			return xp
		}
	}
	return 0
}

// heal restores HP, capped at the effective maximum.
func (g *Engine) heal(e *entity.Entity, amount int) {
	if e.Fighter == nil || amount <= 0 {
		return
	}
	e.Fighter.HP += amount
	if maxHP := g.effectiveMaxHP(e); e.Fighter.HP > maxHP {
		e.Fighter.HP = maxHP
	}
}

// applyDeath transitions an entity to dead. The behavior is the closed
// DeathKind tag: the player becomes a corpse but keeps their stats so the
// final screen still renders; a monster becomes inert remains that no
// longer block, act or take hits.
func (g *Engine) applyDeath(e *entity.Entity) {
	switch e.Fighter.Death {
	case entity.DeathPlayer:
		g.state.Log.Add("You died!", ColorRed)
		e.Alive = false
		e.Glyph = '%'
		e.Color = ColorDarkRed

	case entity.DeathMonster:
		g.state.Log.Add(
			fmt.Sprintf("%s is dead! You gain %d experience points.", e.Name, e.Fighter.XP),
			ColorOrange)
		e.Alive = false
		e.Glyph = '%'
		e.Color = ColorDarkRed
		e.Blocks = false
		e.Fighter = nil
		e.AI = nil
		e.AlwaysVisible = false
		e.Name = "remains of " + e.Name
	}
}

// awardXP credits experience to the player.
func (g *Engine) awardXP(xp int) {
	player := g.entities.Player()
	if player.Fighter != nil {
		player.Fighter.XP += xp
	}
}
