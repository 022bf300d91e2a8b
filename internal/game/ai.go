package game

import (
	"fmt"
	"math"

	"github.com/samdwyer/hollowdeep/internal/entity"
)

// monsterTurn runs one AI activation for a monster.
func (g *Engine) monsterTurn(e *entity.Entity) {
	switch e.AI.Kind {
	case entity.AIBasic:
		g.basicTurn(e)
	case entity.AIConfused:
		g.confusedTurn(e)
	}
}

// basicTurn chases the player while it can see them and attacks once
// adjacent. Monsters use the player's visibility set: if the player can see
// the monster, the monster has noticed the player.
func (g *Engine) basicTurn(e *entity.Entity) {
	if !g.IsVisible(e.X, e.Y) {
		return
	}
	player := g.entities.Player()

	if e.DistanceTo(player) >= 2 {
		g.moveTowards(e, player.X, player.Y)
	} else if player.Fighter != nil && player.Alive {
		g.attack(e.ID, player.ID)
	}
}

// confusedTurn stumbles one random step, including the standing-still step.
// The activation after the timer goes negative restores the saved behavior
// instead of moving, so the effect lasts timer+1 activations.
func (g *Engine) confusedTurn(e *entity.Entity) {
	if e.AI.TurnsLeft < 0 {
		e.AI = e.AI.Restore()
		g.state.Log.Add(fmt.Sprintf("The %s is no longer confused!", e.Name), ColorRed)
		return
	}

	dx := g.rng.Intn(3) - 1
	dy := g.rng.Intn(3) - 1
	g.moveBy(e, dx, dy)
	e.AI.TurnsLeft--
}

// moveTowards steps one tile toward the target using the rounded unit
// vector of the distance.
func (g *Engine) moveTowards(e *entity.Entity, targetX, targetY int) {
	dx := float64(targetX - e.X)
	dy := float64(targetY - e.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return
	}
	g.moveBy(e, int(math.Round(dx/dist)), int(math.Round(dy/dist)))
}

// moveBy moves the entity by the delta if the destination is clear.
func (g *Engine) moveBy(e *entity.Entity, dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	x, y := e.X+dx, e.Y+dy
	if !g.isBlocked(x, y) {
		e.SetPos(x, y)
	}
}
