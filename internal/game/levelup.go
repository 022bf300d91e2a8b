package game

import "fmt"

const (
	// Experience required for the next character level is
	// LevelUpBase + level*LevelUpFactor.
	LevelUpBase   = 200
	LevelUpFactor = 150
)

// StatChoice is the stat raised on a level-up.
type StatChoice int

const (
	ChooseHP StatChoice = iota
	ChoosePower
	ChooseDefense
)

// StatChooser supplies the player's level-up decision. The UI blocks on a
// modal menu; tests stub it.
type StatChooser interface {
	ChooseStat(newLevel int) StatChoice
}

// RequiredXP returns the experience threshold for the player's next level.
func (g *Engine) RequiredXP() int {
	return LevelUpBase + g.entities.Player().Level*LevelUpFactor
}

// CheckLevelUp grants every level the player's accumulated experience pays
// for. It loops rather than checking once, so a single large award can
// raise several levels; the threshold is recomputed after each.
func (g *Engine) CheckLevelUp(chooser StatChooser) {
	player := g.entities.Player()
	if player.Fighter == nil {
		return
	}

	for player.Fighter.XP >= g.RequiredXP() {
		threshold := g.RequiredXP()
		player.Level++
		player.Fighter.XP -= threshold
		g.state.Log.Add(
			fmt.Sprintf("Your battle skills grow stronger! You reached level %d!", player.Level),
			ColorYellow)

		switch chooser.ChooseStat(player.Level) {
		case ChooseHP:
			player.Fighter.BaseMaxHP += 20
			player.Fighter.HP += 20
		case ChoosePower:
			player.Fighter.BasePower++
		case ChooseDefense:
			player.Fighter.BaseDefense++
		}
	}
}

// PlayerInfo is the character-screen summary.
type PlayerInfo struct {
	Level     int
	XP        int
	XPToNext  int
	HP        int
	MaxHP     int
	Power     int
	Defense   int
	Dungeon   int
	Alive     bool
}

// PlayerStats returns the player's derived stats for display.
func (g *Engine) PlayerStats() PlayerInfo {
	player := g.entities.Player()
	info := PlayerInfo{
		Level:   player.Level,
		Dungeon: g.state.DungeonLevel,
		Alive:   player.Alive,
	}
	if player.Fighter != nil {
		info.XP = player.Fighter.XP
		info.XPToNext = g.RequiredXP()
		info.HP = player.Fighter.HP
		info.MaxHP = g.effectiveMaxHP(player)
		info.Power = g.effectivePower(player)
		info.Defense = g.effectiveDefense(player)
	}
	return info
}
