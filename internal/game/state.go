package game

import (
	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/world"
)

// State is the saved/loaded aggregate: the map, the message log, the
// player's inventory and the dungeon depth. The entities on the map are
// owned separately by the Engine and serialized alongside.
type State struct {
	Map          *world.Map       `json:"map"`
	Log          *MessageLog      `json:"log"`
	Inventory    []*entity.Entity `json:"inventory"`
	DungeonLevel int              `json:"dungeonLevel"`
}

// ActionResult classifies how the engine handled a player action.
type ActionResult int

const (
	// DidntTakeTurn means the action cost no game time; monsters stay put.
	DidntTakeTurn ActionResult = iota
	// TookTurn means game time advanced and every AI entity acts.
	TookTurn
	// Exit means the player asked to leave the game loop.
	Exit
)

// String returns a human-readable result name.
func (r ActionResult) String() string {
	switch r {
	case DidntTakeTurn:
		return "didnt_take_turn"
	case TookTurn:
		return "took_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// ActionKind identifies a discrete player input event, as supplied by the
// input collaborator.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActMove
	ActPickUp
	ActUseItem
	ActDropItem
	ActDescend
	ActExit
)

// Action is one resolved player input. DX/DY are set for ActMove; Index is
// the inventory index for ActUseItem/ActDropItem.
type Action struct {
	Kind   ActionKind
	DX, DY int
	Index  int
}
