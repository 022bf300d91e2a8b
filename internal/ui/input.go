package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/game"
)

// Command is a player intent decoded from a terminal event. Most commands
// translate directly into engine actions; the rest open UI overlays.
type Command int

const (
	// CmdNone means the event carried no player intent (resize, mouse move).
	CmdNone Command = iota
	// CmdAction wraps an engine action such as a move or pick-up.
	CmdAction
	// CmdInventory opens the inventory menu in use mode.
	CmdInventory
	// CmdDrop opens the inventory menu in drop mode.
	CmdDrop
	// CmdCharacter opens the character information screen.
	CmdCharacter
	// CmdQuit exits the game, saving first.
	CmdQuit
)

// Input holds a decoded command and, for CmdAction, the engine action.
type Input struct {
	Command Command
	Action  game.Action
}

// DecodeEvent maps a terminal event to a player command. Unbound keys and
// non-key events decode to CmdNone.
func DecodeEvent(ev tcell.Event) Input {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Input{Command: CmdNone}
	}

	switch key.Key() {
	case tcell.KeyUp:
		return moveInput(0, -1)
	case tcell.KeyDown:
		return moveInput(0, 1)
	case tcell.KeyLeft:
		return moveInput(-1, 0)
	case tcell.KeyRight:
		return moveInput(1, 0)
	case tcell.KeyEscape:
		return Input{Command: CmdQuit}
	case tcell.KeyRune:
		switch key.Rune() {
		case 'k':
			return moveInput(0, -1)
		case 'j':
			return moveInput(0, 1)
		case 'h':
			return moveInput(-1, 0)
		case 'l':
			return moveInput(1, 0)
		case 'y':
			return moveInput(-1, -1)
		case 'u':
			return moveInput(1, -1)
		case 'b':
			return moveInput(-1, 1)
		case 'n':
			return moveInput(1, 1)
		case 'g':
			return Input{Command: CmdAction, Action: game.Action{Kind: game.ActPickUp}}
		case '>':
			return Input{Command: CmdAction, Action: game.Action{Kind: game.ActDescend}}
		case 'i':
			return Input{Command: CmdInventory}
		case 'd':
			return Input{Command: CmdDrop}
		case 'c':
			return Input{Command: CmdCharacter}
		case 'q':
			return Input{Command: CmdQuit}
		}
	}
	return Input{Command: CmdNone}
}

func moveInput(dx, dy int) Input {
	return Input{Command: CmdAction, Action: game.Action{Kind: game.ActMove, DX: dx, DY: dy}}
}
