package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/hollowdeep/internal/game"
	"github.com/samdwyer/hollowdeep/internal/persist"
)

// App drives the interactive session: it owns the screen, renders engine
// snapshots, decodes input into engine actions, and saves on exit. It also
// implements game.Targeter and game.StatChooser, so spell targeting and
// level-up prompts run as modal sub-loops inside the frame loop.
type App struct {
	screen   *Screen
	renderer *Renderer
	engine   *game.Engine
	logger   *zap.Logger
	savePath string
}

// NewApp creates an app for the given screen. The engine is attached
// separately with SetEngine because the engine needs the app as its
// targeter.
func NewApp(screen *Screen, logger *zap.Logger, savePath string) *App {
	return &App{
		screen:   screen,
		renderer: NewRenderer(screen),
		logger:   logger,
		savePath: savePath,
	}
}

// SetEngine attaches the simulation engine the app drives.
func (a *App) SetEngine(e *game.Engine) {
	a.engine = e
}

// Run executes the frame loop until the player quits. The session is saved
// before returning so it can be resumed later.
func (a *App) Run(ctx context.Context) error {
	for {
		a.engine.UpdateVisibility()
		a.renderer.Render(a.engine.Snapshot())
		a.engine.CheckLevelUp(a)

		ev := a.screen.PollEvent()
		if _, ok := ev.(*tcell.EventResize); ok {
			a.screen.Sync()
			continue
		}

		in := DecodeEvent(ev)
		switch in.Command {
		case CmdAction:
			a.engine.HandleAction(ctx, in.Action)
		case CmdInventory:
			idx := a.inventoryMenu("Press the key next to an item to use it, or Esc to cancel.", a.engine.Inventory())
			if idx >= 0 {
				a.engine.HandleAction(ctx, game.Action{Kind: game.ActUseItem, Index: idx})
			}
		case CmdDrop:
			idx := a.inventoryMenu("Press the key next to an item to drop it, or Esc to cancel.", a.engine.Inventory())
			if idx >= 0 {
				a.engine.HandleAction(ctx, game.Action{Kind: game.ActDropItem, Index: idx})
			}
		case CmdCharacter:
			a.characterScreen(a.engine.PlayerStats())
		case CmdQuit:
			if a.engine.HandleAction(ctx, game.Action{Kind: game.ActExit}) == game.Exit {
				return a.save()
			}
		}
	}
}

func (a *App) save() error {
	entities, playerID, state := a.engine.SaveData()
	sg := &persist.SaveGame{PlayerID: playerID, Entities: entities, Game: state}
	if err := persist.Save(a.savePath, sg); err != nil {
		a.logger.Error("saving game", zap.String("path", a.savePath), zap.Error(err))
		return err
	}
	a.logger.Info("game saved", zap.String("path", a.savePath), zap.Int("dungeon_level", state.DungeonLevel))
	return nil
}
