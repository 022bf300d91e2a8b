package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/world"
)

// PickTile implements game.Targeter. It runs a modal mouse loop: a left
// click on a visible tile within maxRange selects it, a right click or
// Escape cancels. A maxRange of 0 means unlimited range.
func (a *App) PickTile(maxRange int) (world.Point, bool) {
	player := a.engine.Entities().Player()
	snap := a.engine.Snapshot()
	a.renderer.Render(snap)

	for {
		ev := a.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyEscape {
				return world.Point{}, false
			}
		case *tcell.EventMouse:
			x, y := tev.Position()
			buttons := tev.Buttons()
			if buttons&tcell.Button2 != 0 {
				return world.Point{}, false
			}
			if buttons&tcell.Button1 == 0 {
				continue
			}
			if !a.engine.IsVisible(x, y) {
				continue
			}
			if maxRange > 0 && player.Distance(x, y) > float64(maxRange) {
				continue
			}
			return world.Point{X: x, Y: y}, true
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Render(snap)
		}
	}
}
