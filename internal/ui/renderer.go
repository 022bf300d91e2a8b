package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/game"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
)

const (
	// PanelHeight is the status panel below the map.
	PanelHeight = 7
	// BarWidth is the width of the HP bar.
	BarWidth = 20
	// Message panel geometry inside the status panel.
	msgX      = BarWidth + 2
	msgHeight = PanelHeight - 1
)

// Background palette: explored tiles render dim, visible tiles lit.
var (
	colorDarkWall    = gamedata.MustParseHexColor("#000064")
	colorLightWall   = gamedata.MustParseHexColor("#826E32")
	colorDarkGround  = gamedata.MustParseHexColor("#323296")
	colorLightGround = gamedata.MustParseHexColor("#C8B432")
)

// Renderer draws engine snapshots to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one full frame: map background, entities, HP bar, dungeon
// level and the message log tail.
func (r *Renderer) Render(s *game.Snapshot) {
	r.screen.Clear()
	r.drawMap(s)
	r.drawEntities(s)
	r.drawPanel(s)
	r.screen.Show()
}

// drawMap paints tile backgrounds. Unexplored tiles stay black; explored
// tiles use the dim palette until they are currently visible.
func (r *Renderer) drawMap(s *game.Snapshot) {
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			t := s.Tiles[y][x]
			if !t.Explored {
				continue
			}
			var bg tcell.Color
			switch {
			case t.Visible && t.Wall:
				bg = colorLightWall
			case t.Visible:
				bg = colorLightGround
			case t.Wall:
				bg = colorDarkWall
			default:
				bg = colorDarkGround
			}
			r.screen.SetContent(x, y, ' ', tcell.StyleDefault.Background(bg))
		}
	}
}

// drawEntities draws the snapshot's entity list. It is already in
// back-to-front order.
func (r *Renderer) drawEntities(s *game.Snapshot) {
	for _, e := range s.Entities {
		t := s.Tiles[e.Y][e.X]
		fg, err := gamedata.ParseHexColor(e.Color)
		if err != nil {
			fg = tcell.ColorWhite
		}
		bg := colorLightGround
		if !t.Visible {
			// Remembered entities (the stairs) render muted on the dim floor.
			bg = colorDarkGround
			fg = gamedata.Dim(fg, 0.5)
		}
		r.screen.SetContent(e.X, e.Y, e.Glyph, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

// drawPanel renders the HP bar, dungeon level and message log below the map.
func (r *Renderer) drawPanel(s *game.Snapshot) {
	panelY := s.Height + 1

	r.drawBar(1, panelY, "HP", s.HP, s.MaxHP, tcell.ColorRed, tcell.ColorDarkRed)
	r.screen.Print(1, panelY+2, fmt.Sprintf("Dungeon level: %d", s.DungeonLevel), tcell.StyleDefault)
	if s.PlayerDead {
		r.screen.Print(1, panelY+4, "YOU DIED", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	r.drawMessages(s, panelY)
}

// drawBar renders a labeled value bar, filled proportionally.
func (r *Renderer) drawBar(x, y int, name string, value, maximum int, barColor, backColor tcell.Color) {
	filled := 0
	if maximum > 0 {
		filled = value * BarWidth / maximum
	}
	for i := 0; i < BarWidth; i++ {
		bg := backColor
		if i < filled {
			bg = barColor
		}
		r.screen.SetContent(x+i, y, ' ', tcell.StyleDefault.Background(bg))
	}
	label := fmt.Sprintf("%s: %d/%d", name, value, maximum)
	r.screen.Print(x+(BarWidth-len(label))/2, y, label, tcell.StyleDefault.Background(backColor))
}

// drawMessages word-wraps the log tail into the message panel, newest at
// the bottom, oldest visible rows cut off first.
func (r *Renderer) drawMessages(s *game.Snapshot, panelY int) {
	width, _ := r.screen.Size()
	msgWidth := width - msgX - 1
	if msgWidth <= 0 {
		return
	}

	type line struct {
		text  string
		color string
	}
	var lines []line
	for _, m := range s.Messages {
		for _, chunk := range wrapText(m.Text, msgWidth) {
			lines = append(lines, line{text: chunk, color: m.Color})
		}
	}
	if len(lines) > msgHeight {
		lines = lines[len(lines)-msgHeight:]
	}

	for i, l := range lines {
		fg, err := gamedata.ParseHexColor(l.color)
		if err != nil {
			fg = tcell.ColorWhite
		}
		r.screen.Print(msgX, panelY+i, l.text, tcell.StyleDefault.Foreground(fg))
	}
}

// wrapText splits text into rows no wider than width, breaking on spaces
// where possible.
func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var rows []string
	for len(text) > width {
		cut := width
		for i := width; i > 0; i-- {
			if text[i] == ' ' {
				cut = i
				break
			}
		}
		rows = append(rows, text[:cut])
		text = text[cut:]
		for len(text) > 0 && text[0] == ' ' {
			text = text[1:]
		}
	}
	if len(text) > 0 {
		rows = append(rows, text)
	}
	return rows
}
