package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/game"
)

const menuWidth = 50

// menu draws a boxed, letter-indexed option list centered on the screen and
// blocks until the player picks an option or cancels. It returns the index
// of the chosen option, or -1 on cancel. The caller redraws afterwards.
func (a *App) menu(header string, options []string) int {
	sw, sh := a.screen.Size()

	headerLines := wrapText(header, menuWidth-2)
	height := len(headerLines) + len(options) + 2
	x0 := (sw - menuWidth) / 2
	y0 := (sh - height) / 2

	boxStyle := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+menuWidth; x++ {
			a.screen.SetContent(x, y, ' ', boxStyle)
		}
	}

	row := y0 + 1
	for _, line := range headerLines {
		a.screen.Print(x0+1, row, line, boxStyle.Bold(true))
		row++
	}
	for i, opt := range options {
		a.screen.Print(x0+1, row, fmt.Sprintf("(%c) %s", 'a'+i, opt), boxStyle)
		row++
	}
	a.screen.Show()

	for {
		ev := a.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		// An option-less box is a plain message; any key dismisses it.
		if key.Key() == tcell.KeyEscape || len(options) == 0 {
			return -1
		}
		if key.Key() == tcell.KeyRune {
			idx := int(key.Rune() - 'a')
			if idx >= 0 && idx < len(options) {
				return idx
			}
		}
	}
}

// messageBox shows a single-line modal and waits for any key.
func (a *App) messageBox(text string) {
	a.menu(text, nil)
}

// inventoryMenu lists the player's inventory with equip annotations and
// returns the chosen slot index, or -1 on cancel or empty inventory.
func (a *App) inventoryMenu(header string, items []*entity.Entity) int {
	if len(items) == 0 {
		a.messageBox("Inventory is empty.")
		return -1
	}
	options := make([]string, len(items))
	for i, it := range items {
		name := it.Name
		if it.Equipment != nil && it.Equipment.Equipped {
			name = fmt.Sprintf("%s (on %s)", name, slotLabel(it.Equipment.Slot))
		}
		options[i] = name
	}
	return a.menu(header, options)
}

func slotLabel(slot entity.Slot) string {
	switch slot {
	case entity.SlotLeftHand:
		return "left hand"
	case entity.SlotRightHand:
		return "right hand"
	case entity.SlotHead:
		return "head"
	}
	return string(slot)
}

// characterScreen shows the player's stats in a modal box.
func (a *App) characterScreen(info game.PlayerInfo) {
	text := fmt.Sprintf(
		"Character information. Level: %d. Experience: %d. Experience to level up: %d. Maximum HP: %d. Attack: %d. Defense: %d.",
		info.Level, info.XP, info.XPToNext, info.MaxHP, info.Power, info.Defense,
	)
	a.messageBox(text)
}

// ChooseStat implements game.StatChooser by presenting the level-up menu.
// It keeps asking until the player picks; leveling up cannot be skipped.
func (a *App) ChooseStat(newLevel int) game.StatChoice {
	header := fmt.Sprintf("Level up! Choose a stat to raise (you are now level %d):", newLevel)
	options := []string{
		"Constitution (+20 HP)",
		"Strength (+1 attack)",
		"Agility (+1 defense)",
	}
	for {
		switch a.menu(header, options) {
		case 0:
			return game.ChooseHP
		case 1:
			return game.ChoosePower
		case 2:
			return game.ChooseDefense
		}
	}
}

// MenuChoice is a main menu selection.
type MenuChoice int

const (
	// MenuNewGame starts a fresh run.
	MenuNewGame MenuChoice = iota
	// MenuContinue loads the saved game.
	MenuContinue
	// MenuQuit exits.
	MenuQuit
)

// MainMenu draws the title screen and returns the player's choice.
func MainMenu(screen *Screen) MenuChoice {
	sw, sh := screen.Size()

	screen.Clear()
	title := "HOLLOWDEEP"
	subtitle := "a tale of the deep places"
	screen.Print((sw-len(title))/2, sh/4, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	screen.Print((sw-len(subtitle))/2, sh/4+1, subtitle, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	options := []string{"Play a new game", "Continue last game", "Quit"}
	y := sh / 2
	for i, opt := range options {
		line := fmt.Sprintf("(%c) %s", 'a'+i, opt)
		screen.Print((sw-len(line))/2, y+i, line, tcell.StyleDefault)
	}
	screen.Show()

	for {
		ev := screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape {
			return MenuQuit
		}
		if key.Key() == tcell.KeyRune {
			switch key.Rune() {
			case 'a':
				return MenuNewGame
			case 'b':
				return MenuContinue
			case 'c', 'q':
				return MenuQuit
			}
		}
	}
}
