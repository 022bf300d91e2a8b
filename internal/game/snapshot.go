package game

import (
	"github.com/google/uuid"

	"github.com/samdwyer/hollowdeep/internal/entity"
)

// messageTail bounds how much log history a snapshot carries. More than any
// message panel shows, even after word wrapping.
const messageTail = 30

// TileView is one cell of the renderable map: what the presentation layer
// needs and nothing else.
type TileView struct {
	Wall     bool
	Visible  bool
	Explored bool
}

// RenderEntity is one drawable entity.
type RenderEntity struct {
	X, Y  int
	Glyph rune
	Color string
}

// Snapshot is the full renderable state handed to the presentation layer
// each frame.
type Snapshot struct {
	Width, Height int
	Tiles         [][]TileView
	// Entities is in back-to-front draw order: non-blocking entities first,
	// so items never visually occlude the monster standing on them.
	Entities     []RenderEntity
	HP, MaxHP    int
	DungeonLevel int
	Messages     []Message
	PlayerDead   bool
}

// Snapshot builds the renderable state for the current frame. An entity is
// included when its tile is visible, or when it is always-visible and its
// tile has been explored.
func (g *Engine) Snapshot() *Snapshot {
	m := g.state.Map
	s := &Snapshot{
		Width:        m.Width,
		Height:       m.Height,
		Tiles:        make([][]TileView, m.Height),
		DungeonLevel: g.state.DungeonLevel,
		Messages:     g.state.Log.Tail(messageTail),
	}

	for y := 0; y < m.Height; y++ {
		s.Tiles[y] = make([]TileView, m.Width)
		for x := 0; x < m.Width; x++ {
			t := m.At(x, y)
			s.Tiles[y][x] = TileView{
				Wall:     t.BlocksSight,
				Visible:  g.visible.Contains(x, y),
				Explored: t.Explored,
			}
		}
	}

	appendVisible := func(e *entity.Entity) {
		tile := m.At(e.X, e.Y)
		if tile == nil {
			return
		}
		if g.visible.Contains(e.X, e.Y) || (e.AlwaysVisible && tile.Explored) {
			s.Entities = append(s.Entities, RenderEntity{X: e.X, Y: e.Y, Glyph: e.Glyph, Color: e.Color})
		}
	}
	for _, e := range g.entities.All() {
		if !e.Blocks {
			appendVisible(e)
		}
	}
	for _, e := range g.entities.All() {
		if e.Blocks {
			appendVisible(e)
		}
	}

	player := g.entities.Player()
	s.PlayerDead = !player.Alive
	if player.Fighter != nil {
		s.HP = player.Fighter.HP
		s.MaxHP = g.effectiveMaxHP(player)
	}
	return s
}

// SaveData exposes the serializable parts of the engine for the
// persistence collaborator.
func (g *Engine) SaveData() (entities []*entity.Entity, playerID uuid.UUID, state *State) {
	return g.entities.All(), g.entities.PlayerID(), g.state
}
