package world

const (
	// Default map dimensions. The renderer reserves rows below the map for
	// the status panel, so the map is shorter than the 80x50 screen.
	DefaultWidth  = 80
	DefaultHeight = 43
)

// Map is the dungeon tile grid. Tiles are indexed [y][x].
type Map struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"`
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = WallTile()
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the coordinates lie on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at the given position, or nil if out of bounds.
func (m *Map) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		return nil
	}
	return &m.Tiles[y][x]
}

// IsBlocked reports whether terrain blocks movement at the position.
// Out-of-bounds positions block.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

// BlocksSight reports whether the position occludes vision.
// Out-of-bounds positions occlude.
func (m *Map) BlocksSight(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].BlocksSight
}

// MarkExplored sets the explored flag at the position. Explored never
// reverts; there is deliberately no way to clear it.
func (m *Map) MarkExplored(x, y int) {
	if t := m.At(x, y); t != nil {
		t.Explored = true
	}
}

// carveFloor sets the tile at the position to floor, ignoring positions on
// the outer map border so a wall ring always survives generation.
func (m *Map) carveFloor(x, y int) {
	if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
		m.Tiles[y][x] = FloorTile()
	}
}
