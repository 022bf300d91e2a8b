package gamedata

// MonsterDef defines a monster species loaded from JSON.
type MonsterDef struct {
	ID          string       `json:"id"`          // Unique identifier (e.g. "orc")
	Name        string       `json:"name"`        // Display name (e.g. "Orc")
	Glyph       string       `json:"glyph"`       // Single character for rendering
	Color       string       `json:"color"`       // Hex color code
	HP          int          `json:"hp"`          // Base maximum hit points
	Defense     int          `json:"defense"`     // Base defense
	Power       int          `json:"power"`       // Base attack power
	XP          int          `json:"xp"`          // Experience awarded on kill
	SpawnWeight []Transition `json:"spawnWeight"` // Depth-scaled spawn weight
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	// MaxPerRoom is the depth-scaled cap on monsters spawned per room.
	MaxPerRoom []Transition `json:"maxPerRoom"`
	Monsters   []MonsterDef `json:"monsters"`
}

// LoadMonsters loads the embedded monsters.json file.
func LoadMonsters() (MonstersFile, error) {
	return Load[MonstersFile]("monsters.json")
}
