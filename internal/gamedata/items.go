package gamedata

// ItemDef defines an item kind loaded from JSON. The effect fields double
// as the use-dispatch: a non-empty Slot makes it equipment, Radius > 0 an
// area blast, Turns > 0 a confusion effect, Damage > 0 a ranged bolt and
// Heal > 0 a potion.
type ItemDef struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Glyph       string       `json:"glyph"`
	Color       string       `json:"color"`
	SpawnWeight []Transition `json:"spawnWeight"`

	// Consumable effects.
	Heal   int `json:"heal,omitempty"`
	Damage int `json:"damage,omitempty"`
	Range  int `json:"range,omitempty"`
	Radius int `json:"radius,omitempty"`
	Turns  int `json:"turns,omitempty"`

	// Equipment payload.
	Slot         string `json:"slot,omitempty"`
	PowerBonus   int    `json:"powerBonus,omitempty"`
	DefenseBonus int    `json:"defenseBonus,omitempty"`
	MaxHPBonus   int    `json:"maxHpBonus,omitempty"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// IsEquipment reports whether the item occupies an equipment slot.
func (i *ItemDef) IsEquipment() bool {
	return i.Slot != ""
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	// MaxPerRoom is the depth-scaled cap on items spawned per room.
	MaxPerRoom []Transition `json:"maxPerRoom"`
	Items      []ItemDef    `json:"items"`
}

// LoadItems loads the embedded items.json file.
func LoadItems() (ItemsFile, error) {
	return Load[ItemsFile]("items.json")
}
