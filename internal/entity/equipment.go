package entity

// Slot is an equipment slot. The inventory manager keeps at most one
// equipped item per slot; the type itself does not enforce that.
type Slot string

const (
	SlotLeftHand  Slot = "left_hand"
	SlotRightHand Slot = "right_hand"
	SlotHead      Slot = "head"
)

// Equipment is the equippable-item payload. Bonuses apply to the player's
// effective stats while Equipped is true.
type Equipment struct {
	Slot         Slot `json:"slot"`
	Equipped     bool `json:"equipped"`
	PowerBonus   int  `json:"powerBonus"`
	DefenseBonus int  `json:"defenseBonus"`
	MaxHPBonus   int  `json:"maxHpBonus"`
}
