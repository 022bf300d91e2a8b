package game

import (
	"fmt"

	"github.com/samdwyer/hollowdeep/internal/entity"
)

// InventoryCapacity is the maximum number of carried items, one per menu
// letter a-z.
const InventoryCapacity = 26

// Inventory returns the player's carried items in order.
func (g *Engine) Inventory() []*entity.Entity {
	return g.state.Inventory
}

// pickUp moves the first item under the player from the map into the
// inventory. Returns false when there was nothing to pick up or the
// inventory is full; only a successful pick-up costs a turn.
func (g *Engine) pickUp() bool {
	player := g.entities.Player()

	var item *entity.Entity
	for _, e := range g.entities.At(player.X, player.Y) {
		if e.Item != nil {
			item = e
			break
		}
	}
	if item == nil {
		g.state.Log.Add("There is nothing here to pick up.", ColorYellow)
		return false
	}
	if len(g.state.Inventory) >= InventoryCapacity {
		g.state.Log.Add(fmt.Sprintf("Your inventory is full, cannot pick up %s.", item.Name), ColorRed)
		return false
	}

	g.entities.Remove(item.ID)
	g.state.Inventory = append(g.state.Inventory, item)
	g.state.Log.Add(fmt.Sprintf("You picked up a %s!", item.Name), ColorGreen)

	// Auto-equip into an empty slot.
	if item.Equipment != nil && g.equippedInSlot(item.Equipment.Slot) == nil {
		g.equipItem(item)
	}
	return true
}

// dropItem places an inventory item on the map at the player's position,
// dequipping it first if necessary. Returns true when something dropped.
func (g *Engine) dropItem(index int) bool {
	if index < 0 || index >= len(g.state.Inventory) {
		return false
	}
	item := g.state.Inventory[index]
	if item.Equipment != nil && item.Equipment.Equipped {
		g.dequipItem(item)
	}

	g.state.Inventory = append(g.state.Inventory[:index], g.state.Inventory[index+1:]...)
	player := g.entities.Player()
	item.SetPos(player.X, player.Y)
	g.entities.Add(item)
	g.state.Log.Add(fmt.Sprintf("You dropped a %s.", item.Name), ColorYellow)
	return true
}

// toggleEquip equips or dequips an equipment item. Equipping into an
// occupied slot dequips the current occupant first, so a slot never holds
// two equipped items. Toggling a non-equipment item is a logged no-op.
func (g *Engine) toggleEquip(item *entity.Entity) {
	if item.Equipment == nil {
		g.state.Log.Add(fmt.Sprintf("The %s cannot be equipped.", item.Name), ColorYellow)
		return
	}
	if item.Equipment.Equipped {
		g.dequipItem(item)
		return
	}
	if current := g.equippedInSlot(item.Equipment.Slot); current != nil {
		g.dequipItem(current)
	}
	g.equipItem(item)
}

// equippedInSlot returns the equipped inventory item occupying the slot,
// or nil.
func (g *Engine) equippedInSlot(slot entity.Slot) *entity.Entity {
	for _, item := range g.state.Inventory {
		if item.Equipment != nil && item.Equipment.Equipped && item.Equipment.Slot == slot {
			return item
		}
	}
	return nil
}

func (g *Engine) equipItem(item *entity.Entity) {
	item.Equipment.Equipped = true
	g.state.Log.Add(
		fmt.Sprintf("Equipped %s on %s.", item.Name, slotName(item.Equipment.Slot)),
		ColorLightBlue)
}

func (g *Engine) dequipItem(item *entity.Entity) {
	item.Equipment.Equipped = false
	g.state.Log.Add(
		fmt.Sprintf("Dequipped %s from %s.", item.Name, slotName(item.Equipment.Slot)),
		ColorYellow)
}

// slotName renders a slot for log messages.
func slotName(s entity.Slot) string {
	switch s {
	case entity.SlotLeftHand:
		return "left hand"
	case entity.SlotRightHand:
		return "right hand"
	case entity.SlotHead:
		return "head"
	default:
		return string(s)
	}
}
