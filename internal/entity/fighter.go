package entity

// DeathKind is the closed set of death behaviors. It is switched explicitly
// where death is applied instead of being a stored callback.
type DeathKind string

const (
	// DeathPlayer ends the run but leaves the session viewable.
	DeathPlayer DeathKind = "player"
	// DeathMonster turns the entity into an inert corpse and yields XP.
	DeathMonster DeathKind = "monster"
)

// Fighter is the combat-capable attribute bundle. Base stats exclude
// equipment bonuses; effective stats are always derived at the call site,
// never cached here.
type Fighter struct {
	BaseMaxHP   int       `json:"baseMaxHp"`
	HP          int       `json:"hp"`
	BaseDefense int       `json:"baseDefense"`
	BasePower   int       `json:"basePower"`
	XP          int       `json:"xp"`
	Death       DeathKind `json:"death"`
}

// NewFighter creates a fighter at full health.
func NewFighter(maxHP, defense, power, xp int, death DeathKind) *Fighter {
	return &Fighter{
		BaseMaxHP:   maxHP,
		HP:          maxHP,
		BaseDefense: defense,
		BasePower:   power,
		XP:          xp,
		Death:       death,
	}
}
