package entities

import "time"

// Class enumerates the playable character classes.
type Class string

// Character classes
const (
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassRogue   Class = "rogue"
)

// ParseClass maps a wire-level class tag to its Class. The second return is
// false for anything outside the closed set.
func ParseClass(s string) (Class, bool) {
	switch Class(s) {
	case ClassWarrior, ClassMage, ClassRogue:
		return Class(s), true
	default:
		return "", false
	}
}

// Attributes are a character's base attributes, fixed at mint time. Combat
// stats are derived from these plus level.
type Attributes struct {
	Strength     int32 `json:"strength"`
	Vitality     int32 `json:"vitality"`
	Intelligence int32 `json:"intelligence"`
	Dexterity    int32 `json:"dexterity"`
}

// Character is the slice of character data the battle core consumes.
// Minting, leveling, and wallet management belong to the chain collaborator.
type Character struct {
	ID            string     `json:"id"`
	WalletAddress string     `json:"walletAddress"`
	Name          string     `json:"name"`
	Class         Class      `json:"class"`
	Level         int32      `json:"level"`
	Attributes    Attributes `json:"attributes"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Summary is the minimal character view attached to battle reads.
type Summary struct {
	Name  string `json:"name"`
	Class Class  `json:"class"`
	Level int32  `json:"level"`
}

// Summary returns the minimal view of the character.
func (c *Character) Summary() Summary {
	return Summary{Name: c.Name, Class: c.Class, Level: c.Level}
}
