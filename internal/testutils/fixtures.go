package testutils

import (
	"time"

	"github.com/aetherium/battle-api/internal/entities"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Aria Stormblade"

// CreateTestCharacter creates a test character with sensible defaults.
// Level 3 warrior: maxHp 104, maxMp 41, attack 30, defense 14, speed 18.
func CreateTestCharacter(id string) *entities.Character {
	return &entities.Character{
		ID:            id,
		WalletAddress: "0xabc123",
		Name:          TestCharacterName,
		Class:         entities.ClassWarrior,
		Level:         3,
		Attributes: entities.Attributes{
			Strength:     14,
			Vitality:     12,
			Intelligence: 4,
			Dexterity:    8,
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
