package entities

// EnemyType keys the enemy catalog.
type EnemyType string

// Enemy types, in ascending difficulty.
const (
	EnemyGoblin   EnemyType = "goblin"
	EnemyOrc      EnemyType = "orc"
	EnemySkeleton EnemyType = "skeleton"
	EnemyDragon   EnemyType = "dragon"
)

// EnemyTemplate describes one enemy archetype: its stats and the rewards for
// defeating it. Templates are immutable catalog entries; battles copy the
// stats into a working Combatant.
type EnemyTemplate struct {
	Type             EnemyType   `json:"type"`
	Name             string      `json:"name"`
	Level            int32       `json:"level"`
	Stats            CombatStats `json:"stats"`
	ExperienceReward int64       `json:"experienceReward"`
	TokenReward      int64       `json:"tokenReward"`
}

// NewCombatant builds a fresh combatant from the template at full HP/MP.
func (t *EnemyTemplate) NewCombatant() Combatant {
	return NewCombatant("", t.Name, t.Level, t.Stats)
}
