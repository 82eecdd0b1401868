// Package rules implements the combat rules: stat derivation, the enemy
// catalog, the action resolvers for both sides, and the randomness source
// they share. Everything here is pure computation over entities; persistence
// and sequencing belong to the orchestrator.
package rules

import "github.com/aetherium/battle-api/internal/entities"

// DeriveStats converts a character's base attributes and level into
// combat-ready stats. The formulas are fixed for compatibility with
// previously persisted battles:
//
//	maxHp   = 50 + level*10 + vitality*2
//	maxMp   = floor(20 + level*5 + intelligence*1.5)
//	attack  = 10 + level*2 + strength
//	defense = floor(5 + level + vitality*0.5)
//	speed   = 10 + dexterity
//
// The fractional coefficients reduce to integer arithmetic, so the floors
// are exact.
func DeriveStats(level int32, attrs entities.Attributes) entities.CombatStats {
	return entities.CombatStats{
		MaxHP:   50 + level*10 + attrs.Vitality*2,
		MaxMP:   20 + level*5 + attrs.Intelligence + attrs.Intelligence/2,
		Attack:  10 + level*2 + attrs.Strength,
		Defense: 5 + level + attrs.Vitality/2,
		Speed:   10 + attrs.Dexterity,
	}
}
