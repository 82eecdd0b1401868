package rules

import (
	"fmt"

	"github.com/aetherium/battle-api/internal/entities"
)

// Combat constants. Item IDs match the shop catalog's consumable entries.
const (
	SkillMPCost      int32 = 10
	CharDefendBonus  int32 = 5
	EnemySkillMPCost int32 = 8
	EnemyDefendBonus int32 = 3

	HealthPotionID int32 = 7
	ManaPotionID   int32 = 8
	healthPotionHP int32 = 50
	manaPotionMP   int32 = 30

	enemyAttackChance = 0.70
	enemySkillChance  = 0.20
)

// ResolveCharacterAction applies the character's requested action to the
// working state and returns the log entry describing it. Bad player input
// (unknown item, not enough MP) wastes the turn with a descriptive message
// rather than failing the request. The resolver never advances Turn or
// CurrentTurn; sequencing is the orchestrator's job.
func ResolveCharacterAction(state *entities.BattleState, action entities.TurnAction, roller Roller) entities.LogEntry {
	ch := &state.Character
	enemy := &state.Enemy

	// Last round's defensive stance lapses once the character acts again.
	ch.DefendBonus = 0

	var damage int32
	var message string

	switch action.Kind {
	case entities.ActionAttack:
		// Swing roll is uniform in [-5, 4].
		damage = attackDamage(ch.Attack, enemy.EffectiveDefense(), int32(roller.IntN(10))-5)
		enemy.ApplyDamage(damage)
		message = fmt.Sprintf("%s attacks %s for %d damage!", ch.Name, enemy.Name, damage)

	case entities.ActionDefend:
		ch.DefendBonus = CharDefendBonus
		message = fmt.Sprintf("%s takes a defensive stance!", ch.Name)

	case entities.ActionSkill:
		if ch.MP >= SkillMPCost {
			ch.MP -= SkillMPCost
			damage = ch.Attack * 3 / 2 // floor(attack * 1.5)
			enemy.ApplyDamage(damage)
			message = fmt.Sprintf("%s uses a special skill for %d damage!", ch.Name, damage)
		} else {
			message = fmt.Sprintf("%s doesn't have enough MP for a skill!", ch.Name)
		}

	case entities.ActionItem:
		message = useItem(ch, action.ItemID)

	default:
		message = fmt.Sprintf("%s hesitates...", ch.Name)
	}

	return entities.LogEntry{
		Turn:    state.Turn,
		Actor:   entities.ActorCharacter,
		Action:  string(action.Kind),
		Damage:  damage,
		Message: message,
		State:   *state,
	}
}

// attackDamage applies the mitigation formula with a uniform swing roll,
// flooring at 1 so a landed hit always costs something.
func attackDamage(attack, defense, swing int32) int32 {
	damage := attack - defense + swing
	if damage < 1 {
		return 1
	}
	return damage
}

// useItem consumes a battle item. Only the two consumable potions are usable
// mid-battle; anything else is a wasted turn.
func useItem(ch *entities.Combatant, itemID int32) string {
	switch itemID {
	case HealthPotionID:
		ch.Heal(healthPotionHP)
		return fmt.Sprintf("%s uses a Health Potion and recovers %d HP!", ch.Name, healthPotionHP)
	case ManaPotionID:
		ch.RestoreMana(manaPotionMP)
		return fmt.Sprintf("%s uses a Mana Potion and recovers %d MP!", ch.Name, manaPotionMP)
	default:
		return fmt.Sprintf("%s fumbles through the pack and finds nothing useful...", ch.Name)
	}
}
