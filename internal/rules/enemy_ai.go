package rules

import (
	"fmt"

	"github.com/aetherium/battle-api/internal/entities"
)

// ResolveEnemyAction selects and applies the enemy's action: 70% attack, 20%
// skill when the enemy can afford the MP, defend otherwise (including the
// skill draw landing without enough MP). It mirrors ResolveCharacterAction's
// contract: mutates the working state, returns one log entry, never touches
// sequencing.
func ResolveEnemyAction(state *entities.BattleState, roller Roller) entities.LogEntry {
	ch := &state.Character
	enemy := &state.Enemy

	enemy.DefendBonus = 0

	var action entities.ActionKind
	var damage int32
	var message string

	roll := roller.Float64()
	switch {
	case roll < enemyAttackChance:
		action = entities.ActionAttack
		// Swing roll is uniform in [-4, 3].
		damage = attackDamage(enemy.Attack, ch.EffectiveDefense(), int32(roller.IntN(8))-4)
		ch.ApplyDamage(damage)
		message = fmt.Sprintf("%s attacks %s for %d damage!", enemy.Name, ch.Name, damage)

	case roll < enemyAttackChance+enemySkillChance && enemy.MP >= EnemySkillMPCost:
		action = entities.ActionSkill
		enemy.MP -= EnemySkillMPCost
		damage = enemy.Attack * 13 / 10 // floor(attack * 1.3)
		ch.ApplyDamage(damage)
		message = fmt.Sprintf("%s uses a special attack for %d damage!", enemy.Name, damage)

	default:
		action = entities.ActionDefend
		enemy.DefendBonus = EnemyDefendBonus
		message = fmt.Sprintf("%s takes a defensive stance!", enemy.Name)
	}

	return entities.LogEntry{
		Turn:    state.Turn,
		Actor:   entities.ActorEnemy,
		Action:  string(action),
		Damage:  damage,
		Message: message,
		State:   *state,
	}
}
