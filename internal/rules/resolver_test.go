package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aetherium/battle-api/internal/entities"
	"github.com/aetherium/battle-api/internal/rules"
	"github.com/aetherium/battle-api/internal/testutils"
)

func newTestState() entities.BattleState {
	return entities.BattleState{
		Character: entities.Combatant{
			ID: "char-1", Name: "Aria", Level: 3,
			HP: 100, MaxHP: 100, MP: 40, MaxMP: 40,
			Attack: 20, Defense: 10, Speed: 15,
		},
		Enemy: entities.Combatant{
			Name: "Goblin", Level: 1,
			HP: 30, MaxHP: 30, MP: 10, MaxMP: 10,
			Attack: 8, Defense: 5, Speed: 12,
		},
		Turn:        1,
		CurrentTurn: entities.TurnCharacter,
	}
}

func TestResolveCharacterAttack(t *testing.T) {
	state := newTestState()
	roller := &testutils.ScriptedRoller{Ints: []int{5}} // swing = 5 - 5 = 0

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionAttack}, roller)

	// 20 attack - 5 defense + 0 swing
	assert.Equal(t, int32(15), entry.Damage)
	assert.Equal(t, int32(15), state.Enemy.HP)
	assert.Equal(t, entities.ActorCharacter, entry.Actor)
	assert.Equal(t, "attack", entry.Action)
	assert.Equal(t, "Aria attacks Goblin for 15 damage!", entry.Message)
	assert.Equal(t, int32(1), entry.Turn)
}

func TestResolveCharacterAttackRespectsDefendBonus(t *testing.T) {
	state := newTestState()
	state.Enemy.DefendBonus = 3
	roller := &testutils.ScriptedRoller{Ints: []int{5}}

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionAttack}, roller)

	// 20 - (5 + 3) + 0
	assert.Equal(t, int32(12), entry.Damage)
}

func TestResolveCharacterAttackFloorsAtOne(t *testing.T) {
	state := newTestState()
	state.Character.Attack = 3
	state.Enemy.Defense = 50
	roller := &testutils.ScriptedRoller{Ints: []int{0}} // worst swing, -5

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionAttack}, roller)

	assert.Equal(t, int32(1), entry.Damage)
	assert.Equal(t, int32(29), state.Enemy.HP)
}

func TestResolveCharacterDefend(t *testing.T) {
	state := newTestState()

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionDefend}, &testutils.ScriptedRoller{})

	assert.Equal(t, rules.CharDefendBonus, state.Character.DefendBonus)
	assert.Zero(t, entry.Damage)
	assert.Equal(t, "Aria takes a defensive stance!", entry.Message)
	assert.Equal(t, int32(30), state.Enemy.HP)
}

func TestDefendBonusLapsesOnNextAction(t *testing.T) {
	state := newTestState()

	rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionDefend}, &testutils.ScriptedRoller{})
	assert.Equal(t, rules.CharDefendBonus, state.Character.DefendBonus)

	rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionAttack}, &testutils.ScriptedRoller{Ints: []int{5}})
	assert.Zero(t, state.Character.DefendBonus)
}

func TestResolveCharacterSkill(t *testing.T) {
	state := newTestState()

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionSkill}, &testutils.ScriptedRoller{})

	// floor(20 * 1.5), defense is bypassed
	assert.Equal(t, int32(30), entry.Damage)
	assert.Equal(t, int32(0), state.Enemy.HP)
	assert.Equal(t, int32(30), state.Character.MP)
	assert.Equal(t, "Aria uses a special skill for 30 damage!", entry.Message)
}

func TestResolveCharacterSkillInsufficientMP(t *testing.T) {
	state := newTestState()
	state.Character.MP = 9

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionSkill}, &testutils.ScriptedRoller{})

	assert.Zero(t, entry.Damage)
	assert.Equal(t, int32(9), state.Character.MP) // no MP spent on a failed cast
	assert.Equal(t, int32(30), state.Enemy.HP)
	assert.Equal(t, "Aria doesn't have enough MP for a skill!", entry.Message)
}

func TestResolveCharacterItemHealthPotion(t *testing.T) {
	state := newTestState()
	state.Character.HP = 40

	entry := rules.ResolveCharacterAction(&state,
		entities.TurnAction{Kind: entities.ActionItem, ItemID: rules.HealthPotionID},
		&testutils.ScriptedRoller{})

	assert.Equal(t, int32(90), state.Character.HP)
	assert.Zero(t, entry.Damage)
	assert.Contains(t, entry.Message, "Health Potion")
}

func TestResolveCharacterItemHealthPotionCapsAtMax(t *testing.T) {
	state := newTestState()
	state.Character.HP = 80

	rules.ResolveCharacterAction(&state,
		entities.TurnAction{Kind: entities.ActionItem, ItemID: rules.HealthPotionID},
		&testutils.ScriptedRoller{})

	assert.Equal(t, state.Character.MaxHP, state.Character.HP)
}

func TestResolveCharacterItemManaPotion(t *testing.T) {
	state := newTestState()
	state.Character.MP = 5

	rules.ResolveCharacterAction(&state,
		entities.TurnAction{Kind: entities.ActionItem, ItemID: rules.ManaPotionID},
		&testutils.ScriptedRoller{})

	assert.Equal(t, int32(35), state.Character.MP)
}

func TestResolveCharacterItemUnknown(t *testing.T) {
	state := newTestState()
	before := state.Character

	entry := rules.ResolveCharacterAction(&state,
		entities.TurnAction{Kind: entities.ActionItem, ItemID: 99},
		&testutils.ScriptedRoller{})

	// Turn is wasted but nothing changes.
	assert.Equal(t, before.HP, state.Character.HP)
	assert.Equal(t, before.MP, state.Character.MP)
	assert.Equal(t, "Aria fumbles through the pack and finds nothing useful...", entry.Message)
}

func TestResolveCharacterActionSnapshotsState(t *testing.T) {
	state := newTestState()

	entry := rules.ResolveCharacterAction(&state, entities.TurnAction{Kind: entities.ActionAttack}, &testutils.ScriptedRoller{Ints: []int{5}})

	// The snapshot captures the post-action state by value.
	assert.Equal(t, state.Enemy.HP, entry.State.Enemy.HP)

	state.Enemy.HP = 1
	assert.NotEqual(t, state.Enemy.HP, entry.State.Enemy.HP)
}
