package battle

import "github.com/aetherium/battle-api/internal/entities"

// StartBattleInput defines the request for starting a battle
type StartBattleInput struct {
	CharacterID string

	// EnemyType defaults to goblin when empty.
	EnemyType entities.EnemyType
}

// StartBattleOutput defines the response for starting a battle
type StartBattleOutput struct {
	BattleID  string
	State     entities.BattleState
	EnemyName string
	Message   string
}

// SubmitTurnInput defines the request for submitting a battle turn
type SubmitTurnInput struct {
	BattleID string
	Action   entities.TurnAction
}

// SubmitTurnOutput defines the response for a resolved battle turn. The
// enemy entry is nil when the character's action ended the battle.
type SubmitTurnOutput struct {
	State           entities.BattleState
	CharacterEntry  entities.LogEntry
	EnemyEntry      *entities.LogEntry
	Ended           bool
	Result          entities.BattleResult
	ExperienceGained int64
	TokensEarned     int64
}

// GetBattleInput defines the request for reading a battle
type GetBattleInput struct {
	ID string
}

// GetBattleOutput defines the response for reading a battle. Character is
// nil when the owning character no longer exists.
type GetBattleOutput struct {
	Battle    *entities.Battle
	Character *entities.Summary
}
