// Package entities contains the domain model for the battle service:
// battles, combatants, log entries, characters, and enemy templates.
package entities

import "time"

// Actor identifies who produced a log entry.
type Actor string

// Log entry actors
const (
	ActorCharacter   Actor = "character"
	ActorEnemy       Actor = "enemy"
	ActorBattleStart Actor = "battle_start"
)

// TurnOwner identifies whose action the battle is waiting on. TurnNone means
// the battle has ended.
type TurnOwner string

// Turn owners
const (
	TurnCharacter TurnOwner = "character"
	TurnEnemy     TurnOwner = "enemy"
	TurnNone      TurnOwner = "none"
)

// BattleResult is the battle's lifecycle state. Victory and defeat are
// terminal.
type BattleResult string

// Battle results
const (
	ResultOngoing BattleResult = "ongoing"
	ResultVictory BattleResult = "victory"
	ResultDefeat  BattleResult = "defeat"
)

// CombatStats are the derived, combat-ready numbers for one side of a battle.
type CombatStats struct {
	MaxHP   int32 `json:"maxHp"`
	MaxMP   int32 `json:"maxMp"`
	Attack  int32 `json:"attack"`
	Defense int32 `json:"defense"`
	Speed   int32 `json:"speed"`
}

// Combatant is one side's mutable combat attributes within a battle.
type Combatant struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Level   int32  `json:"level"`
	HP      int32  `json:"hp"`
	MaxHP   int32  `json:"maxHp"`
	MP      int32  `json:"mp"`
	MaxMP   int32  `json:"maxMp"`
	Attack  int32  `json:"attack"`
	Defense int32  `json:"defense"`
	Speed   int32  `json:"speed"`

	// DefendBonus is the temporary defense gained from a defend action. It
	// counts toward EffectiveDefense until this combatant next acts.
	DefendBonus int32 `json:"defendBonus,omitempty"`
}

// NewCombatant builds a combatant at full HP/MP from derived stats.
func NewCombatant(id, name string, level int32, stats CombatStats) Combatant {
	return Combatant{
		ID:      id,
		Name:    name,
		Level:   level,
		HP:      stats.MaxHP,
		MaxHP:   stats.MaxHP,
		MP:      stats.MaxMP,
		MaxMP:   stats.MaxMP,
		Attack:  stats.Attack,
		Defense: stats.Defense,
		Speed:   stats.Speed,
	}
}

// EffectiveDefense is the defense used for damage mitigation, including any
// active defend bonus.
func (c *Combatant) EffectiveDefense() int32 {
	return c.Defense + c.DefendBonus
}

// ApplyDamage reduces HP, flooring at zero.
func (c *Combatant) ApplyDamage(damage int32) {
	c.HP -= damage
	if c.HP < 0 {
		c.HP = 0
	}
}

// Heal restores HP, capped at MaxHP.
func (c *Combatant) Heal(amount int32) {
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// RestoreMana restores MP, capped at MaxMP.
func (c *Combatant) RestoreMana(amount int32) {
	c.MP += amount
	if c.MP > c.MaxMP {
		c.MP = c.MaxMP
	}
}

// Defeated reports whether this combatant's HP has reached zero.
func (c *Combatant) Defeated() bool {
	return c.HP <= 0
}

// BattleState is the full mutable state of one encounter. Combatants are
// embedded by value, so assigning a BattleState produces a deep snapshot
// without any serialize round-trip.
//
// Invariant: CurrentTurn is TurnNone if and only if one side has fallen.
type BattleState struct {
	Character   Combatant `json:"character"`
	Enemy       Combatant `json:"enemy"`
	Turn        int32     `json:"turn"`
	CurrentTurn TurnOwner `json:"currentTurn"`
}

// Outcome reports whether the battle has ended and how. Victory takes
// precedence when both sides are down, matching the character-acts-first
// ordering.
func (s *BattleState) Outcome() (BattleResult, bool) {
	if s.Enemy.Defeated() {
		return ResultVictory, true
	}
	if s.Character.Defeated() {
		return ResultDefeat, true
	}
	return ResultOngoing, false
}

// LogEntry records one resolved action plus the full battle state at the
// moment the entry was produced. The log is append-only; the last entry's
// snapshot is the authoritative current state.
type LogEntry struct {
	Turn    int32       `json:"turn"`
	Actor   Actor       `json:"actor"`
	Action  string      `json:"action"`
	Damage  int32       `json:"damage"`
	Message string      `json:"message"`
	State   BattleState `json:"battleState"`
}

// Battle is the persisted aggregate for one encounter, including its
// append-only log. It is created on battle start and mutated by each turn;
// the core never deletes it.
type Battle struct {
	ID               string       `json:"id"`
	CharacterID      string       `json:"characterId"`
	EnemyType        EnemyType    `json:"enemyType"`
	EnemyName        string       `json:"enemyName"`
	EnemyBaseStats   CombatStats  `json:"enemyBaseStats"`
	Result           BattleResult `json:"result"`
	ExperienceGained int64        `json:"experienceGained"`
	TokensEarned     int64        `json:"tokensEarned"`
	Log              []LogEntry   `json:"log"`
	CreatedAt        time.Time    `json:"createdAt"`
	CompletedAt      *time.Time   `json:"completedAt,omitempty"`
}

// CurrentState recovers the battle state from the last log entry. There is
// no separately stored current state; the log tail is the source of truth.
func (b *Battle) CurrentState() BattleState {
	if len(b.Log) == 0 {
		return BattleState{}
	}
	return b.Log[len(b.Log)-1].State
}
