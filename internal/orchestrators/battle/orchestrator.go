// Package battle implements the battle orchestrator: the state machine that
// sequences turns, detects victory and defeat, computes rewards, and persists
// every round as snapshots in the battle's append-only log. State lives only
// in the store between calls, so any server instance can resolve any turn.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/aetherium/battle-api/internal/orchestrators/battle Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aetherium/battle-api/internal/clients/chain"
	"github.com/aetherium/battle-api/internal/entities"
	"github.com/aetherium/battle-api/internal/errors"
	"github.com/aetherium/battle-api/internal/metrics"
	"github.com/aetherium/battle-api/internal/pkg/clock"
	"github.com/aetherium/battle-api/internal/pkg/idgen"
	battlerepo "github.com/aetherium/battle-api/internal/repositories/battle"
	characterrepo "github.com/aetherium/battle-api/internal/repositories/character"
	"github.com/aetherium/battle-api/internal/rules"
)

// Consolation rewards for a defeat.
const (
	consolationExperience int64 = 10
	consolationTokens     int64 = 10
)

// Service defines the battle operations exposed to the transport layer.
type Service interface {
	// StartBattle creates a battle between a character and a catalog enemy.
	StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error)

	// SubmitTurn resolves one full round: the character's action and, if the
	// battle continues, the enemy's reaction.
	SubmitTurn(ctx context.Context, input *SubmitTurnInput) (*SubmitTurnOutput, error)

	// GetBattle reads a battle aggregate plus a character summary.
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	BattleRepo    battlerepo.Repository
	CharacterRepo characterrepo.Repository
	Catalog       *rules.Catalog
	ChainClient   chain.Client
	IDGenerator   idgen.Generator

	// Roller defaults to the PRNG roller when nil.
	Roller rules.Roller

	// Clock defaults to the real clock when nil.
	Clock clock.Clock

	// Metrics is optional.
	Metrics *metrics.BattleMetrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BattleRepo == nil {
		vb.RequiredField("BattleRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.ChainClient == nil {
		vb.RequiredField("ChainClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	battleRepo    battlerepo.Repository
	characterRepo characterrepo.Repository
	catalog       *rules.Catalog
	chainClient   chain.Client
	idGen         idgen.Generator
	roller        rules.Roller
	clock         clock.Clock
	metrics       *metrics.BattleMetrics
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rules.NewRoller()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		battleRepo:    cfg.BattleRepo,
		characterRepo: cfg.CharacterRepo,
		catalog:       cfg.Catalog,
		chainClient:   cfg.ChainClient,
		idGen:         cfg.IDGenerator,
		roller:        roller,
		clock:         clk,
		metrics:       cfg.Metrics,
	}, nil
}

// StartBattle validates the preconditions (character exists, no other
// ongoing battle, chain cooldown elapsed), derives combat stats, and writes
// the battle aggregate with its battle_start log entry. When the enemy wins
// initiative its opening action is resolved here, so every battle this
// method returns is either waiting on the character or already over.
func (o *orchestrator) StartBattle(ctx context.Context, input *StartBattleInput) (*StartBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	enemyType := input.EnemyType
	if enemyType == "" {
		enemyType = entities.EnemyGoblin
	}

	template, err := o.catalog.Lookup(enemyType)
	if err != nil {
		// An unknown enemy type is a bad request, not a missing resource.
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid enemy type %q", enemyType)
	}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	char := charOut.Character

	ongoing, err := o.battleRepo.GetOngoingByCharacter(ctx, battlerepo.GetOngoingByCharacterInput{
		CharacterID: input.CharacterID,
	})
	if err != nil && !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to check for ongoing battle")
	}
	if err == nil {
		return nil, errors.FailedPrecondition("character already has an ongoing battle").
			WithMeta("battleId", ongoing.BattleID)
	}

	canBattle, err := o.chainClient.CanBattle(ctx, char.WalletAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check battle cooldown")
	}
	if !canBattle {
		return nil, errors.FailedPrecondition("battle cooldown active, please wait before battling again")
	}

	stats := rules.DeriveStats(char.Level, char.Attributes)
	state := entities.BattleState{
		Character: entities.NewCombatant(char.ID, char.Name, char.Level, stats),
		Enemy:     template.NewCombatant(),
		Turn:      1,
	}
	if state.Character.Speed >= state.Enemy.Speed {
		state.CurrentTurn = entities.TurnCharacter
	} else {
		state.CurrentTurn = entities.TurnEnemy
	}

	now := o.clock.Now()
	battle := &entities.Battle{
		ID:             o.idGen.Generate(),
		CharacterID:    char.ID,
		EnemyType:      template.Type,
		EnemyName:      template.Name,
		EnemyBaseStats: template.Stats,
		Result:         entities.ResultOngoing,
		CreatedAt:      now,
		Log: []entities.LogEntry{{
			Turn:    0,
			Actor:   entities.ActorBattleStart,
			Action:  "battle_start",
			Message: fmt.Sprintf("Battle begins! %s vs %s", char.Name, template.Name),
			State:   state,
		}},
	}

	// A faster enemy takes its opening action inside the Start call, so
	// callers never have to submit a turn just to watch the enemy move.
	if state.CurrentTurn == entities.TurnEnemy {
		entry := rules.ResolveEnemyAction(&state, o.roller)
		if state.Character.Defeated() {
			state.CurrentTurn = entities.TurnNone
			entry.State = state
			battle.Log = append(battle.Log, entry)
			o.complete(battle, entities.ResultDefeat, &template, now)
		} else {
			state.CurrentTurn = entities.TurnCharacter
			entry.State = state
			battle.Log = append(battle.Log, entry)
		}
	}

	if _, err := o.battleRepo.Create(ctx, battlerepo.CreateInput{Battle: battle}); err != nil {
		return nil, errors.Wrap(err, "failed to create battle")
	}

	if o.metrics != nil {
		o.metrics.BattlesStarted.Inc()
	}

	if battle.Result != entities.ResultOngoing {
		o.settle(ctx, battle, char.WalletAddress)
	}

	slog.InfoContext(ctx, "battle started",
		"battle_id", battle.ID,
		"character_id", char.ID,
		"enemy_type", template.Type,
		"first_turn", state.CurrentTurn)

	return &StartBattleOutput{
		BattleID:  battle.ID,
		State:     battle.CurrentState(),
		EnemyName: template.Name,
		Message:   fmt.Sprintf("Battle started against %s!", template.Name),
	}, nil
}

// SubmitTurn resolves a full round against the state recovered from the
// battle's last log entry. The persisted write is conditional on the log not
// having grown since the read, so a concurrent submission loses cleanly with
// an Aborted error instead of silently discarding a round.
func (o *orchestrator) SubmitTurn(ctx context.Context, input *SubmitTurnInput) (*SubmitTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	getOut, err := o.battleRepo.Get(ctx, battlerepo.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, err
	}
	battle := getOut.Battle

	if battle.Result != entities.ResultOngoing {
		return nil, errors.FailedPrecondition("battle is already completed").
			WithMeta("result", string(battle.Result))
	}

	state := battle.CurrentState()
	if state.CurrentTurn != entities.TurnCharacter {
		return nil, errors.FailedPrecondition("not the character's turn")
	}

	expectedLogLength := len(battle.Log)

	charEntry := rules.ResolveCharacterAction(&state, input.Action, o.roller)
	result, ended := state.Outcome()

	var enemyEntry *entities.LogEntry
	if !ended {
		entry := rules.ResolveEnemyAction(&state, o.roller)
		enemyEntry = &entry
		if state.Character.Defeated() {
			result, ended = entities.ResultDefeat, true
		}
	}

	state.Turn++
	if ended {
		state.CurrentTurn = entities.TurnNone
	} else {
		state.CurrentTurn = entities.TurnCharacter
	}

	// The round's closing entry re-snapshots the advanced state so the next
	// call recovers a consistent snapshot from the log tail.
	if enemyEntry != nil {
		enemyEntry.State = state
		battle.Log = append(battle.Log, charEntry, *enemyEntry)
	} else {
		charEntry.State = state
		battle.Log = append(battle.Log, charEntry)
	}

	var template *entities.EnemyTemplate
	if ended {
		tpl, lookupErr := o.catalog.Lookup(battle.EnemyType)
		if lookupErr != nil {
			return nil, errors.Wrap(lookupErr, "failed to resolve enemy rewards")
		}
		template = &tpl
		o.complete(battle, result, template, o.clock.Now())
	}

	if _, err := o.battleRepo.Update(ctx, battlerepo.UpdateInput{
		Battle:            battle,
		ExpectedLogLength: expectedLogLength,
	}); err != nil {
		return nil, err
	}

	if o.metrics != nil {
		o.metrics.TurnsResolved.Inc()
	}

	if ended {
		if charOut, charErr := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: battle.CharacterID}); charErr != nil {
			slog.ErrorContext(ctx, "failed to load character for settlement",
				"battle_id", battle.ID,
				"character_id", battle.CharacterID,
				"error", charErr.Error())
			if o.metrics != nil {
				o.metrics.SettlementFailures.Inc()
			}
		} else {
			o.settle(ctx, battle, charOut.Character.WalletAddress)
		}
	}

	out := &SubmitTurnOutput{
		State:          state,
		CharacterEntry: charEntry,
		EnemyEntry:     enemyEntry,
		Ended:          ended,
		Result:         battle.Result,
	}
	if ended {
		out.ExperienceGained = battle.ExperienceGained
		out.TokensEarned = battle.TokensEarned
	}
	return out, nil
}

// GetBattle reads a battle and attaches a best-effort character summary.
func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	getOut, err := o.battleRepo.Get(ctx, battlerepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	out := &GetBattleOutput{Battle: getOut.Battle}

	charOut, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: getOut.Battle.CharacterID})
	if err != nil {
		slog.WarnContext(ctx, "battle references missing character",
			"battle_id", input.ID,
			"character_id", getOut.Battle.CharacterID)
		return out, nil
	}

	summary := charOut.Character.Summary()
	out.Character = &summary
	return out, nil
}

// complete marks the battle terminal and assigns rewards: the template's
// rewards on victory, a small consolation on defeat.
func (o *orchestrator) complete(battle *entities.Battle, result entities.BattleResult, template *entities.EnemyTemplate, completedAt time.Time) {
	battle.Result = result
	battle.CompletedAt = &completedAt

	if result == entities.ResultVictory {
		battle.ExperienceGained = template.ExperienceReward
		battle.TokensEarned = template.TokenReward
	} else {
		battle.ExperienceGained = consolationExperience
		battle.TokensEarned = consolationTokens
	}

	if o.metrics != nil {
		o.metrics.BattlesCompleted.WithLabelValues(string(result)).Inc()
	}
}

// settle pushes the persisted outcome to the chain gateway. Settlement is
// best-effort: the battle record is already the source of truth, so a
// gateway failure is logged and counted but never surfaced to the caller.
func (o *orchestrator) settle(ctx context.Context, battle *entities.Battle, walletAddress string) {
	out, err := o.chainClient.CompleteBattle(ctx, &chain.CompleteBattleInput{
		WalletAddress: walletAddress,
		BattleID:      battle.ID,
		Victory:       battle.Result == entities.ResultVictory,
	})
	if err != nil {
		slog.ErrorContext(ctx, "battle settlement failed",
			"battle_id", battle.ID,
			"wallet_address", walletAddress,
			"error", err.Error())
		if o.metrics != nil {
			o.metrics.SettlementFailures.Inc()
		}
		return
	}

	slog.InfoContext(ctx, "battle settled",
		"battle_id", battle.ID,
		"result", battle.Result,
		"transaction_ref", out.TransactionRef)
}
