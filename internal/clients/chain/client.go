// Package chain wraps the blockchain gateway the battle core delegates
// cooldown checks and reward settlement to. Contracts, minting, and wallet
// management live behind the gateway; this service only speaks JSON over
// HTTP to it.
package chain

//go:generate mockgen -destination=mock/mock_client.go -package=chainmock github.com/aetherium/battle-api/internal/clients/chain Client

import "context"

// Client is the collaborator interface the orchestrator consumes.
type Client interface {
	// CanBattle reports whether the wallet's combat cooldown has elapsed.
	CanBattle(ctx context.Context, walletAddress string) (bool, error)

	// CompleteBattle settles the battle reward on-chain. Keyed by battle ID
	// so the gateway can deduplicate retries; settlement is best-effort and
	// must never influence the persisted battle result.
	CompleteBattle(ctx context.Context, input *CompleteBattleInput) (*CompleteBattleOutput, error)
}

// CompleteBattleInput defines the input for settling a battle reward
type CompleteBattleInput struct {
	WalletAddress string `json:"walletAddress"`
	BattleID      string `json:"battleId"`
	Victory       bool   `json:"victory"`
}

// CompleteBattleOutput defines the output for settling a battle reward
type CompleteBattleOutput struct {
	TransactionRef string `json:"transactionRef"`
}
