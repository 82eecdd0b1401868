// Package battle provides the interface for battle aggregate persistence
package battle

//go:generate mockgen -destination=mock/mock_repository.go -package=battlerepomock github.com/aetherium/battle-api/internal/repositories/battle Repository

import (
	"context"

	"github.com/aetherium/battle-api/internal/entities"
)

// Repository defines the interface for battle persistence. A battle is
// stored as a whole aggregate; there is no partial update. Between calls the
// battle exists only as data, which is what lets the orchestrator stay
// stateless.
type Repository interface {
	// Create persists a new battle and, while it is ongoing, registers it as
	// the character's active battle.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a battle with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a battle by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the battle doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the stored aggregate, conditional on the stored log
	// still having ExpectedLogLength entries. This is the optimistic check
	// that makes concurrent turn submissions safe: the loser of a race gets
	// errors.Aborted and no write happens.
	// Returns errors.NotFound if the battle doesn't exist
	// Returns errors.Aborted if the stored log length differs
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// GetOngoingByCharacter returns the ID of the character's ongoing battle.
	// Returns errors.NotFound if the character has none
	GetOngoingByCharacter(ctx context.Context, input GetOngoingByCharacterInput) (*GetOngoingByCharacterOutput, error)
}

// CreateInput defines the input for creating a battle
type CreateInput struct {
	Battle *entities.Battle
}

// CreateOutput defines the output for creating a battle
type CreateOutput struct {
	Battle *entities.Battle
}

// GetInput defines the input for getting a battle
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a battle
type GetOutput struct {
	Battle *entities.Battle
}

// UpdateInput defines the input for updating a battle
type UpdateInput struct {
	Battle *entities.Battle

	// ExpectedLogLength is the log length the caller read before computing
	// the update.
	ExpectedLogLength int
}

// UpdateOutput defines the output for updating a battle
type UpdateOutput struct {
	Battle *entities.Battle
}

// GetOngoingByCharacterInput defines the input for the ongoing-battle lookup
type GetOngoingByCharacterInput struct {
	CharacterID string
}

// GetOngoingByCharacterOutput defines the output for the ongoing-battle lookup
type GetOngoingByCharacterOutput struct {
	BattleID string
}
