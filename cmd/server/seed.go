package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/aetherium/battle-api/internal/entities"
	"github.com/aetherium/battle-api/internal/errors"
	redisclient "github.com/aetherium/battle-api/internal/redis"
	characterrepo "github.com/aetherium/battle-api/internal/repositories/character"
)

var seedRedisAddr string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo characters",
	Long:  `Seed the store with demo characters for local development.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedRedisAddr, "redis-addr", "localhost:6379", "Redis address")
}

func runSeed(cmd *cobra.Command, args []string) error {
	redisClient, err := redisclient.NewClient(seedRedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}

	now := time.Now().UTC()
	demos := []*entities.Character{
		{
			ID:            "char_demo_warrior",
			WalletAddress: "0x0000000000000000000000000000000000000001",
			Name:          "Borin",
			Class:         entities.ClassWarrior,
			Level:         3,
			Attributes:    entities.Attributes{Strength: 14, Vitality: 12, Intelligence: 6, Dexterity: 8},
			CreatedAt:     now,
		},
		{
			ID:            "char_demo_mage",
			WalletAddress: "0x0000000000000000000000000000000000000002",
			Name:          "Lyra",
			Class:         entities.ClassMage,
			Level:         3,
			Attributes:    entities.Attributes{Strength: 5, Vitality: 8, Intelligence: 16, Dexterity: 9},
			CreatedAt:     now,
		},
		{
			ID:            "char_demo_rogue",
			WalletAddress: "0x0000000000000000000000000000000000000003",
			Name:          "Vex",
			Class:         entities.ClassRogue,
			Level:         2,
			Attributes:    entities.Attributes{Strength: 9, Vitality: 9, Intelligence: 8, Dexterity: 15},
			CreatedAt:     now,
		},
	}

	ctx := context.Background()
	for _, char := range demos {
		if _, err := repo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
			if errors.IsAlreadyExists(err) {
				slog.Info("character already seeded", "character_id", char.ID)
				continue
			}
			return fmt.Errorf("failed to seed character %s: %w", char.ID, err)
		}
		slog.Info("character seeded", "character_id", char.ID, "name", char.Name)
	}

	return nil
}
