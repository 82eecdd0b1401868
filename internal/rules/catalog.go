package rules

import (
	"github.com/aetherium/battle-api/internal/entities"
	"github.com/aetherium/battle-api/internal/errors"
)

// Catalog is the read-only table of enemy templates, keyed by type. It is
// built once at startup and injected wherever enemies are looked up; nothing
// mutates it afterwards.
type Catalog struct {
	templates map[entities.EnemyType]entities.EnemyTemplate
}

// NewCatalog builds the standard four-tier enemy catalog.
func NewCatalog() *Catalog {
	templates := map[entities.EnemyType]entities.EnemyTemplate{
		entities.EnemyGoblin: {
			Type:  entities.EnemyGoblin,
			Name:  "Goblin",
			Level: 1,
			Stats: entities.CombatStats{
				MaxHP: 30, MaxMP: 10, Attack: 8, Defense: 3, Speed: 12,
			},
			ExperienceReward: 25,
			TokenReward:      50,
		},
		entities.EnemyOrc: {
			Type:  entities.EnemyOrc,
			Name:  "Orc Warrior",
			Level: 3,
			Stats: entities.CombatStats{
				MaxHP: 60, MaxMP: 5, Attack: 15, Defense: 8, Speed: 6,
			},
			ExperienceReward: 75,
			TokenReward:      150,
		},
		entities.EnemySkeleton: {
			Type:  entities.EnemySkeleton,
			Name:  "Skeleton Mage",
			Level: 4,
			Stats: entities.CombatStats{
				MaxHP: 45, MaxMP: 40, Attack: 10, Defense: 5, Speed: 8,
			},
			ExperienceReward: 100,
			TokenReward:      200,
		},
		entities.EnemyDragon: {
			Type:  entities.EnemyDragon,
			Name:  "Young Dragon",
			Level: 10,
			Stats: entities.CombatStats{
				MaxHP: 200, MaxMP: 80, Attack: 35, Defense: 20, Speed: 15,
			},
			ExperienceReward: 500,
			TokenReward:      1000,
		},
	}

	return &Catalog{templates: templates}
}

// Lookup returns the template for an enemy type key.
// Returns errors.NotFound for keys outside the catalog.
func (c *Catalog) Lookup(enemyType entities.EnemyType) (entities.EnemyTemplate, error) {
	tpl, ok := c.templates[enemyType]
	if !ok {
		return entities.EnemyTemplate{}, errors.NotFoundf("unknown enemy type %q", enemyType)
	}
	return tpl, nil
}
