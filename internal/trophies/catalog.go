package trophies

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

type catalogFile struct {
	Trophies []catalogEntry `toml:"trophy"`
}

type catalogEntry struct {
	Name          string             `toml:"name"`
	Description   string             `toml:"description"`
	Type          string             `toml:"type"`
	Checker       string             `toml:"checker"`
	CheckerParams map[string]float64 `toml:"checker_params"`
	IsActive      bool               `toml:"is_active"`
	IsHidden      bool               `toml:"is_hidden"`
	IsProgressive bool               `toml:"is_progressive"`
	DisplayOrder  int                `toml:"display_order"`
}

// LoadCatalog reads trophy definitions from a TOML file
func LoadCatalog(path string) ([]Trophy, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	trophies := make([]Trophy, 0, len(file.Trophies))
	for _, entry := range file.Trophies {
		if entry.Name == "" || entry.Checker == "" {
			return nil, fmt.Errorf("catalog entry [%s] missing name or checker", entry.Name)
		}
		trophies = append(trophies, Trophy{
			Name:          entry.Name,
			Description:   entry.Description,
			Type:          TrophyType(entry.Type),
			CheckerName:   entry.Checker,
			CheckerParams: entry.CheckerParams,
			IsActive:      entry.IsActive,
			IsHidden:      entry.IsHidden,
			IsProgressive: entry.IsProgressive,
			DisplayOrder:  entry.DisplayOrder,
		})
	}
	return trophies, nil
}

// DefaultCatalog is the built-in trophy set, used when no catalog file
// is configured
func DefaultCatalog() []Trophy {
	return []Trophy{
		{
			Name:          "First Workout",
			Description:   "Log your first workout",
			Type:          TrophyTypeCount,
			CheckerName:   CheckerWorkoutCount,
			CheckerParams: CheckerParams{"count": 1},
			IsActive:      true,
			DisplayOrder:  1,
		},
		{
			Name:          "Regular",
			Description:   "Log 50 workouts",
			Type:          TrophyTypeCount,
			CheckerName:   CheckerWorkoutCount,
			CheckerParams: CheckerParams{"count": 50},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  2,
		},
		{
			Name:          "Centurion",
			Description:   "Log 100 workouts",
			Type:          TrophyTypeCount,
			CheckerName:   CheckerWorkoutCount,
			CheckerParams: CheckerParams{"count": 100},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  3,
		},
		{
			Name:          "Lifter",
			Description:   "Lift a total of 5000 kg",
			Type:          TrophyTypeVolume,
			CheckerName:   CheckerTotalVolume,
			CheckerParams: CheckerParams{"kg": 5000},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  4,
		},
		{
			Name:          "Heavy Lifter",
			Description:   "Lift a total of 100000 kg",
			Type:          TrophyTypeVolume,
			CheckerName:   CheckerTotalVolume,
			CheckerParams: CheckerParams{"kg": 100000},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  5,
		},
		{
			Name:          "One Week Streak",
			Description:   "Work out 7 days in a row",
			Type:          TrophyTypeSequence,
			CheckerName:   CheckerStreak,
			CheckerParams: CheckerParams{"days": 7},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  6,
		},
		{
			Name:          "Iron Month",
			Description:   "Work out 30 days in a row",
			Type:          TrophyTypeSequence,
			CheckerName:   CheckerStreak,
			CheckerParams: CheckerParams{"days": 30},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  7,
		},
		{
			Name:          "Weekend Warrior",
			Description:   "Complete 4 weekends in a row",
			Type:          TrophyTypeSequence,
			CheckerName:   CheckerWeekendStreak,
			CheckerParams: CheckerParams{"weekends": 4},
			IsActive:      true,
			IsProgressive: true,
			DisplayOrder:  8,
		},
		{
			Name:          "Early Bird",
			Description:   "Start a workout before 7 in the morning",
			Type:          TrophyTypeTime,
			CheckerName:   CheckerEarlyBird,
			CheckerParams: CheckerParams{"hour": 7},
			IsActive:      true,
			DisplayOrder:  9,
		},
		{
			Name:          "Night Owl",
			Description:   "Train at 23h or later",
			Type:          TrophyTypeTime,
			CheckerName:   CheckerNightOwl,
			CheckerParams: CheckerParams{"hour": 23},
			IsActive:      true,
			IsHidden:      true,
			DisplayOrder:  10,
		},
		{
			Name:         "New Year, New Me",
			Description:  "Work out on the 1st of january",
			Type:         TrophyTypeDate,
			CheckerName:  CheckerNewYear,
			IsActive:     true,
			IsHidden:     true,
			DisplayOrder: 11,
		},
		{
			Name:          "Comeback",
			Description:   "Return after a month off and train 3 days in a row",
			Type:          TrophyTypeOther,
			CheckerName:   CheckerComeback,
			CheckerParams: CheckerParams{"days": 3},
			IsActive:      true,
			IsHidden:      true,
			DisplayOrder:  12,
		},
	}
}

type trophyUpserter interface {
	UpsertTrophy(ctx context.Context, trophy Trophy) (*Trophy, error)
}

// SyncCatalog upserts the given trophies by name and warns about entries
// whose checker is not registered, those will be skipped at evaluation
// time. Returns the number of synced trophies.
func SyncCatalog(ctx context.Context, repo trophyUpserter, registry *Registry, catalog []Trophy) (int, error) {
	synced := 0
	for _, trophy := range catalog {
		if _, ok := registry.Get(trophy.CheckerName); !ok {
			log.Warnf("catalog trophy [%s]: checker [%s] not registered", trophy.Name, trophy.CheckerName)
		}
		if _, err := repo.UpsertTrophy(ctx, trophy); err != nil {
			return synced, fmt.Errorf("upsert trophy [%s]: %w", trophy.Name, err)
		}
		synced++
	}
	return synced, nil
}
