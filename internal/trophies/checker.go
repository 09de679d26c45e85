package trophies

import (
	"fmt"
	"sort"

	"github.com/mvukovic/trophystats/internal/statistics"
)

// Checker decides whether a trophy condition is met for a given
// statistics snapshot. Checkers are pure: no persistence, no side
// effects, so a broken one can be safely caught and skipped.
type Checker interface {
	Met(stats statistics.UserStatistics, params CheckerParams) (bool, error)
}

// ProgressiveChecker additionally reports how far along a user is,
// for trophies shown with a progress bar
type ProgressiveChecker interface {
	Checker
	Progress(stats statistics.UserStatistics, params CheckerParams) (float64, error)
	CurrentValue(stats statistics.UserStatistics) float64
	TargetValue(params CheckerParams) float64
}

// Registry maps checker names to their implementations. The set of
// checkers is closed and known upfront, the catalog only selects by name.
type Registry struct {
	checkers map[string]Checker
}

func NewRegistry() *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
	}
}

func (r *Registry) Register(name string, checker Checker) {
	r.checkers[name] = checker
}

func (r *Registry) Get(name string) (Checker, bool) {
	checker, ok := r.checkers[name]
	return checker, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	CheckerWorkoutCount  = "workout_count"
	CheckerTotalVolume   = "total_volume"
	CheckerStreak        = "streak"
	CheckerWeekendStreak = "weekend_streak"
	CheckerEarlyBird     = "early_bird"
	CheckerNightOwl      = "night_owl"
	CheckerNewYear       = "new_year"
	CheckerComeback      = "comeback"
)

// DefaultRegistry returns a registry with all built-in checkers
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(CheckerWorkoutCount, &WorkoutCountChecker{})
	r.Register(CheckerTotalVolume, &TotalVolumeChecker{})
	r.Register(CheckerStreak, &StreakChecker{})
	r.Register(CheckerWeekendStreak, &WeekendStreakChecker{})
	r.Register(CheckerEarlyBird, &EarlyBirdChecker{})
	r.Register(CheckerNightOwl, &NightOwlChecker{})
	r.Register(CheckerNewYear, &NewYearChecker{})
	r.Register(CheckerComeback, &ComebackChecker{})
	return r
}

func (p CheckerParams) get(key string) (float64, error) {
	val, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("checker param %q missing", key)
	}
	return val, nil
}

// progressOf turns current/target into a percentage clamped to [0, 100]
func progressOf(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	progress := current / target * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
