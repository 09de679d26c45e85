package trophies

import (
	"github.com/mvukovic/trophystats/internal/statistics"
)

// WorkoutCountChecker is met once the user logged at least
// params["count"] workout sessions
type WorkoutCountChecker struct{}

func (c *WorkoutCountChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	count, err := params.get("count")
	if err != nil {
		return false, err
	}
	return float64(stats.TotalWorkouts) >= count, nil
}

func (c *WorkoutCountChecker) Progress(stats statistics.UserStatistics, params CheckerParams) (float64, error) {
	count, err := params.get("count")
	if err != nil {
		return 0, err
	}
	return progressOf(float64(stats.TotalWorkouts), count), nil
}

func (c *WorkoutCountChecker) CurrentValue(stats statistics.UserStatistics) float64 {
	return float64(stats.TotalWorkouts)
}

func (c *WorkoutCountChecker) TargetValue(params CheckerParams) float64 {
	return params["count"]
}

// TotalVolumeChecker is met once the total lifted weight reaches
// params["kg"] kilograms
type TotalVolumeChecker struct{}

func (c *TotalVolumeChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	kg, err := params.get("kg")
	if err != nil {
		return false, err
	}
	return stats.TotalWeightLifted >= kg, nil
}

func (c *TotalVolumeChecker) Progress(stats statistics.UserStatistics, params CheckerParams) (float64, error) {
	kg, err := params.get("kg")
	if err != nil {
		return 0, err
	}
	return progressOf(stats.TotalWeightLifted, kg), nil
}

func (c *TotalVolumeChecker) CurrentValue(stats statistics.UserStatistics) float64 {
	return stats.TotalWeightLifted
}

func (c *TotalVolumeChecker) TargetValue(params CheckerParams) float64 {
	return params["kg"]
}

// StreakChecker is met once the longest workout streak reaches
// params["days"] consecutive days
type StreakChecker struct{}

func (c *StreakChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	days, err := params.get("days")
	if err != nil {
		return false, err
	}
	return float64(stats.LongestStreak) >= days, nil
}

func (c *StreakChecker) Progress(stats statistics.UserStatistics, params CheckerParams) (float64, error) {
	days, err := params.get("days")
	if err != nil {
		return 0, err
	}
	return progressOf(float64(stats.LongestStreak), days), nil
}

func (c *StreakChecker) CurrentValue(stats statistics.UserStatistics) float64 {
	return float64(stats.LongestStreak)
}

func (c *StreakChecker) TargetValue(params CheckerParams) float64 {
	return params["days"]
}

// WeekendStreakChecker is met once params["weekends"] complete
// weekends in a row were worked out
type WeekendStreakChecker struct{}

func (c *WeekendStreakChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	weekends, err := params.get("weekends")
	if err != nil {
		return false, err
	}
	return float64(stats.WeekendWorkoutStreak) >= weekends, nil
}

func (c *WeekendStreakChecker) Progress(stats statistics.UserStatistics, params CheckerParams) (float64, error) {
	weekends, err := params.get("weekends")
	if err != nil {
		return 0, err
	}
	return progressOf(float64(stats.WeekendWorkoutStreak), weekends), nil
}

func (c *WeekendStreakChecker) CurrentValue(stats statistics.UserStatistics) float64 {
	return float64(stats.WeekendWorkoutStreak)
}

func (c *WeekendStreakChecker) TargetValue(params CheckerParams) float64 {
	return params["weekends"]
}

// EarlyBirdChecker is met when a workout started before params["hour"]
type EarlyBirdChecker struct{}

func (c *EarlyBirdChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	hour, err := params.get("hour")
	if err != nil {
		return false, err
	}
	if stats.EarliestWorkoutTime == nil {
		return false, nil
	}
	return float64(stats.EarliestWorkoutTime.Hour()) < hour, nil
}

// NightOwlChecker is met when a workout ran at params["hour"] or later
type NightOwlChecker struct{}

func (c *NightOwlChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	hour, err := params.get("hour")
	if err != nil {
		return false, err
	}
	if stats.LatestWorkoutTime == nil {
		return false, nil
	}
	return float64(stats.LatestWorkoutTime.Hour()) >= hour, nil
}

// NewYearChecker is met when the user worked out on any 1st of january
type NewYearChecker struct{}

func (c *NewYearChecker) Met(stats statistics.UserStatistics, _ CheckerParams) (bool, error) {
	return stats.WorkedOutJan1, nil
}

// ComebackChecker is met when the user got back to training after a long
// break: an inactivity gap on record and a live streak of at least
// params["days"] days since
type ComebackChecker struct{}

func (c *ComebackChecker) Met(stats statistics.UserStatistics, params CheckerParams) (bool, error) {
	days, err := params.get("days")
	if err != nil {
		return false, err
	}
	if stats.LastInactiveDate == nil {
		return false, nil
	}
	return float64(stats.CurrentStreak) >= days, nil
}
