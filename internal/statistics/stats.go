package statistics

import (
	"sort"
	"time"

	"github.com/mvukovic/trophystats/internal/workouts"
)

const lbToKg = 0.45359237

// UserStatistics is the per-user snapshot derived from the full workout
// history. All weights are normalized to kilograms.
type UserStatistics struct {
	UserID                  string     `json:"userId"`
	TotalWeightLifted       float64    `json:"totalWeightLifted"`
	TotalWorkouts           int        `json:"totalWorkouts"`
	CurrentStreak           int        `json:"currentStreak"`
	LongestStreak           int        `json:"longestStreak"`
	WeekendWorkoutStreak    int        `json:"weekendWorkoutStreak"`
	LastWorkoutDate         *time.Time `json:"lastWorkoutDate,omitempty"`
	EarliestWorkoutTime     *time.Time `json:"earliestWorkoutTime,omitempty"`
	LatestWorkoutTime       *time.Time `json:"latestWorkoutTime,omitempty"`
	LastCompleteWeekendDate *time.Time `json:"lastCompleteWeekendDate,omitempty"`
	LastInactiveDate        *time.Time `json:"lastInactiveDate,omitempty"`
	WorkedOutJan1           bool       `json:"workedOutJan1"`
	UpdatedAt               time.Time  `json:"updatedAt"`
}

// NormalizeToKg converts a set weight to kilograms.
// Unknown units and non-positive weights contribute zero.
func NormalizeToKg(weight float64, unit workouts.WeightUnit) float64 {
	if weight <= 0 {
		return 0
	}
	switch unit {
	case workouts.WeightUnitKg:
		return weight
	case workouts.WeightUnitLb:
		return weight * lbToKg
	default:
		return 0
	}
}

// dateOnly drops the clock part, keeping just the calendar day (UTC)
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// clockOnly drops the calendar part, keeping just the time of day
func clockOnly(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)).Hours() / 24)
}

// workoutDates collects the distinct workout days, ascending
func workoutDates(sessions []workouts.Session, sets []workouts.Set) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, s := range sessions {
		if s.Date.IsZero() {
			continue
		}
		seen[dateOnly(s.Date)] = struct{}{}
	}
	for _, s := range sets {
		if s.CreatedAt.IsZero() {
			continue
		}
		seen[dateOnly(s.CreatedAt)] = struct{}{}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// calcStreaks returns the longest run of consecutive workout days, plus the
// trailing run as the current streak, if it is still live. A streak is live
// when its last day is today or yesterday.
func calcStreaks(dates []time.Time, today time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	lastDay := dates[len(dates)-1]
	if daysBetween(lastDay, today) <= 1 {
		current = run
	}
	return current, longest
}

// calcWeekendStreak walks the complete weekends (a Saturday and its Sunday
// both worked out) and counts how many of them are exactly a week apart,
// ending with the most recent one. The streak counts as zero when the last
// complete weekend is older than staleAfterDays, measured against the most
// recent Saturday before (or on) today. The last complete weekend's Saturday
// is returned regardless of staleness.
func calcWeekendStreak(dates []time.Time, today time.Time, staleAfterDays int) (streak int, lastSaturday *time.Time) {
	dateSet := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		dateSet[d] = struct{}{}
	}

	var saturdays []time.Time
	for _, d := range dates {
		if d.Weekday() != time.Saturday {
			continue
		}
		if _, ok := dateSet[d.AddDate(0, 0, 1)]; ok {
			saturdays = append(saturdays, d)
		}
	}
	if len(saturdays) == 0 {
		return 0, nil
	}

	streak = 1
	for i := 1; i < len(saturdays); i++ {
		if daysBetween(saturdays[i-1], saturdays[i]) == 7 {
			streak++
		} else {
			streak = 1
		}
	}

	last := saturdays[len(saturdays)-1]
	lastSaturday = &last

	recentSaturday := mostRecentSaturday(today)
	if daysBetween(last, recentSaturday) > staleAfterDays {
		streak = 0
	}
	return streak, lastSaturday
}

func mostRecentSaturday(today time.Time) time.Time {
	day := dateOnly(today)
	daysSince := int(day.Weekday()-time.Saturday+7) % 7
	return day.AddDate(0, 0, -daysSince)
}

// lastInactiveDate returns the workout day right before the most recent
// gap of gapDays or more days between two consecutive workout days
func lastInactiveDate(dates []time.Time, gapDays int) *time.Time {
	var inactive *time.Time
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) >= gapDays {
			d := dates[i-1]
			inactive = &d
		}
	}
	return inactive
}

func workedOutJan1(dates []time.Time) bool {
	for _, d := range dates {
		if d.Month() == time.January && d.Day() == 1 {
			return true
		}
	}
	return false
}
