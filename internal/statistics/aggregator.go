package statistics

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mvukovic/trophystats/internal/telemetry/metrics"
	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
	"github.com/mvukovic/trophystats/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=statistics

type workoutsRepo interface {
	ListSessions(ctx context.Context, userID string) ([]workouts.Session, error)
	ListSets(ctx context.Context, userID string) ([]workouts.Set, error)
	CountSessions(ctx context.Context, userID string) (int, error)
}

type statsRepo interface {
	Get(ctx context.Context, userID string) (*UserStatistics, error)
	Save(ctx context.Context, stats *UserStatistics) error
}

// AggregatorConfig holds the thresholds of the streak and inactivity
// rules. Zero values are replaced with the defaults.
type AggregatorConfig struct {
	// WorkoutGapResetDays is the gap length that marks the user
	// as having been inactive before it
	WorkoutGapResetDays int
	// WeekendStaleAfterDays is how old the last complete weekend can get
	// before the weekend streak stops counting
	WeekendStaleAfterDays int
}

const (
	defaultWorkoutGapResetDays   = 30
	defaultWeekendStaleAfterDays = 7
)

// Aggregator derives UserStatistics snapshots from the workout history,
// by full scan or by cheap incremental adjustment after a single event.
type Aggregator struct {
	workouts workoutsRepo
	stats    statsRepo
	metrics  *metrics.Manager
	config   AggregatorConfig

	now func() time.Time
}

func NewAggregator(
	workoutsRepo workoutsRepo,
	statsRepo statsRepo,
	metricsManager *metrics.Manager,
	config AggregatorConfig,
) *Aggregator {
	if config.WorkoutGapResetDays <= 0 {
		config.WorkoutGapResetDays = defaultWorkoutGapResetDays
	}
	if config.WeekendStaleAfterDays <= 0 {
		config.WeekendStaleAfterDays = defaultWeekendStaleAfterDays
	}
	return &Aggregator{
		workouts: workoutsRepo,
		stats:    statsRepo,
		metrics:  metricsManager,
		config:   config,
		now:      time.Now,
	}
}

// FullRecompute rebuilds the user's statistics from the complete workout
// history and persists the snapshot, overwriting any prior one. A user
// with no history gets an all-zero snapshot, not an error.
func (a *Aggregator) FullRecompute(ctx context.Context, userID string) (_ *UserStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statistics.aggregator.fullRecompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	startedAt := a.now()

	sessions, err := a.workouts.ListSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sets, err := a.workouts.ListSets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	sessionsCount, err := a.workouts.CountSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	stats := a.compute(userID, sessions, sets, sessionsCount)

	if err := a.stats.Save(ctx, stats); err != nil {
		return nil, fmt.Errorf("save stats: %w", err)
	}

	a.metrics.CounterStatsRecomputes.Inc()
	a.metrics.HistRecomputeDuration.Observe(a.now().Sub(startedAt).Seconds())

	return stats, nil
}

func (a *Aggregator) compute(
	userID string,
	sessions []workouts.Session,
	sets []workouts.Set,
	sessionsCount int,
) *UserStatistics {
	now := a.now()
	stats := &UserStatistics{
		UserID:        userID,
		TotalWorkouts: sessionsCount,
		UpdatedAt:     now,
	}

	for _, s := range sets {
		if s.Reps <= 0 {
			continue
		}
		stats.TotalWeightLifted += NormalizeToKg(s.Weight, s.WeightUnit) * float64(s.Reps)
	}

	dates := workoutDates(sessions, sets)
	if len(dates) > 0 {
		last := dates[len(dates)-1]
		stats.LastWorkoutDate = &last
	}

	stats.CurrentStreak, stats.LongestStreak = calcStreaks(dates, now)
	stats.WeekendWorkoutStreak, stats.LastCompleteWeekendDate =
		calcWeekendStreak(dates, now, a.config.WeekendStaleAfterDays)
	stats.LastInactiveDate = lastInactiveDate(dates, a.config.WorkoutGapResetDays)
	stats.WorkedOutJan1 = workedOutJan1(dates)

	for _, s := range sessions {
		if s.TimeStart == nil {
			continue
		}
		stats.applyTimeOfDay(*s.TimeStart)
	}
	for _, s := range sets {
		if s.CreatedAt.IsZero() {
			continue
		}
		stats.applyTimeOfDay(s.CreatedAt)
	}

	return stats
}

// Increment applies a single new workout event to the existing snapshot,
// without rereading the history. Total workouts is always refreshed with
// a real count, so it cannot drift. A user without a snapshot yet falls
// back to a full recompute.
func (a *Aggregator) Increment(ctx context.Context, userID string, event workouts.Event) (_ *UserStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "statistics.aggregator.increment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	stats, err := a.stats.Get(ctx, userID)
	if errors.Is(err, ErrStatsNotFound) {
		return a.FullRecompute(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	if event.Set != nil && event.Set.Reps > 0 {
		stats.TotalWeightLifted += NormalizeToKg(event.Set.Weight, event.Set.WeightUnit) * float64(event.Set.Reps)
	}

	if eventDate := event.Date(); !eventDate.IsZero() {
		a.applyNewWorkoutDay(stats, dateOnly(eventDate))
	}

	if tod := event.TimeOfDay(); tod != nil {
		stats.applyTimeOfDay(*tod)
	}

	sessionsCount, err := a.workouts.CountSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}
	stats.TotalWorkouts = sessionsCount

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.UpdatedAt = a.now()

	if err := a.stats.Save(ctx, stats); err != nil {
		return nil, fmt.Errorf("save stats: %w", err)
	}

	a.metrics.CounterStatsIncrements.Inc()

	return stats, nil
}

func (a *Aggregator) applyNewWorkoutDay(stats *UserStatistics, day time.Time) {
	if stats.LastWorkoutDate == nil {
		stats.CurrentStreak = 1
		stats.LastWorkoutDate = &day
	} else if day.After(*stats.LastWorkoutDate) {
		gap := daysBetween(*stats.LastWorkoutDate, day)
		switch {
		case gap == 1:
			stats.CurrentStreak++
		case gap >= a.config.WorkoutGapResetDays:
			inactive := *stats.LastWorkoutDate
			stats.LastInactiveDate = &inactive
			stats.CurrentStreak = 1
		default:
			stats.CurrentStreak = 1
		}
		stats.LastWorkoutDate = &day
	}

	if day.Month() == time.January && day.Day() == 1 {
		stats.WorkedOutJan1 = true
	}

	a.applyWeekendDay(stats, day)
}

// applyWeekendDay closes a weekend when a Sunday workout lands right after
// a Saturday one. An update for any other day leaves the weekend streak alone.
func (a *Aggregator) applyWeekendDay(stats *UserStatistics, day time.Time) {
	if day.Weekday() != time.Sunday {
		return
	}
	saturday := day.AddDate(0, 0, -1)
	if stats.LastWorkoutDate == nil {
		return
	}
	// the Saturday before this Sunday must have been a workout day; after
	// applyNewWorkoutDay the last workout date is this Sunday, so the
	// streak tells us: a current streak of at least 2 means yesterday
	// (the Saturday) was worked out too
	if !dateOnly(*stats.LastWorkoutDate).Equal(day) || stats.CurrentStreak < 2 {
		return
	}

	if stats.LastCompleteWeekendDate != nil &&
		daysBetween(*stats.LastCompleteWeekendDate, saturday) == 7 {
		stats.WeekendWorkoutStreak++
	} else if stats.LastCompleteWeekendDate == nil || !stats.LastCompleteWeekendDate.Equal(saturday) {
		stats.WeekendWorkoutStreak = 1
	}
	stats.LastCompleteWeekendDate = &saturday
}

// HandleDeletion rebuilds the snapshot from scratch. Undoing an increment
// after a deleted session or set cannot be done safely, a deleted day can
// split a streak anywhere in the history.
func (a *Aggregator) HandleDeletion(ctx context.Context, userID string) (*UserStatistics, error) {
	log.Debugf("workout history of user [%s] changed, recomputing stats", userID)
	return a.FullRecompute(ctx, userID)
}

func (s *UserStatistics) applyTimeOfDay(t time.Time) {
	clock := clockOnly(t)
	if s.EarliestWorkoutTime == nil || clock.Before(*s.EarliestWorkoutTime) {
		s.EarliestWorkoutTime = &clock
	}
	if s.LatestWorkoutTime == nil || clock.After(*s.LatestWorkoutTime) {
		s.LatestWorkoutTime = &clock
	}
}
