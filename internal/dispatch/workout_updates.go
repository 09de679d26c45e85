package dispatch

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trophystats/internal/statistics"
	"github.com/mvukovic/trophystats/internal/trophies"
	"github.com/mvukovic/trophystats/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=workout_updates_mocks_test.go -package=dispatch

type aggregator interface {
	Increment(ctx context.Context, userID string, event workouts.Event) (*statistics.UserStatistics, error)
	FullRecompute(ctx context.Context, userID string) (*statistics.UserStatistics, error)
	HandleDeletion(ctx context.Context, userID string) (*statistics.UserStatistics, error)
}

type evaluator interface {
	EvaluateAll(ctx context.Context, userID string) ([]trophies.AwardResult, error)
}

const defaultJobTimeout = 30 * time.Second

// WorkoutUpdates reacts to workout mutations: refresh the user's
// statistics snapshot, then re-check their trophies. The work is
// detached from the originating request, so a slow recompute never
// holds up the workout write.
type WorkoutUpdates struct {
	dispatcher *Dispatcher
	aggregator aggregator
	evaluator  evaluator
	timeout    time.Duration
}

func NewWorkoutUpdates(dispatcher *Dispatcher, agg aggregator, eval evaluator) *WorkoutUpdates {
	return &WorkoutUpdates{
		dispatcher: dispatcher,
		aggregator: agg,
		evaluator:  eval,
		timeout:    defaultJobTimeout,
	}
}

func (u *WorkoutUpdates) WorkoutEventCreated(ctx context.Context, event workouts.Event) {
	userID := event.UserID
	u.dispatcher.Dispatch(ctx, func(context.Context) {
		jobCtx, cancel := context.WithTimeout(context.Background(), u.timeout)
		defer cancel()
		if _, err := u.aggregator.Increment(jobCtx, userID, event); err != nil {
			log.Errorf("update stats for user [%s]: %s", userID, err)
			return
		}
		u.evaluate(jobCtx, userID)
	})
}

func (u *WorkoutUpdates) WorkoutEventUpdated(ctx context.Context, event workouts.Event) {
	userID := event.UserID
	u.dispatcher.Dispatch(ctx, func(context.Context) {
		jobCtx, cancel := context.WithTimeout(context.Background(), u.timeout)
		defer cancel()
		// an edit can change dates and weights arbitrarily, incremental
		// bookkeeping cannot catch up, so rebuild from history
		if _, err := u.aggregator.FullRecompute(jobCtx, userID); err != nil {
			log.Errorf("recompute stats for user [%s]: %s", userID, err)
			return
		}
		u.evaluate(jobCtx, userID)
	})
}

func (u *WorkoutUpdates) WorkoutEventDeleted(ctx context.Context, userID string) {
	u.dispatcher.Dispatch(ctx, func(context.Context) {
		jobCtx, cancel := context.WithTimeout(context.Background(), u.timeout)
		defer cancel()
		if _, err := u.aggregator.HandleDeletion(jobCtx, userID); err != nil {
			log.Errorf("recompute stats after deletion for user [%s]: %s", userID, err)
			return
		}
		u.evaluate(jobCtx, userID)
	})
}

func (u *WorkoutUpdates) evaluate(ctx context.Context, userID string) {
	awards, err := u.evaluator.EvaluateAll(ctx, userID)
	if err != nil {
		log.Warnf("evaluate trophies for user [%s]: %s", userID, err)
	}
	if len(awards) > 0 {
		log.Debugf("user [%s] earned %d new trophies", userID, len(awards))
	}
}
