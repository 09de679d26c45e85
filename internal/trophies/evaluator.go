package trophies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"

	"github.com/mvukovic/trophystats/internal/statistics"
	"github.com/mvukovic/trophystats/internal/telemetry/metrics"
	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
	"github.com/mvukovic/trophystats/internal/users"
	"github.com/mvukovic/trophystats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=evaluator_mocks_test.go -package=trophies

type trophiesRepo interface {
	ListTrophies(ctx context.Context, activeOnly bool) ([]Trophy, error)
	GetTrophy(ctx context.Context, id uuid.UUID) (*Trophy, error)
	GetUserTrophy(ctx context.Context, userID string, trophyID uuid.UUID) (*UserTrophy, error)
	ListUserTrophies(ctx context.Context, userID string) ([]UserTrophy, error)
	AwardTrophy(ctx context.Context, userTrophy UserTrophy) error
}

type statsProvider interface {
	Get(ctx context.Context, userID string) (*statistics.UserStatistics, error)
}

type profilesRepo interface {
	Get(ctx context.Context, userID string) (*users.Profile, error)
	ListActiveIDs(ctx context.Context, inactivityDays int) ([]string, error)
}

// EvaluatorConfig is the policy knobs of the trophy subsystem
type EvaluatorConfig struct {
	// TrophiesEnabled turns the whole subsystem off when false
	TrophiesEnabled bool
	// UserInactivityDays excludes users whose last login is older
	UserInactivityDays int
}

const defaultUserInactivityDays = 90

// Evaluator decides which trophies a user newly earned. Per (user, trophy)
// pair only one transition exists, unearned to earned, and it is terminal:
// awards are idempotent and never revoked.
type Evaluator struct {
	trophies trophiesRepo
	stats    statsProvider
	profiles profilesRepo
	registry *Registry
	metrics  *metrics.Manager
	config   EvaluatorConfig

	now func() time.Time
}

func NewEvaluator(
	trophiesRepo trophiesRepo,
	statsProvider statsProvider,
	profilesRepo profilesRepo,
	registry *Registry,
	metricsManager *metrics.Manager,
	config EvaluatorConfig,
) *Evaluator {
	if config.UserInactivityDays <= 0 {
		config.UserInactivityDays = defaultUserInactivityDays
	}
	return &Evaluator{
		trophies: trophiesRepo,
		stats:    statsProvider,
		profiles: profilesRepo,
		registry: registry,
		metrics:  metricsManager,
		config:   config,
		now:      time.Now,
	}
}

// EvaluateTrophy checks a single trophy for a user and awards it when its
// condition is met. Returns nil (no error) when the trophy is inactive,
// already earned, its checker is unknown, or the condition is not met.
func (e *Evaluator) EvaluateTrophy(ctx context.Context, userID string, trophy Trophy) (_ *AwardResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trophies.evaluator.evaluateTrophy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("trophy.name", trophy.Name),
	)

	if !trophy.IsActive {
		return nil, nil
	}

	_, err = e.trophies.GetUserTrophy(ctx, userID, trophy.ID)
	if err == nil {
		// already earned, nothing to do
		return nil, nil
	}
	if !errors.Is(err, ErrUserTrophyNotFound) {
		return nil, fmt.Errorf("get user trophy: %w", err)
	}

	stats, err := e.statsOrZero(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !e.checkMet(userID, trophy, *stats) {
		return nil, nil
	}

	userTrophy := UserTrophy{
		UserID:   userID,
		TrophyID: trophy.ID,
		EarnedAt: e.now(),
		Progress: 100,
	}
	if err := e.trophies.AwardTrophy(ctx, userTrophy); err != nil {
		if pkg.IsUniqueViolationError(err) {
			// a concurrent evaluation got there first, same outcome
			return nil, nil
		}
		return nil, fmt.Errorf("award trophy: %w", err)
	}

	e.metrics.CounterTrophiesAwarded.Inc()
	log.Infof("user [%s] earned trophy [%s]", userID, trophy.Name)

	return &AwardResult{
		Trophy:     trophy,
		UserTrophy: userTrophy,
	}, nil
}

// checkMet resolves and runs the trophy's checker. Unknown checkers and
// checker failures, errors or panics alike, count as "not met" so one
// broken trophy can never take the evaluation run down.
func (e *Evaluator) checkMet(userID string, trophy Trophy, stats statistics.UserStatistics) (met bool) {
	checker, ok := e.registry.Get(trophy.CheckerName)
	if !ok {
		log.Warnf("trophy [%s]: checker [%s] not registered, skipping", trophy.Name, trophy.CheckerName)
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			e.metrics.CounterCheckerFailures.Inc()
			log.Errorf("trophy [%s] checker panic for user [%s]: %v", trophy.Name, userID, r)
			met = false
		}
	}()

	met, err := checker.Met(stats, trophy.CheckerParams)
	if err != nil {
		e.metrics.CounterCheckerFailures.Inc()
		log.Warnf("trophy [%s] checker failed for user [%s]: %s", trophy.Name, userID, err)
		return false
	}
	return met
}

// EvaluateAll runs every active, not yet earned trophy for one user and
// returns the newly earned ones. A skipped user gets an empty result and
// no side effects. Persistence failures of single trophies are collected,
// the rest of the run still happens.
func (e *Evaluator) EvaluateAll(ctx context.Context, userID string) (_ []AwardResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trophies.evaluator.evaluateAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	skip, err := e.ShouldSkipUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if skip {
		e.metrics.CounterEvaluationsSkipped.Inc()
		return nil, nil
	}

	trophies, err := e.trophies.ListTrophies(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list trophies: %w", err)
	}

	earned, err := e.earnedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var awards []AwardResult
	var evalErrs error
	for _, trophy := range trophies {
		if _, ok := earned[trophy.ID]; ok {
			continue
		}
		award, err := e.EvaluateTrophy(ctx, userID, trophy)
		if err != nil {
			evalErrs = multierr.Append(evalErrs, fmt.Errorf("trophy [%s]: %w", trophy.Name, err))
			continue
		}
		if award != nil {
			awards = append(awards, *award)
		}
	}

	return awards, evalErrs
}

// ProgressReport lists every active trophy with the user's standing:
// earned with a timestamp, or the fractional progress for progressive
// ones. Hidden trophies stay out of the list until earned, unless
// includeHidden is set (admin views).
func (e *Evaluator) ProgressReport(ctx context.Context, userID string, includeHidden bool) (_ []ProgressEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trophies.evaluator.progressReport")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	trophies, err := e.trophies.ListTrophies(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list trophies: %w", err)
	}

	userTrophies, err := e.trophies.ListUserTrophies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user trophies: %w", err)
	}
	earned := make(map[uuid.UUID]UserTrophy, len(userTrophies))
	for _, ut := range userTrophies {
		earned[ut.TrophyID] = ut
	}

	stats, err := e.statsOrZero(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]ProgressEntry, 0, len(trophies))
	for _, trophy := range trophies {
		userTrophy, isEarned := earned[trophy.ID]
		if trophy.IsHidden && !isEarned && !includeHidden {
			continue
		}

		entry := ProgressEntry{
			Trophy: trophy,
			Earned: isEarned,
		}
		if isEarned {
			earnedAt := userTrophy.EarnedAt
			entry.EarnedAt = &earnedAt
			entry.Progress = 100
		} else if trophy.IsProgressive {
			entry.Progress, entry.CurrentValue, entry.TargetValue =
				e.checkProgress(userID, trophy, *stats)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (e *Evaluator) checkProgress(
	userID string,
	trophy Trophy,
	stats statistics.UserStatistics,
) (progress, current, target float64) {
	checker, ok := e.registry.Get(trophy.CheckerName)
	if !ok {
		log.Warnf("trophy [%s]: checker [%s] not registered, zero progress", trophy.Name, trophy.CheckerName)
		return 0, 0, 0
	}
	progressive, ok := checker.(ProgressiveChecker)
	if !ok {
		log.Warnf("trophy [%s] marked progressive but checker [%s] reports no progress", trophy.Name, trophy.CheckerName)
		return 0, 0, 0
	}

	defer func() {
		if r := recover(); r != nil {
			e.metrics.CounterCheckerFailures.Inc()
			log.Errorf("trophy [%s] progress panic for user [%s]: %v", trophy.Name, userID, r)
			progress, current, target = 0, 0, 0
		}
	}()

	progress, err := progressive.Progress(stats, trophy.CheckerParams)
	if err != nil {
		e.metrics.CounterCheckerFailures.Inc()
		log.Warnf("trophy [%s] progress failed for user [%s]: %s", trophy.Name, userID, err)
		return 0, 0, 0
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return progress, progressive.CurrentValue(stats), progressive.TargetValue(trophy.CheckerParams)
}

// ShouldSkipUser is the policy gate in front of any evaluation: the
// subsystem can be globally off, the user can have opted out, or the
// user is long gone (no login within the inactivity window).
func (e *Evaluator) ShouldSkipUser(ctx context.Context, userID string) (bool, error) {
	if !e.config.TrophiesEnabled {
		return true, nil
	}

	profile, err := e.profiles.Get(ctx, userID)
	if errors.Is(err, users.ErrProfileNotFound) {
		log.Debugf("no profile for user [%s], skipping trophy evaluation", userID)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("get profile: %w", err)
	}

	if !profile.TrophiesEnabled {
		return true, nil
	}
	if profile.LastLogin != nil {
		inactiveSince := e.now().AddDate(0, 0, -e.config.UserInactivityDays)
		if profile.LastLogin.Before(inactiveSince) {
			return true, nil
		}
	}

	return false, nil
}

// Reevaluate is the administrative bulk rerun, e.g. after new trophies
// landed in the catalog or a checker got fixed. Nil id lists mean all:
// all active trophies, all non-skipped users. Award semantics stay
// idempotent, so rerunning over already earned pairs changes nothing.
func (e *Evaluator) Reevaluate(
	ctx context.Context,
	trophyIDs []uuid.UUID,
	userIDs []string,
) (_ *ReevaluateResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trophies.evaluator.reevaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	trophies, err := e.selectTrophies(ctx, trophyIDs)
	if err != nil {
		return nil, err
	}

	if len(userIDs) == 0 {
		userIDs, err = e.profiles.ListActiveIDs(ctx, e.config.UserInactivityDays)
		if err != nil {
			return nil, fmt.Errorf("list active users: %w", err)
		}
	}

	result := &ReevaluateResult{}
	var evalErrs error
	for _, userID := range userIDs {
		skip, err := e.ShouldSkipUser(ctx, userID)
		if err != nil {
			evalErrs = multierr.Append(evalErrs, fmt.Errorf("user [%s]: %w", userID, err))
			continue
		}
		if skip {
			e.metrics.CounterEvaluationsSkipped.Inc()
			continue
		}

		result.UsersChecked++
		for _, trophy := range trophies {
			award, err := e.EvaluateTrophy(ctx, userID, trophy)
			if err != nil {
				evalErrs = multierr.Append(evalErrs, fmt.Errorf("user [%s], trophy [%s]: %w", userID, trophy.Name, err))
				continue
			}
			if award != nil {
				result.TrophiesAwarded++
			}
		}
	}

	log.Infof(
		"trophies reevaluated: %d users checked, %d trophies awarded",
		result.UsersChecked, result.TrophiesAwarded,
	)

	return result, evalErrs
}

func (e *Evaluator) selectTrophies(ctx context.Context, trophyIDs []uuid.UUID) ([]Trophy, error) {
	if len(trophyIDs) == 0 {
		trophies, err := e.trophies.ListTrophies(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("list trophies: %w", err)
		}
		return trophies, nil
	}

	trophies := make([]Trophy, 0, len(trophyIDs))
	for _, id := range trophyIDs {
		trophy, err := e.trophies.GetTrophy(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get trophy [%s]: %w", id, err)
		}
		trophies = append(trophies, *trophy)
	}
	return trophies, nil
}

func (e *Evaluator) earnedSet(ctx context.Context, userID string) (map[uuid.UUID]struct{}, error) {
	userTrophies, err := e.trophies.ListUserTrophies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user trophies: %w", err)
	}
	earned := make(map[uuid.UUID]struct{}, len(userTrophies))
	for _, ut := range userTrophies {
		earned[ut.TrophyID] = struct{}{}
	}
	return earned, nil
}

// statsOrZero treats a user without a snapshot as one with empty history
func (e *Evaluator) statsOrZero(ctx context.Context, userID string) (*statistics.UserStatistics, error) {
	stats, err := e.stats.Get(ctx, userID)
	if errors.Is(err, statistics.ErrStatsNotFound) {
		return &statistics.UserStatistics{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}
