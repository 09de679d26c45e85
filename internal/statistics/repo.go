package statistics

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
)

var ErrStatsNotFound = errors.New("user statistics not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *UserStatistics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var stats UserStatistics
	err = r.db.QueryRow(
		ctx,
		`SELECT
				user_id, total_weight_lifted, total_workouts,
				current_streak, longest_streak, weekend_workout_streak,
				last_workout_date, earliest_workout_time, latest_workout_time,
				last_complete_weekend_date, last_inactive_date,
				worked_out_jan_1, updated_at
			FROM user_statistics
			WHERE user_id = $1;`,
		userID,
	).Scan(
		&stats.UserID, &stats.TotalWeightLifted, &stats.TotalWorkouts,
		&stats.CurrentStreak, &stats.LongestStreak, &stats.WeekendWorkoutStreak,
		&stats.LastWorkoutDate, &stats.EarliestWorkoutTime, &stats.LatestWorkoutTime,
		&stats.LastCompleteWeekendDate, &stats.LastInactiveDate,
		&stats.WorkedOutJan1, &stats.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStatsNotFound
	}
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// Save upserts the snapshot, one row per user, last write wins
func (r *Repo) Save(ctx context.Context, stats *UserStatistics) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", stats.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_statistics
				(user_id, total_weight_lifted, total_workouts,
				current_streak, longest_streak, weekend_workout_streak,
				last_workout_date, earliest_workout_time, latest_workout_time,
				last_complete_weekend_date, last_inactive_date,
				worked_out_jan_1, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (user_id) DO UPDATE SET
				total_weight_lifted = EXCLUDED.total_weight_lifted,
				total_workouts = EXCLUDED.total_workouts,
				current_streak = EXCLUDED.current_streak,
				longest_streak = EXCLUDED.longest_streak,
				weekend_workout_streak = EXCLUDED.weekend_workout_streak,
				last_workout_date = EXCLUDED.last_workout_date,
				earliest_workout_time = EXCLUDED.earliest_workout_time,
				latest_workout_time = EXCLUDED.latest_workout_time,
				last_complete_weekend_date = EXCLUDED.last_complete_weekend_date,
				last_inactive_date = EXCLUDED.last_inactive_date,
				worked_out_jan_1 = EXCLUDED.worked_out_jan_1,
				updated_at = EXCLUDED.updated_at;`,
		stats.UserID, stats.TotalWeightLifted, stats.TotalWorkouts,
		stats.CurrentStreak, stats.LongestStreak, stats.WeekendWorkoutStreak,
		stats.LastWorkoutDate, stats.EarliestWorkoutTime, stats.LatestWorkoutTime,
		stats.LastCompleteWeekendDate, stats.LastInactiveDate,
		stats.WorkedOutJan1, stats.UpdatedAt,
	)
	return err
}

func (r *Repo) Delete(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.statistics.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM user_statistics WHERE user_id = $1;`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStatsNotFound
	}
	return nil
}
