package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvukovic/trophystats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrSetNotFound     = errors.New("workout set not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_session
				(user_id, workout_date, time_start, time_end)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		session.UserID, session.Date, session.TimeStart, session.TimeEnd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", id))

	session.ID = id
	return &session, nil
}

func (r *Repo) UpdateSession(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", session.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET workout_date = $1, time_start = $2, time_end = $3 WHERE id = $4 AND user_id = $5;`,
		session.Date, session.TimeStart, session.TimeEnd, session.ID, session.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) DeleteSession(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	// sets of the session go away too
	if _, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_set WHERE session_id = $1 AND user_id = $2`,
		id, userID,
	); err != nil {
		return fmt.Errorf("delete session sets: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListSessions returns all workout sessions of a user, oldest first
func (r *Repo) ListSessions(ctx context.Context, userID string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, workout_date, time_start, time_end
			FROM workout_session
			WHERE user_id = $1
			ORDER BY workout_date ASC, id ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2sessions(rows)
}

func (r *Repo) CountSessions(ctx context.Context, userID string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.countSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT COUNT(*) FROM workout_session WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get sessions count")
}

func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_set
				(user_id, session_id, weight, weight_unit, reps, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		set.UserID, set.SessionID, set.Weight, set.WeightUnit, set.Reps, set.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("set.id", id))

	set.ID = id
	return &set, nil
}

func (r *Repo) UpdateSet(ctx context.Context, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", set.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_set SET weight = $1, weight_unit = $2, reps = $3, created_at = $4 WHERE id = $5 AND user_id = $6;`,
		set.Weight, set.WeightUnit, set.Reps, set.CreatedAt, set.ID, set.UserID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_set WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) ListSets(ctx context.Context, userID string) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, session_id, weight, weight_unit, reps, created_at
			FROM workout_set
			WHERE user_id = $1
			ORDER BY created_at ASC, id ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return rows2sets(rows)
}

func rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		var timeStart, timeEnd *time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &timeStart, &timeEnd); err != nil {
			return nil, err
		}
		s.TimeStart = timeStart
		s.TimeEnd = timeEnd
		sessions = append(sessions, s)
	}

	if sessions == nil {
		sessions = make([]Session, 0)
	}

	return sessions, nil
}

func rows2sets(rows pgx.Rows) ([]Set, error) {
	var sets []Set
	for rows.Next() {
		var s Set
		if err := rows.Scan(&s.ID, &s.UserID, &s.SessionID, &s.Weight, &s.WeightUnit, &s.Reps, &s.CreatedAt); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}

	if sets == nil {
		sets = make([]Set, 0)
	}

	return sets, nil
}
