package trophies

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
)

var (
	ErrTrophyNotFound     = errors.New("trophy not found")
	ErrUserTrophyNotFound = errors.New("user trophy not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// UpsertTrophy inserts a catalog entry or, keyed by name, updates the
// existing one. Used by catalog loading, which must be safe to rerun.
func (r *Repo) UpsertTrophy(ctx context.Context, trophy Trophy) (_ *Trophy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.upsertTrophy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("trophy.name", trophy.Name))

	if trophy.ID == uuid.Nil {
		trophy.ID = uuid.New()
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO trophy
				(id, name, description, trophy_type, checker_name, checker_params,
				is_active, is_hidden, is_progressive, display_order)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (name) DO UPDATE SET
				description = EXCLUDED.description,
				trophy_type = EXCLUDED.trophy_type,
				checker_name = EXCLUDED.checker_name,
				checker_params = EXCLUDED.checker_params,
				is_active = EXCLUDED.is_active,
				is_hidden = EXCLUDED.is_hidden,
				is_progressive = EXCLUDED.is_progressive,
				display_order = EXCLUDED.display_order
			RETURNING id;`,
		trophy.ID, trophy.Name, trophy.Description, trophy.Type,
		trophy.CheckerName, trophy.CheckerParams,
		trophy.IsActive, trophy.IsHidden, trophy.IsProgressive, trophy.DisplayOrder,
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

	if err := rows.Scan(&trophy.ID); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &trophy, nil
}

func (r *Repo) ListTrophies(ctx context.Context, activeOnly bool) (_ []Trophy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.listTrophies")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT
			id, name, description, trophy_type, checker_name, checker_params,
			is_active, is_hidden, is_progressive, display_order
		FROM trophy`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY display_order, name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2trophies(rows)
}

func (r *Repo) GetTrophy(ctx context.Context, id uuid.UUID) (_ *Trophy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.getTrophy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getTrophy(ctx, `WHERE id = $1`, id)
}

func (r *Repo) GetTrophyByName(ctx context.Context, name string) (_ *Trophy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.getTrophyByName")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.getTrophy(ctx, `WHERE name = $1`, name)
}

func (r *Repo) getTrophy(ctx context.Context, where string, arg any) (*Trophy, error) {
	var trophy Trophy
	err := r.db.QueryRow(
		ctx,
		`SELECT
				id, name, description, trophy_type, checker_name, checker_params,
				is_active, is_hidden, is_progressive, display_order
			FROM trophy `+where+`;`,
		arg,
	).Scan(
		&trophy.ID, &trophy.Name, &trophy.Description, &trophy.Type,
		&trophy.CheckerName, &trophy.CheckerParams,
		&trophy.IsActive, &trophy.IsHidden, &trophy.IsProgressive, &trophy.DisplayOrder,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTrophyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trophy, nil
}

func (r *Repo) GetUserTrophy(ctx context.Context, userID string, trophyID uuid.UUID) (_ *UserTrophy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.getUserTrophy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var userTrophy UserTrophy
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, trophy_id, earned_at, progress, is_notified
			FROM user_trophy
			WHERE user_id = $1 AND trophy_id = $2;`,
		userID, trophyID,
	).Scan(
		&userTrophy.UserID, &userTrophy.TrophyID,
		&userTrophy.EarnedAt, &userTrophy.Progress, &userTrophy.IsNotified,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserTrophyNotFound
	}
	if err != nil {
		return nil, err
	}

	return &userTrophy, nil
}

func (r *Repo) ListUserTrophies(ctx context.Context, userID string) (_ []UserTrophy, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.listUserTrophies")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, trophy_id, earned_at, progress, is_notified
			FROM user_trophy
			WHERE user_id = $1
			ORDER BY earned_at;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	userTrophies := make([]UserTrophy, 0)
	for rows.Next() {
		var ut UserTrophy
		if err := rows.Scan(&ut.UserID, &ut.TrophyID, &ut.EarnedAt, &ut.Progress, &ut.IsNotified); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		userTrophies = append(userTrophies, ut)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return userTrophies, nil
}

// AwardTrophy inserts the earned record. The (user_id, trophy_id) unique
// constraint makes a duplicate award surface as a unique violation, the
// caller decides whether that counts as a failure.
func (r *Repo) AwardTrophy(ctx context.Context, userTrophy UserTrophy) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.awardTrophy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userTrophy.UserID),
		attribute.String("trophy.id", userTrophy.TrophyID.String()),
	)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_trophy (user_id, trophy_id, earned_at, progress, is_notified)
			VALUES ($1, $2, $3, $4, $5);`,
		userTrophy.UserID, userTrophy.TrophyID,
		userTrophy.EarnedAt, userTrophy.Progress, userTrophy.IsNotified,
	)
	return err
}

func (r *Repo) MarkNotified(ctx context.Context, userID string, trophyID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trophies.markNotified")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_trophy SET is_notified = TRUE WHERE user_id = $1 AND trophy_id = $2;`,
		userID, trophyID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserTrophyNotFound
	}
	return nil
}

func rows2trophies(rows pgx.Rows) ([]Trophy, error) {
	trophies := make([]Trophy, 0)
	for rows.Next() {
		var trophy Trophy
		if err := rows.Scan(
			&trophy.ID, &trophy.Name, &trophy.Description, &trophy.Type,
			&trophy.CheckerName, &trophy.CheckerParams,
			&trophy.IsActive, &trophy.IsHidden, &trophy.IsProgressive, &trophy.DisplayOrder,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		trophies = append(trophies, trophy)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trophies, nil
}
