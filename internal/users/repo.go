package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mvukovic/trophystats/internal/telemetry/tracing"
)

var ErrProfileNotFound = errors.New("user profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var profile Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, trophies_enabled, last_login, created_at
			FROM user_profile
			WHERE user_id = $1;`,
		userID,
	).Scan(&profile.UserID, &profile.TrophiesEnabled, &profile.LastLogin, &profile.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *Repo) Save(ctx context.Context, profile Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile (user_id, trophies_enabled, last_login, created_at)
				VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id) DO UPDATE SET
				trophies_enabled = EXCLUDED.trophies_enabled,
				last_login = EXCLUDED.last_login;`,
		profile.UserID, profile.TrophiesEnabled, profile.LastLogin, profile.CreatedAt,
	)
	return err
}

func (r *Repo) SetLastLogin(ctx context.Context, userID string, lastLogin time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setLastLogin")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_profile SET last_login = $1 WHERE user_id = $2;`,
		lastLogin, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ListActiveIDs returns the ids of users with trophies enabled,
// logged in within the last inactivityDays days (or never tracked)
func (r *Repo) ListActiveIDs(ctx context.Context, inactivityDays int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listActiveIDs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id FROM user_profile
			WHERE trophies_enabled = TRUE
				AND (last_login IS NULL OR last_login >= $1)
			ORDER BY user_id;`,
		time.Now().AddDate(0, 0, -inactivityDays),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
