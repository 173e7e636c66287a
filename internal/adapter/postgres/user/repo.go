// Package user implements the profile repository using PostgreSQL. The
// preferences document lives in a jsonb column and is decoded into
// domain.Preferences on every read.
package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/traveleats-backend/internal/adapter/postgres"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "username", "full_name", "avatar_url", "preferences", "created_at", "updated_at"}

// appendActivityExpr appends one label to preferences.activityLog in a single
// statement. A missing log, a JSON null or any other non-array value starts a
// new array.
const appendActivityExpr = `jsonb_set(preferences, '{activityLog}', ` +
	`CASE WHEN jsonb_typeof(preferences->'activityLog') = 'array' ` +
	`THEN preferences->'activityLog' ELSE '[]'::jsonb END || jsonb_build_array(?::text), true)`

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	return r.getOne(ctx, query, "user "+id.String())
}

// GetByEmail returns a profile by email address, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("lower(email) = lower(?)", email)

	return r.getOne(ctx, query, "user")
}

// Create inserts a new profile and returns the persisted domain.User.
// A taken email or username (case-insensitive) is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	prefs := u.Preferences
	if prefs.ActivityLog == nil {
		prefs = domain.DefaultPreferences()
	}
	raw, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("user %s: encode preferences: %w", u.ID, err)
	}

	cols := []string{"id", "email", "username", "full_name", "avatar_url", "preferences"}
	vals := []any{u.ID, u.Email, u.Username, u.FullName, u.AvatarURL, sq.Expr("?::jsonb", string(raw))}
	if !u.CreatedAt.IsZero() {
		cols = append(cols, "created_at", "updated_at")
		vals = append(vals, u.CreatedAt, u.UpdatedAt)
	}

	insert := postgres.Builder().
		Insert(table).
		Columns(cols...).
		Values(vals...)

	return r.getOne(ctx, insert.Suffix("RETURNING "+strings.Join(columns, ", ")), "user "+u.ID.String())
}

// Update replaces the fields set in patch. An empty AvatarURL stores NULL.
// An empty patch returns the current profile unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.ProfilePatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query := postgres.Builder().
		Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if patch.Username != nil {
		query = query.Set("username", *patch.Username)
	}
	if patch.FullName != nil {
		query = query.Set("full_name", *patch.FullName)
	}
	if patch.AvatarURL != nil {
		var avatar *string
		if *patch.AvatarURL != "" {
			avatar = patch.AvatarURL
		}
		query = query.Set("avatar_url", avatar)
	}

	return r.getOne(ctx, query, "user "+id.String())
}

// AppendActivity appends label to the end of the profile's activity log.
// Concurrent appends never overwrite each other; duplicates are kept.
func (r *Repo) AppendActivity(ctx context.Context, id uuid.UUID, label string) error {
	query := postgres.Builder().
		Update(table).
		Set("preferences", sq.Expr(appendActivityExpr, label)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), query)
	if err != nil {
		return postgres.MapError(err, "user "+id.String())
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer, entity string) (*domain.User, error) {
	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, entity)
	}

	u, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entity, err)
	}
	return u, nil
}

type userRow struct {
	ID          uuid.UUID `db:"id"`
	Email       string    `db:"email"`
	Username    string    `db:"username"`
	FullName    string    `db:"full_name"`
	AvatarURL   *string   `db:"avatar_url"`
	Preferences []byte    `db:"preferences"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r userRow) toDomain() (*domain.User, error) {
	prefs, err := domain.DecodePreferences(r.Preferences)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:          r.ID,
		Email:       r.Email,
		Username:    r.Username,
		FullName:    r.FullName,
		AvatarURL:   r.AvatarURL,
		Preferences: prefs,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}
