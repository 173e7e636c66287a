// Package authmethod implements the AuthMethod repository using PostgreSQL.
package authmethod

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/traveleats-backend/internal/adapter/postgres"
	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

const table = "auth_methods"

var columns = []string{"id", "user_id", "method", "password_hash", "created_at", "updated_at"}

// Repo provides auth_methods persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new auth method repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByUserAndMethod returns the auth method for a user with the given method type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "method": string(method)})

	var row authMethodRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "auth_method")
	}
	return row.toDomain(), nil
}

// Create inserts a new auth method row. A second credential of the same
// method for one user is domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	id := am.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "method", "password_hash").
		Values(id, am.UserID, string(am.Method), am.PasswordHash).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var row authMethodRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query); err != nil {
		return nil, postgres.MapError(err, "auth_method")
	}
	return row.toDomain(), nil
}

type authMethodRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Method       string    `db:"method"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r authMethodRow) toDomain() *domain.AuthMethod {
	return &domain.AuthMethod{
		ID:           r.ID,
		UserID:       r.UserID,
		Method:       domain.AuthMethodType(r.Method),
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
