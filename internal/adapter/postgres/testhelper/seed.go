package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/traveleats-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a profile with an empty activity log.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithActivity(t, pool)
}

// SeedUserWithActivity creates a profile whose activity log holds labels
// in the given order.
func SeedUserWithActivity(t *testing.T, pool *pgxpool.Pool, labels ...string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	prefs := domain.DefaultPreferences()
	prefs.ActivityLog = append(prefs.ActivityLog, labels...)

	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		Username:    "testuser-" + suffix,
		FullName:    "Test User " + suffix,
		Preferences: prefs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		t.Fatalf("testhelper: SeedUser marshal preferences: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, username, full_name, preferences, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Username, user.FullName, raw, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRawPreferences overwrites a profile's stored preferences document
// with raw, bypassing the repository. Used to simulate legacy or damaged rows.
func SeedRawPreferences(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, raw string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE users SET preferences = $2::jsonb WHERE id = $1`,
		userID, raw,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRawPreferences: %v", err)
	}
}

// SeedRefreshToken stores a refresh token hash for userID that expires at expiresAt.
func SeedRefreshToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, expiresAt time.Time) domain.RefreshToken {
	t.Helper()

	tok := domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "hash-" + uniqueSuffix() + uniqueSuffix(),
		ExpiresAt: expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		tok.ID, tok.UserID, tok.TokenHash, tok.ExpiresAt, tok.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefreshToken: %v", err)
	}
	return tok
}
