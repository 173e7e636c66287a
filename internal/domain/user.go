package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is the profile document of one account. Email is fixed at
// registration; the remaining fields are editable by the owner.
type User struct {
	ID          uuid.UUID
	Email       string
	Username    string
	FullName    string
	AvatarURL   *string
	Preferences Preferences
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfilePatch lists the profile fields to replace. Nil fields are left
// unchanged. An empty AvatarURL removes the avatar.
type ProfilePatch struct {
	Username  *string
	FullName  *string
	AvatarURL *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Username == nil && p.FullName == nil && p.AvatarURL == nil
}

// Preferences is the typed form of the profile's preferences document.
type Preferences struct {
	// ActivityLog holds viewed content labels in viewing order. Entries are
	// only ever appended; duplicates are kept.
	ActivityLog []string `json:"activityLog"`
}

// DefaultPreferences returns the preferences a new profile starts with.
func DefaultPreferences() Preferences {
	return Preferences{ActivityLog: []string{}}
}

// DecodePreferences parses a stored preferences document. A missing or null
// document, or a missing activityLog, yields the defaults. Anything that is
// present but has the wrong shape is an error.
func DecodePreferences(raw []byte) (Preferences, error) {
	p := DefaultPreferences()
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return p, nil
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return DefaultPreferences(), fmt.Errorf("decode preferences: %w", err)
	}
	if p.ActivityLog == nil {
		p.ActivityLog = []string{}
	}
	return p, nil
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
