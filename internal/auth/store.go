package auth

import (
	"context"
	"regexp"
	"strings"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	IsAdmin      bool
	TokenVersion int
	CreatedAt    time.Time
}

// Store abstracts account persistence so identity is never ambient state:
// the server injects the sqlite repo, tests inject the in-memory store.
type Store interface {
	CreateUser(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetTokenVersion(ctx context.Context, id string) (int, error)
	BumpTokenVersion(ctx context.Context, id string) error
}

// milEmailPattern gates registration: the portal only accepts .mil addresses.
var milEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.mil$`)

// ValidMilEmail reports whether the address matches the portal's email rule.
// Matching is case-insensitive; callers lower-case before storing.
func ValidMilEmail(email string) bool {
	return milEmailPattern.MatchString(strings.ToLower(email))
}
