// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPasswordBytes is the longest password accepted. bcrypt ignores input past 72 bytes.
const MaxPasswordBytes = 72

// User is a registered account capable of authenticating and authoring posts.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Display label, not unique.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // Salted password digest. Never leaves the service.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// NormalizeEmail returns the canonical form under which emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
