// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"strings"

	"github.com/household-expenses/backend/internal/application/adapter"
)

// credentialDirectory implements adapter.CredentialStore over a fixed set of users.
// It is built once at start-up and never mutated.
type credentialDirectory struct {
	hashes map[string]string
}

// NewCredentialDirectory hashes every "user:password" pair once and returns an
// immutable directory.
func NewCredentialDirectory(pairs []string, passwordService adapter.PasswordService) (adapter.CredentialStore, error) {
	hashes := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		username, password, ok := strings.Cut(strings.TrimSpace(pair), ":")
		username = strings.TrimSpace(username)
		if !ok || username == "" || password == "" {
			return nil, fmt.Errorf("invalid credential entry %q: expected user:password", pair)
		}
		if _, exists := hashes[username]; exists {
			return nil, fmt.Errorf("duplicate credential entry for user %q", username)
		}

		hash, err := passwordService.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %q: %w", username, err)
		}
		hashes[username] = hash
	}
	return &credentialDirectory{hashes: hashes}, nil
}

// PasswordHash returns the stored hash for username.
func (d *credentialDirectory) PasswordHash(username string) (string, bool) {
	hash, ok := d.hashes[username]
	return hash, ok
}
