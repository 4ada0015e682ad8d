// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// CredentialStore is a read-only directory of login credentials.
type CredentialStore interface {
	// PasswordHash returns the stored hash for username, and false when the user is unknown.
	PasswordHash(username string) (string, bool)
}

// PasswordService hashes the configured passwords once at start-up and checks
// login attempts against those hashes.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns nil when password matches hashedPassword.
	VerifyPassword(hashedPassword, password string) error
}
