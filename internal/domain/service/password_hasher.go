// Package service defines the ports the usecases drive: hashing, tokens, media, cache, events, QR codes.
package service

// PasswordHasher turns account passwords into stored digests and verifies logins against them.
// Implementations must accept every digest format the service has ever written, so the
// configured algorithm can change without locking existing users out.
type PasswordHasher interface {
	// Hash returns a salted digest. Input the algorithm cannot take is a validation error.
	Hash(password string) (string, error)

	// Check reports whether password matches hash, in constant time for a well-formed hash.
	Check(password, hash string) bool
}
