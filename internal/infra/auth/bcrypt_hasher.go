// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	algorithmBcrypt   = "bcrypt"
	algorithmArgon2id = "argon2id"

	argon2idPrefix = "$argon2id$"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt PasswordHasher with the default cost.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost returns a bcrypt PasswordHasher. Out of range costs fall back to the default.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// NewPasswordHasher builds the hasher selected by auth.passwordAlgorithm.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	algorithm := algorithmBcrypt
	if cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.PasswordAlgorithm != "" {
			algorithm = strings.ToLower(cfg.Auth.PasswordAlgorithm)
		}
	}

	switch algorithm {
	case algorithmBcrypt:
		return NewBcryptHasherWithCost(cost), nil
	case algorithmArgon2id:
		return NewArgon2idHasher(cost), nil
	default:
		return nil, errors.Errorf("unknown password algorithm: %s", algorithm)
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domainerrors.ErrValidationFailed.WithDetails("password is too long")
	}
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a stored hash.
// Hashes written by the argon2id hasher are verified as well so the algorithm can be switched.
func (h *bcryptHasher) Check(password, hash string) bool {
	if strings.HasPrefix(hash, argon2idPrefix) {
		return checkArgon2id(password, hash)
	}

	// err is nil if the password and hash match.
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// argon2idHasher hashes with argon2id and still verifies legacy bcrypt hashes.
type argon2idHasher struct {
	params *argon2id.Params
	legacy *bcryptHasher
}

// NewArgon2idHasher returns an argon2id PasswordHasher. bcryptCost is used for verifying legacy hashes only.
func NewArgon2idHasher(bcryptCost int) service.PasswordHasher {
	legacy, _ := NewBcryptHasherWithCost(bcryptCost).(*bcryptHasher)

	return &argon2idHasher{
		params: argon2id.DefaultParams,
		legacy: legacy,
	}
}

func (h *argon2idHasher) Hash(password string) (string, error) {
	hash, err := argon2id.CreateHash(password, h.params)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hash, nil
}

func (h *argon2idHasher) Check(password, hash string) bool {
	return h.legacy.Check(password, hash)
}

func checkArgon2id(password, hash string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, hash)

	return err == nil && match
}
