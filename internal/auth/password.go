package auth

import (
	"errors"
	"unicode/utf8"

	"github.com/alexedwards/argon2id"
)

const MinPasswordLength = 12

var ErrPasswordTooShort = errors.New("password must be at least 12 characters")

var DefaultPasswordParams = &argon2id.Params{
	Memory:      19 * 1024,
	Iterations:  2,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func HashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	return argon2id.CreateHash(password, DefaultPasswordParams)
}

func ComparePassword(password, hash string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, hash)
}
