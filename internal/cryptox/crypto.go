// Package cryptox seals and checks account passwords.
//
// Two schemes exist. Plaintext keeps the password as typed and compares it
// byte for byte, which is how accounts have always been stored. Argon2 stores
// "argon2id$<salt>$<verifier>", where the verifier is the SHA-256 of an
// argon2id key derived from the password and a random salt.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16

	sealPrefix = "argon2id$"
)

var ErrMalformedSeal = errors.New("malformed sealed password")

var b64 = base64.RawStdEncoding

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// MakeVerifier hashes a derived key so the key itself is never stored.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// randRead is a test seam for crypto/rand.
var randRead = rand.Read

// Seal returns the argon2id encoding of password with a fresh salt.
func Seal(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := randRead(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	verifier := MakeVerifier(DeriveKey([]byte(password), salt))
	return sealPrefix + b64.EncodeToString(salt) + "$" + b64.EncodeToString(verifier), nil
}

// IsSealed reports whether stored is an argon2id encoding.
func IsSealed(stored string) bool {
	return strings.HasPrefix(stored, sealPrefix)
}

// Check compares candidate with an argon2id encoding in constant time.
func Check(sealed, candidate string) (bool, error) {
	rest, ok := strings.CutPrefix(sealed, sealPrefix)
	if !ok {
		return false, ErrMalformedSeal
	}
	saltPart, verifierPart, ok := strings.Cut(rest, "$")
	if !ok {
		return false, ErrMalformedSeal
	}
	salt, err := b64.DecodeString(saltPart)
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrMalformedSeal, err)
	}
	want, err := b64.DecodeString(verifierPart)
	if err != nil {
		return false, fmt.Errorf("%w: verifier: %v", ErrMalformedSeal, err)
	}

	got := MakeVerifier(DeriveKey([]byte(candidate), salt))
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

// Plaintext stores passwords as typed and compares them exactly.
type Plaintext struct{}

func (Plaintext) Seal(password string) (string, error) { return password, nil }

func (Plaintext) Match(stored, candidate string) bool { return stored == candidate }

// Argon2 seals new passwords with argon2id. Records written before hardening
// was switched on are still plaintext and are compared as such.
type Argon2 struct{}

func (Argon2) Seal(password string) (string, error) { return Seal(password) }

func (Argon2) Match(stored, candidate string) bool {
	if !IsSealed(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
	}
	ok, err := Check(stored, candidate)
	return err == nil && ok
}
