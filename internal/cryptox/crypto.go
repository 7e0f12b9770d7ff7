// Package cryptox holds the server secret and the one-way credential digest
// used to store passwords.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"golang.org/x/crypto/argon2"
)

// ServerSecretSize is the length of a generated server secret in bytes.
const ServerSecretSize = 32

// argon2id parameters. The salt is the server secret, so the digest of a
// given password is stable for the lifetime of the process.
const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

// ServerSecret is created once at process start and held until exit. It keys
// both password digests and token signatures, so replacing it invalidates
// every stored digest and every outstanding token.
type ServerSecret []byte

// NewServerSecret returns a fresh random secret.
func NewServerSecret() ServerSecret {
	return ServerSecret(common.GenerateRandByteArray(ServerSecretSize))
}

// ServerSecretFromString uses a configured secret, or generates one when s is
// empty. Configured secrets of any length are stretched to ServerSecretSize.
func ServerSecretFromString(s string) ServerSecret {
	if s == "" {
		return NewServerSecret()
	}
	sum := sha256.Sum256([]byte(s))
	return ServerSecret(sum[:])
}

// Digest derives the stored form of secret. It is deterministic for a given
// (secret, serverSecret) pair.
func Digest(secret string, serverSecret ServerSecret) []byte {
	return argon2.IDKey([]byte(secret), serverSecret, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// Verify recomputes the digest of secret and compares it to digest in
// constant time.
func Verify(secret string, serverSecret ServerSecret, digest []byte) bool {
	candidate := Digest(secret, serverSecret)
	defer common.WipeByteArray(candidate)
	return subtle.ConstantTimeCompare(candidate, digest) == 1
}
