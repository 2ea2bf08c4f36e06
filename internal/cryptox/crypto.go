// Package cryptox derives the credential secret a client sends instead of
// the raw password. The server stores and compares that secret verbatim.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing any of them changes every derived secret and
// locks existing users out.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// saltDomain separates these salts from any other use of the username hash.
const saltDomain = "gophauth/credential-secret/v1:"

// DeriveSecret returns the hex-encoded argon2id hash of password. The salt is
// derived from the username, so the same pair always yields the same secret
// and two users with the same password get different ones.
func DeriveSecret(username string, password []byte) string {
	key := argon2.IDKey(password, usernameSalt(username), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

func usernameSalt(username string) []byte {
	sum := sha256.Sum256([]byte(saltDomain + username))
	return sum[:16]
}
