// Package password provides one-way salted password hashing.
//
// Two implementations exist: Argon2Hasher (the production default, a
// memory-hard KDF) and BcryptHasher. Both emit self-describing digests, so
// Verify needs no out-of-band parameter knowledge. Digests must never be
// compared directly — the same plaintext hashes to a different digest on
// every call because the salt is freshly drawn.
package password

// Hasher hashes plaintext passwords and verifies them against stored digests.
//
// Verify is a boolean predicate: a malformed or corrupted digest, a parameter
// mismatch, or any internal failure yields false, never an error or a panic.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
