package crypto

// PasswordHasher owns the hashing scheme for the journal password. It knows
// nothing about the network, the database, or users; its only job is to turn
// a plaintext password into a self-describing encoded hash and to verify a
// candidate password against such a hash.
type PasswordHasher interface {
	// Hash derives an encoded Argon2id digest from the plaintext password.
	// The returned string embeds the algorithm parameters and salt, so it is
	// the only value that needs to be persisted.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash. The digest
	// comparison is constant-time; Verify returns an error only when the
	// encoded hash itself is malformed.
	Verify(password, encodedHash string) (bool, error)
}
