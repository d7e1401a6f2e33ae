package security

// PasswordHasher produces and verifies one-way salted password hashes.
// Salting and algorithm choice are the implementation's responsibility; the
// domain never inspects the hash format.
type PasswordHasher interface {
	// Hash returns the opaque hash of a plaintext password
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash
	Verify(hash, plaintext string) bool
}
