package ports

// SecretComparer decides whether a candidate password matches the stored
// secret. The default strategy is a direct plaintext comparison, preserving
// the legacy login contract; it exists as an interface so a hashed strategy
// can be substituted without touching callers.
type SecretComparer interface {
	// Compare returns nil on a match and domain.ErrInvalidCredentials on a
	// mismatch.
	Compare(stored, candidate string) error
}
