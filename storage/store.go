// Package storage provides the session-scoped key-value stores the accordion
// persists section state into, plus the availability probe guarding them.
package storage

// Store is a session-scoped key-value medium. Implementations may fail on
// any operation; callers treat failures as a degradation, not an error.
type Store interface {
	// Get returns the value for key, or ErrNotFound when absent.
	Get(key string) (string, error)
	// Set writes key to value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}
