// Package storage provides the key/value blob store the profile, appointment
// and check-in collections persist into. Each collection serializes to a
// single JSON blob under its own key; the store never interprets the blob.
package storage

// Store is the persistence boundary for whole-object JSON blobs.
type Store interface {
	// Get returns the blob stored under key. The second result is false when
	// the key has never been written.
	Get(key string) ([]byte, bool, error)
	// Put writes the blob under key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error
}
