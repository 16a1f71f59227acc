// Package storage is the durable key-value port behind cart persistence.
// Handlers depend on the Store interface so the backing store can be
// swapped (postgres in production, memory in tests) and write failures
// can be exercised.
package storage

type Store interface {
	// Load returns the value for key, with ok=false when the key is absent.
	Load(key string) (value string, ok bool, err error)
	// Save writes the value for key, overwriting any previous value.
	Save(key, value string) error
}
