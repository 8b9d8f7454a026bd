// Package storage provides the key/value persistence layer backing the
// storefront stores. Each value is a UTF-8 JSON document; writes are
// synchronous and complete before the call returns.
package storage

// Store is a durable key/value store of JSON documents.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Set writes the value, replacing any previous one.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
