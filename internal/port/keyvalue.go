package port

// KVStore is a string key-value persistence backend.
// There are no transactional guarantees across keys.
type KVStore interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)

	Set(key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error

	Close() error
}
