package domain

// Store is the on-device key-value persistence (BoltDB + memory).
// Values are opaque bytes; callers own the encoding.
type Store interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte) error
	Delete(key string) error
	Close() error
}
