package storage

import "context"

// Provider is a key/value blob store. Each key holds one JSON snapshot that
// is overwritten wholesale.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Keys(ctx context.Context) ([]string, error)

	// Utils
	GetConfigPath() string
}

// Versioned is implemented by SQL backends that track applied migrations.
type Versioned interface {
	SchemaVersion(ctx context.Context) (int, error)
	LatestSchemaVersion() (int, error)
}
