// Package metadata persists small device-local key/value state: the session
// pointer (current logged-in user) and the test-data seed flag.
package metadata

import "context"

// Well-known keys.
const (
	// KeyCurrentUser holds the logged-in user as JSON. Absent when nobody
	// is logged in on this device.
	KeyCurrentUser = "current_user"
	// KeySeedFlag holds "true" once the demo data has been seeded.
	KeySeedFlag = "test_data_initialized"
)

// Repository is a plain key/value store. Get returns nil for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
