// Package blob implements the opaque key-value store everything persists to:
// the serialized aggregate and the two session scalars (auth token and the
// pending-verification email).
package blob

import "context"

// Repository is a flat key-value store. Get returns nil for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
