package record

import (
	"context"

	"github.com/google/uuid"
)

// Entity is the contract every record type held by a Store satisfies.
type Entity interface {
	RecordID() uuid.UUID
	// SearchFields returns the text fields a search query is matched against.
	SearchFields() []string
	Validate() error
}

// KV is the durable key-value namespace a Store mirrors its collection into.
// Values are opaque encoded blobs; writes are last-write-wins.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
