package ledger

import (
	"context"
)

// Repository manages entry persistence. It is a dumb keyed append target:
// validation is the posting engine's responsibility and entries arriving
// here are final. GetByID returns (nil, nil) on a miss.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)

	// List returns all entries in insertion order.
	List(ctx context.Context) ([]*Entry, error)
}
