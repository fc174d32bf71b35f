package store

import (
	"context"
	"fmt"

	"github.com/nholden/mailsort/internal/domain"
)

// Store defines the persistence interface for the email collection.
// The core operates on the in-memory collection; a Store is only
// responsible for durability.
type Store interface {
	// Load returns the full collection in insertion order. Malformed
	// persisted records are rejected individually and reported as
	// RecordErrors rather than failing the whole load.
	Load(ctx context.Context) ([]domain.Email, []RecordError, error)

	// Save persists the full collection, replacing previous contents.
	Save(ctx context.Context, emails []domain.Email) error

	Close() error
}

// RecordError describes a single persisted record the store rejected.
type RecordError struct {
	Index  int // position in the persisted data
	Reason string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}
