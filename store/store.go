package store

import (
	"context"
	"time"

	"github.com/w-h-a/textproc/processor"
)

// Store holds every processed record for the life of the process.
// Implementations are append-only: records are never updated or
// removed, and CreatedAt is non-decreasing in insertion order. The
// store is volatile by design; nothing survives a restart.
type Store interface {
	// Insert appends the record, stamping CreatedAt at the moment of
	// insertion, and returns the completed record.
	Insert(ctx context.Context, rec processor.Record) (processor.Record, error)

	// List returns every record in insertion order, oldest first, as a
	// snapshot taken at call time. Later inserts never mutate a
	// returned sequence.
	List(ctx context.Context) ([]processor.Record, error)

	// ListSince returns the records with CreatedAt >= cutoff,
	// preserving insertion order.
	ListSince(ctx context.Context, cutoff time.Time) ([]processor.Record, error)

	// Get looks up a single record by id.
	Get(ctx context.Context, id string) (processor.Record, bool, error)
}
