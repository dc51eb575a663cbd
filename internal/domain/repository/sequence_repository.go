package repository

import (
	"context"

	"github.com/comdesk/comdesk-api/internal/domain/enum"
)

// SequenceRepository owns the monotonic document counters, one per document
// type. Reads never fail: a missing or corrupt backing store is treated as
// "no value yet" and heals itself on the next write.
type SequenceRepository interface {
	// Peek returns the current stored value without mutating it.
	// Returns 1 when no value has ever been persisted.
	Peek(ctx context.Context, docType enum.DocType) int
	// Advance increments the stored value and returns the new one.
	// From a fresh counter the first call returns 1.
	Advance(ctx context.Context, docType enum.DocType) (int, error)
	// Set overwrites the stored value, used when an operator manually
	// overrides a document number.
	Set(ctx context.Context, docType enum.DocType, value int) error
	// Reset sets the stored value back to 1.
	Reset(ctx context.Context, docType enum.DocType) error
}
