package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/comdesk/comdesk-api/internal/domain/enum"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
)

// counterFiles maps each document type to its backing file name. The names
// are part of the on-disk contract with existing installations.
var counterFiles = map[enum.DocType]string{
	enum.DocTypeQuotation:     "quotation_counter.txt",
	enum.DocTypePurchaseOrder: "po_counter.txt",
	enum.DocTypeInvoice:       "invoice_counter.txt",
}

// fileSequenceRepository persists one integer per document type in a plain
// text file. A missing or unreadable file is treated as "counter not yet
// initialized"; the next successful write heals it. Access is serialized
// within the process; there is no cross-process locking (single operator
// assumption).
type fileSequenceRepository struct {
	dir string
	mu  sync.Mutex
}

// NewFileSequenceRepository creates a sequence repository backed by counter
// files under dir. The directory is created if it does not exist.
func NewFileSequenceRepository(dir string) (repository.SequenceRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create counter dir: %w", err)
	}
	return &fileSequenceRepository{dir: dir}, nil
}

func (r *fileSequenceRepository) path(docType enum.DocType) string {
	name, ok := counterFiles[docType]
	if !ok {
		name = string(docType) + "_counter.txt"
	}
	return filepath.Join(r.dir, name)
}

// read returns the stored value, or fallback when the file is missing or
// does not hold an integer.
func (r *fileSequenceRepository) read(docType enum.DocType, fallback int) int {
	data, err := os.ReadFile(r.path(docType))
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return fallback
	}
	return n
}

func (r *fileSequenceRepository) write(docType enum.DocType, value int) error {
	return os.WriteFile(r.path(docType), []byte(strconv.Itoa(value)), 0o644)
}

// Peek returns the current stored value without mutating it, defaulting to 1.
func (r *fileSequenceRepository) Peek(_ context.Context, docType enum.DocType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(docType, 1)
}

// Advance increments the stored value and returns it. An absent or corrupt
// counter reads as 0, so the first Advance yields 1.
func (r *fileSequenceRepository) Advance(_ context.Context, docType enum.DocType) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.read(docType, 0) + 1
	if err := r.write(docType, next); err != nil {
		return 0, fmt.Errorf("persist %s counter: %w", docType, err)
	}
	return next, nil
}

// Set overwrites the stored value.
func (r *fileSequenceRepository) Set(_ context.Context, docType enum.DocType, value int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.write(docType, value); err != nil {
		return fmt.Errorf("persist %s counter: %w", docType, err)
	}
	return nil
}

// Reset sets the stored value back to 1.
func (r *fileSequenceRepository) Reset(ctx context.Context, docType enum.DocType) error {
	return r.Set(ctx, docType, 1)
}
