package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comdesk/comdesk-api/internal/domain/enum"
)

func TestSequenceAdvance(t *testing.T) {
	repo, err := NewFileSequenceRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for want := 1; want <= 5; want++ {
		got, err := repo.Advance(ctx, enum.DocTypeQuotation)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSequencePeekDoesNotMutate(t *testing.T) {
	repo, err := NewFileSequenceRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Fresh counter peeks as 1.
	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypeInvoice))
	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypeInvoice))

	n, err := repo.Advance(ctx, enum.DocTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypeInvoice))
	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypeInvoice))
}

func TestSequenceCountersAreIndependent(t *testing.T) {
	repo, err := NewFileSequenceRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.Advance(ctx, enum.DocTypeQuotation)
	require.NoError(t, err)
	_, err = repo.Advance(ctx, enum.DocTypeQuotation)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.Peek(ctx, enum.DocTypeQuotation))
	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypePurchaseOrder))
	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypeInvoice))
}

func TestSequenceCorruptFileHeals(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileSequenceRepository(dir)
	require.NoError(t, err)
	ctx := context.Background()

	path := filepath.Join(dir, "po_counter.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))

	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypePurchaseOrder))

	// A corrupt counter reads as 0, so the first advance writes 1.
	n, err := repo.Advance(ctx, enum.DocTypePurchaseOrder)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1", string(data))
}

func TestSequenceSetAndReset(t *testing.T) {
	repo, err := NewFileSequenceRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, enum.DocTypeInvoice, 41))
	assert.Equal(t, 41, repo.Peek(ctx, enum.DocTypeInvoice))

	n, err := repo.Advance(ctx, enum.DocTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	require.NoError(t, repo.Reset(ctx, enum.DocTypeInvoice))
	assert.Equal(t, 1, repo.Peek(ctx, enum.DocTypeInvoice))
}

func TestSequenceSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewFileSequenceRepository(dir)
	require.NoError(t, err)
	_, err = repo.Advance(ctx, enum.DocTypeQuotation)
	require.NoError(t, err)
	_, err = repo.Advance(ctx, enum.DocTypeQuotation)
	require.NoError(t, err)

	reopened, err := NewFileSequenceRepository(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Peek(ctx, enum.DocTypeQuotation))
}
