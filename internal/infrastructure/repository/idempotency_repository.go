package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
)

// memoryIdempotencyRepository keeps idempotency keys in memory. Keys only
// need to survive client retries within a session, so process lifetime is
// enough; there is no database in this deployment.
type memoryIdempotencyRepository struct {
	mu   sync.RWMutex
	keys map[string]*entity.IdempotencyKey
}

// NewMemoryIdempotencyRepository creates an in-memory idempotency store.
func NewMemoryIdempotencyRepository() repository.IdempotencyRepository {
	return &memoryIdempotencyRepository{keys: make(map[string]*entity.IdempotencyKey)}
}

func mapKey(key, salesPerson string) string {
	return salesPerson + ":" + key
}

func (r *memoryIdempotencyRepository) GetByKey(_ context.Context, key, salesPerson string) (*entity.IdempotencyKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ikey, ok := r.keys[mapKey(key, salesPerson)]
	if !ok {
		return nil, nil
	}
	return ikey, nil
}

func (r *memoryIdempotencyRepository) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = time.Now()
	}
	r.keys[mapKey(ikey.Key, ikey.SalesPerson)] = ikey
	return nil
}

func (r *memoryIdempotencyRepository) DeleteExpired(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, ikey := range r.keys {
		if ikey.IsExpired() {
			delete(r.keys, k)
		}
	}
	return nil
}
