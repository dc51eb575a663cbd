package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores a processed generate request so a client retry does
// not advance a document counter twice.
type IdempotencyKey struct {
	ID           uuid.UUID `json:"id"`
	Key          string    `json:"key"`
	SalesPerson  string    `json:"sales_person"`
	Endpoint     string    `json:"endpoint"`
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `json:"response_body"`
	ContentType  string    `json:"content_type"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired checks if the idempotency key has expired.
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
