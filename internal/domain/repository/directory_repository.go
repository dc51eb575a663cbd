package repository

import (
	"context"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
)

// VendorRepository defines lookups against the vendor directory.
type VendorRepository interface {
	List(ctx context.Context) ([]entity.Vendor, error)
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
}

// EndUserRepository defines lookups against the end-user directory.
type EndUserRepository interface {
	List(ctx context.Context) ([]entity.EndUser, error)
	GetByName(ctx context.Context, name string) (*entity.EndUser, error)
}

// ProductRepository defines lookups against the product catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
}

// SalesPersonRepository defines lookups against the configured staff accounts.
type SalesPersonRepository interface {
	List(ctx context.Context) ([]entity.SalesPerson, error)
	GetByCode(ctx context.Context, code string) (*entity.SalesPerson, error)
}
