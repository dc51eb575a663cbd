package service

import (
	"context"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
	"github.com/comdesk/comdesk-api/pkg/apperror"
)

// DirectoryService exposes the read-only party and product directories that
// back the document forms.
type DirectoryService struct {
	vendorRepo  repository.VendorRepository
	endUserRepo repository.EndUserRepository
	productRepo repository.ProductRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(
	vendorRepo repository.VendorRepository,
	endUserRepo repository.EndUserRepository,
	productRepo repository.ProductRepository,
) *DirectoryService {
	return &DirectoryService{
		vendorRepo:  vendorRepo,
		endUserRepo: endUserRepo,
		productRepo: productRepo,
	}
}

// ListVendors returns all vendors in directory order
func (s *DirectoryService) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.vendorRepo.List(ctx)
}

// GetVendor returns a vendor by name
func (s *DirectoryService) GetVendor(ctx context.Context, name string) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListEndUsers returns all end users in directory order
func (s *DirectoryService) ListEndUsers(ctx context.Context) ([]entity.EndUser, error) {
	return s.endUserRepo.List(ctx)
}

// GetEndUser returns an end user by name
func (s *DirectoryService) GetEndUser(ctx context.Context, name string) (*entity.EndUser, error) {
	endUser, err := s.endUserRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if endUser == nil {
		return nil, apperror.NewNotFoundError("End user")
	}
	return endUser, nil
}

// ListProducts returns the product catalog in directory order
func (s *DirectoryService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// GetProduct returns a catalog product by name
func (s *DirectoryService) GetProduct(ctx context.Context, name string) (*entity.Product, error) {
	product, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}
