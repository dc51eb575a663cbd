package repository

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
	"github.com/comdesk/comdesk-api/pkg/logger"
)

// loadDirectory reads a JSON directory file keyed by record name. A missing
// or unreadable file yields an empty directory: the operator can still fill
// the form by hand, so this is logged and never fatal.
func loadDirectory[T any](path string, log *logger.Logger) map[string]T {
	out := map[string]T{}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnw("directory file unavailable, starting empty", "path", path, "error", err)
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		log.Warnw("directory file unreadable, starting empty", "path", path, "error", err)
		return map[string]T{}
	}
	return out
}

// vendorRecord is the on-disk shape of one vendor entry (keyed by name).
type vendorRecord struct {
	Address string `json:"address"`
	Contact string `json:"contact"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	GSTNo   string `json:"gst_no"`
	PANNo   string `json:"pan_no"`
	MSMENo  string `json:"msme_no"`
}

type vendorRepository struct {
	vendors map[string]vendorRecord
}

// NewVendorRepository loads the vendor directory from the given JSON file.
func NewVendorRepository(path string, log *logger.Logger) repository.VendorRepository {
	return &vendorRepository{vendors: loadDirectory[vendorRecord](path, log)}
}

func (r *vendorRepository) List(_ context.Context) ([]entity.Vendor, error) {
	names := make([]string, 0, len(r.vendors))
	for name := range r.vendors {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]entity.Vendor, 0, len(names))
	for _, name := range names {
		out = append(out, r.toEntity(name, r.vendors[name]))
	}
	return out, nil
}

func (r *vendorRepository) GetByName(_ context.Context, name string) (*entity.Vendor, error) {
	rec, ok := r.vendors[name]
	if !ok {
		return nil, nil
	}
	v := r.toEntity(name, rec)
	return &v, nil
}

func (r *vendorRepository) toEntity(name string, rec vendorRecord) entity.Vendor {
	return entity.Vendor{
		Name:    name,
		Address: rec.Address,
		Contact: rec.Contact,
		Mobile:  rec.Mobile,
		Email:   rec.Email,
		GSTNo:   rec.GSTNo,
		PANNo:   rec.PANNo,
		MSMENo:  rec.MSMENo,
	}
}

// endUserRecord is the on-disk shape of one end-user entry (keyed by name).
type endUserRecord struct {
	Address string `json:"address"`
	Contact string `json:"contact"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	GSTNo   string `json:"gst_no"`
}

type endUserRepository struct {
	endUsers map[string]endUserRecord
}

// NewEndUserRepository loads the end-user directory from the given JSON file.
func NewEndUserRepository(path string, log *logger.Logger) repository.EndUserRepository {
	return &endUserRepository{endUsers: loadDirectory[endUserRecord](path, log)}
}

func (r *endUserRepository) List(_ context.Context) ([]entity.EndUser, error) {
	names := make([]string, 0, len(r.endUsers))
	for name := range r.endUsers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]entity.EndUser, 0, len(names))
	for _, name := range names {
		out = append(out, r.toEntity(name, r.endUsers[name]))
	}
	return out, nil
}

func (r *endUserRepository) GetByName(_ context.Context, name string) (*entity.EndUser, error) {
	rec, ok := r.endUsers[name]
	if !ok {
		return nil, nil
	}
	e := r.toEntity(name, rec)
	return &e, nil
}

func (r *endUserRepository) toEntity(name string, rec endUserRecord) entity.EndUser {
	return entity.EndUser{
		Name:          name,
		Address:       rec.Address,
		ContactPerson: rec.Contact,
		Mobile:        rec.Mobile,
		Email:         rec.Email,
		GSTNo:         rec.GSTNo,
	}
}

// productRecord is the on-disk shape of one catalog entry (keyed by name).
type productRecord struct {
	Basic      float64 `json:"basic"`
	TaxPercent float64 `json:"tax_percent"`
}

type productRepository struct {
	products map[string]productRecord
}

// NewProductRepository loads the product catalog from the given JSON file.
func NewProductRepository(path string, log *logger.Logger) repository.ProductRepository {
	return &productRepository{products: loadDirectory[productRecord](path, log)}
}

func (r *productRepository) List(_ context.Context) ([]entity.Product, error) {
	names := make([]string, 0, len(r.products))
	for name := range r.products {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]entity.Product, 0, len(names))
	for _, name := range names {
		rec := r.products[name]
		out = append(out, entity.Product{Name: name, Basic: rec.Basic, TaxPercent: rec.TaxPercent})
	}
	return out, nil
}

func (r *productRepository) GetByName(_ context.Context, name string) (*entity.Product, error) {
	rec, ok := r.products[name]
	if !ok {
		return nil, nil
	}
	return &entity.Product{Name: name, Basic: rec.Basic, TaxPercent: rec.TaxPercent}, nil
}
