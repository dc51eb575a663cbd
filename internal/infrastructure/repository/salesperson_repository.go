package repository

import (
	"context"
	"sort"

	"github.com/comdesk/comdesk-api/internal/domain/entity"
	"github.com/comdesk/comdesk-api/internal/domain/repository"
	"github.com/comdesk/comdesk-api/pkg/logger"
)

// salesPersonRecord is the on-disk shape of one staff account (keyed by code).
type salesPersonRecord struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	PasswordHash string `json:"password_hash"`
}

type salesPersonRepository struct {
	accounts map[string]salesPersonRecord
}

// NewSalesPersonRepository loads the staff accounts from the given JSON file.
func NewSalesPersonRepository(path string, log *logger.Logger) repository.SalesPersonRepository {
	return &salesPersonRepository{accounts: loadDirectory[salesPersonRecord](path, log)}
}

func (r *salesPersonRepository) List(_ context.Context) ([]entity.SalesPerson, error) {
	codes := make([]string, 0, len(r.accounts))
	for code := range r.accounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]entity.SalesPerson, 0, len(codes))
	for _, code := range codes {
		out = append(out, r.toEntity(code, r.accounts[code]))
	}
	return out, nil
}

func (r *salesPersonRepository) GetByCode(_ context.Context, code string) (*entity.SalesPerson, error) {
	rec, ok := r.accounts[code]
	if !ok {
		return nil, nil
	}
	sp := r.toEntity(code, rec)
	return &sp, nil
}

func (r *salesPersonRepository) toEntity(code string, rec salesPersonRecord) entity.SalesPerson {
	return entity.SalesPerson{
		Code:         code,
		Name:         rec.Name,
		Email:        rec.Email,
		Mobile:       rec.Mobile,
		PasswordHash: rec.PasswordHash,
	}
}
