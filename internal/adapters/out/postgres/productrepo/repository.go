package productrepo

import (
	"context"
	"errors"

	"transfers/internal/core/domain/model/product"
	"transfers/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByCode resolves a product code.
func (r *GormProductRepository) GetByCode(ctx context.Context, code string) (*product.Product, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
