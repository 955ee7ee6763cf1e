// Package productrepo provides the GORM-backed Product Catalog adapter.
// The catalog is read-only from the ordering core's point of view: products
// are owned by an external catalog service and this adapter only resolves
// them for pricing and availability checks.
package productrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure of a catalog entry.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsAvailable bool            `gorm:"not null;default:true"`
	UpdatedAt   time.Time
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product read model.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, price, dto.IsAvailable)
}

// GormProductCatalog implements the ProductCatalog port using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog adapter.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// Get resolves a catalog entry by its identifier.
// Returns an ObjectNotFoundError when the product does not exist.
func (c *GormProductCatalog) Get(ctx context.Context, productID kernel.UUID) (*product.Product, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := c.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
