// Package productrepo persists products. Stock is only ever changed with
// guarded arithmetic updates so concurrent checkouts cannot oversell.
package productrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"size:200;not null"`
	Price    int64     `gorm:"not null"`
	Stock    int       `gorm:"not null;check:stock >= 0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID().Value(),
		VendorID: p.VendorID().Value(),
		Name:     p.Name(),
		Price:    p.Price(),
		Stock:    p.Stock(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.FromUUID(dto.ID)
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.FromUUID(dto.VendorID)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(id, vendorID, dto.Name, dto.Price, dto.Stock)
}
