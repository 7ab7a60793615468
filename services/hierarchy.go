package services

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"medspa-backend/repository"
)

// HierarchyValidator checks that a category, type and product form one chain:
// the type belongs to the category and the product belongs to the type.
type HierarchyValidator struct{}

func (HierarchyValidator) Validate(ctx context.Context, uow *repository.UnitOfWork, categoryID, typeID, productID int64) error {
	serviceType, err := uow.Types.GetByID(ctx, typeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(err, "load service type %d", typeID)
	}
	if serviceType == nil || serviceType.CategoryID != categoryID {
		return &HierarchyError{Reason: "type/category mismatch"}
	}

	product, err := uow.Products.GetByID(ctx, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(err, "load service product %d", productID)
	}
	if product == nil || product.TypeID != typeID {
		return &HierarchyError{Reason: "product/type mismatch"}
	}
	return nil
}
