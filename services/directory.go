package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"medspa-backend/models"
	"medspa-backend/repository"
	"medspa-backend/utils"
)

type MedspaInput struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	PhoneNumber  string `json:"phone_number" validate:"required"`
	EmailAddress string `json:"email_address" validate:"required,email"`
}

type MedspaPatch struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Address      *string `json:"address" validate:"omitempty,min=1"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,min=1"`
	EmailAddress *string `json:"email_address" validate:"omitempty,email"`
}

type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type TypeInput struct {
	Name       string `json:"name" validate:"required"`
	CategoryID int64  `json:"category_id" validate:"required"`
}

type ProductInput struct {
	Name       string `json:"name" validate:"required"`
	TypeID     int64  `json:"type_id" validate:"required"`
	SupplierID int64  `json:"supplier_id" validate:"required"`
}

type SupplierInput struct {
	Name string `json:"name" validate:"required"`
}

// Directory is plain CRUD for medspas and the category/type/product/supplier tree.
type Directory struct{}

func (Directory) ListMedspas(ctx context.Context, uow *repository.UnitOfWork) ([]models.Medspa, error) {
	medspas, err := uow.Medspas.List(ctx)
	return medspas, errors.Wrap(err, "list medspas")
}

func (Directory) GetMedspa(ctx context.Context, uow *repository.UnitOfWork, id int64) (*models.Medspa, error) {
	m, err := uow.Medspas.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "medspa", id)
	}
	return m, nil
}

func (Directory) CreateMedspa(ctx context.Context, uow *repository.UnitOfWork, in MedspaInput) (*models.Medspa, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	if !utils.ValidatePhone(in.PhoneNumber) {
		return nil, invalid("phone_number", "invalid phone number format")
	}

	m := &models.Medspa{
		Name:         strings.TrimSpace(in.Name),
		Address:      strings.TrimSpace(in.Address),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		EmailAddress: strings.TrimSpace(in.EmailAddress),
	}
	if err := uow.Medspas.Create(ctx, m); err != nil {
		return nil, errors.Wrap(err, "create medspa")
	}
	return m, nil
}

func (Directory) UpdateMedspa(ctx context.Context, uow *repository.UnitOfWork, id int64, patch MedspaPatch) (*models.Medspa, error) {
	if err := checkStruct(patch); err != nil {
		return nil, err
	}
	if patch.PhoneNumber != nil && !utils.ValidatePhone(*patch.PhoneNumber) {
		return nil, invalid("phone_number", "invalid phone number format")
	}

	m, err := uow.Medspas.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "medspa", id)
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Address != nil {
		m.Address = *patch.Address
	}
	if patch.PhoneNumber != nil {
		m.PhoneNumber = *patch.PhoneNumber
	}
	if patch.EmailAddress != nil {
		m.EmailAddress = *patch.EmailAddress
	}

	if err := uow.Medspas.Update(ctx, m); err != nil {
		return nil, errors.Wrapf(err, "update medspa %d", id)
	}
	return m, nil
}

// DeleteMedspa removes the medspa together with the services and appointments it owns.
func (Directory) DeleteMedspa(ctx context.Context, uow *repository.UnitOfWork, id int64) (bool, error) {
	if err := uow.Appointments.DeleteLinksByMedspa(ctx, id); err != nil {
		return false, errors.Wrapf(err, "delete appointment links of medspa %d", id)
	}
	if err := uow.Appointments.DeleteByMedspa(ctx, id); err != nil {
		return false, errors.Wrapf(err, "delete appointments of medspa %d", id)
	}
	if err := uow.Services.DeleteByMedspa(ctx, id); err != nil {
		return false, errors.Wrapf(err, "delete services of medspa %d", id)
	}
	deleted, err := uow.Medspas.Delete(ctx, id)
	return deleted, errors.Wrapf(err, "delete medspa %d", id)
}

func (Directory) ListCategories(ctx context.Context, uow *repository.UnitOfWork) ([]models.ServiceCategory, error) {
	categories, err := uow.Categories.List(ctx)
	return categories, errors.Wrap(err, "list service categories")
}

func (Directory) CreateCategory(ctx context.Context, uow *repository.UnitOfWork, in CategoryInput) (*models.ServiceCategory, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	c := &models.ServiceCategory{Name: strings.TrimSpace(in.Name)}
	if err := uow.Categories.Create(ctx, c); err != nil {
		return nil, errors.Wrap(err, "create service category")
	}
	return c, nil
}

func (Directory) ListTypes(ctx context.Context, uow *repository.UnitOfWork, categoryID int64) ([]models.ServiceType, error) {
	if categoryID != 0 {
		types, err := uow.Types.ListByCategory(ctx, categoryID)
		return types, errors.Wrapf(err, "list service types of category %d", categoryID)
	}
	types, err := uow.Types.List(ctx)
	return types, errors.Wrap(err, "list service types")
}

func (Directory) CreateType(ctx context.Context, uow *repository.UnitOfWork, in TypeInput) (*models.ServiceType, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	if _, err := uow.Categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, lookupErr(err, "service category", in.CategoryID)
	}
	t := &models.ServiceType{Name: strings.TrimSpace(in.Name), CategoryID: in.CategoryID}
	if err := uow.Types.Create(ctx, t); err != nil {
		return nil, errors.Wrap(err, "create service type")
	}
	return t, nil
}

func (Directory) ListProducts(ctx context.Context, uow *repository.UnitOfWork) ([]models.ServiceProduct, error) {
	products, err := uow.Products.List(ctx)
	return products, errors.Wrap(err, "list service products")
}

func (Directory) CreateProduct(ctx context.Context, uow *repository.UnitOfWork, in ProductInput) (*models.ServiceProduct, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	if _, err := uow.Types.GetByID(ctx, in.TypeID); err != nil {
		return nil, lookupErr(err, "service type", in.TypeID)
	}
	if _, err := uow.Suppliers.GetByID(ctx, in.SupplierID); err != nil {
		return nil, lookupErr(err, "supplier", in.SupplierID)
	}
	p := &models.ServiceProduct{
		Name:       strings.TrimSpace(in.Name),
		TypeID:     in.TypeID,
		SupplierID: in.SupplierID,
	}
	if err := uow.Products.Create(ctx, p); err != nil {
		return nil, errors.Wrap(err, "create service product")
	}
	return p, nil
}

func (Directory) ListSuppliers(ctx context.Context, uow *repository.UnitOfWork) ([]models.Supplier, error) {
	suppliers, err := uow.Suppliers.List(ctx)
	return suppliers, errors.Wrap(err, "list suppliers")
}

func (Directory) CreateSupplier(ctx context.Context, uow *repository.UnitOfWork, in SupplierInput) (*models.Supplier, error) {
	if err := checkStruct(in); err != nil {
		return nil, err
	}
	s := &models.Supplier{Name: strings.TrimSpace(in.Name)}
	if err := uow.Suppliers.Create(ctx, s); err != nil {
		return nil, errors.Wrap(err, "create supplier")
	}
	return s, nil
}

// DeleteSupplier refuses while any product still references the supplier.
func (Directory) DeleteSupplier(ctx context.Context, uow *repository.UnitOfWork, id int64) (bool, error) {
	count, err := uow.Products.CountBySupplier(ctx, id)
	if err != nil {
		return false, errors.Wrapf(err, "count products of supplier %d", id)
	}
	if count > 0 {
		return false, invalid("", fmt.Sprintf("cannot delete supplier: %d products are associated with this supplier", count))
	}
	deleted, err := uow.Suppliers.Delete(ctx, id)
	return deleted, errors.Wrapf(err, "delete supplier %d", id)
}
