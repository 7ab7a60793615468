package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"medspa-backend/models"
	"medspa-backend/repository"
)

// ServiceDraft is the create payload. Every field except Description must be present.
type ServiceDraft struct {
	MedspaID    *int64           `json:"medspa_id" validate:"required"`
	CategoryID  *int64           `json:"category_id" validate:"required"`
	TypeID      *int64           `json:"type_id" validate:"required"`
	ProductID   *int64           `json:"product_id" validate:"required"`
	Name        *string          `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Duration    *int             `json:"duration" validate:"required"`
}

// ServicePatch is a partial update; nil means "leave as is".
type ServicePatch struct {
	MedspaID    *int64           `json:"medspa_id"`
	CategoryID  *int64           `json:"category_id"`
	TypeID      *int64           `json:"type_id"`
	ProductID   *int64           `json:"product_id"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration"`
}

func (p ServicePatch) touchesHierarchy() bool {
	return p.CategoryID != nil || p.TypeID != nil || p.ProductID != nil
}

// ServiceCatalog owns Service rows. Every method runs inside the caller's unit of work.
type ServiceCatalog struct {
	hierarchy HierarchyValidator
}

func NewServiceCatalog() *ServiceCatalog {
	return &ServiceCatalog{}
}

func (c *ServiceCatalog) Get(ctx context.Context, uow *repository.UnitOfWork, id int64) (*models.Service, error) {
	svc, err := uow.Services.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "service", id)
	}
	return svc, nil
}

func (c *ServiceCatalog) ListByMedspa(ctx context.Context, uow *repository.UnitOfWork, medspaID int64) ([]models.Service, error) {
	services, err := uow.Services.ListByMedspa(ctx, medspaID)
	if err != nil {
		return nil, errors.Wrapf(err, "list services of medspa %d", medspaID)
	}
	return services, nil
}

func (c *ServiceCatalog) Create(ctx context.Context, uow *repository.UnitOfWork, draft ServiceDraft) (*models.Service, error) {
	if err := checkStruct(draft); err != nil {
		return nil, err
	}
	if err := checkServiceValues(draft.Name, draft.Price, draft.Duration); err != nil {
		return nil, err
	}

	if _, err := uow.Medspas.GetByID(ctx, *draft.MedspaID); err != nil {
		return nil, lookupErr(err, "medspa", *draft.MedspaID)
	}
	if err := c.hierarchy.Validate(ctx, uow, *draft.CategoryID, *draft.TypeID, *draft.ProductID); err != nil {
		return nil, err
	}

	svc := &models.Service{
		MedspaID:   *draft.MedspaID,
		CategoryID: *draft.CategoryID,
		TypeID:     *draft.TypeID,
		ProductID:  *draft.ProductID,
		Name:       strings.TrimSpace(*draft.Name),
		Price:      *draft.Price,
		Duration:   *draft.Duration,
	}
	if draft.Description != nil {
		svc.Description = *draft.Description
	}

	if err := uow.Services.Create(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "create service")
	}
	return svc, nil
}

func (c *ServiceCatalog) Update(ctx context.Context, uow *repository.UnitOfWork, id int64, patch ServicePatch) (*models.Service, error) {
	if err := checkServiceValues(patch.Name, patch.Price, patch.Duration); err != nil {
		return nil, err
	}

	svc, err := uow.Services.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "service", id)
	}

	if patch.touchesHierarchy() {
		categoryID := pick(patch.CategoryID, svc.CategoryID)
		typeID := pick(patch.TypeID, svc.TypeID)
		productID := pick(patch.ProductID, svc.ProductID)
		if err := c.hierarchy.Validate(ctx, uow, categoryID, typeID, productID); err != nil {
			return nil, err
		}
		svc.CategoryID, svc.TypeID, svc.ProductID = categoryID, typeID, productID
	}

	if patch.MedspaID != nil && *patch.MedspaID != svc.MedspaID {
		if _, err := uow.Medspas.GetByID(ctx, *patch.MedspaID); err != nil {
			return nil, lookupErr(err, "medspa", *patch.MedspaID)
		}
		links, err := uow.Appointments.CountLinksByService(ctx, svc.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "count appointment links of service %d", svc.ID)
		}
		if links > 0 {
			return nil, invalid("medspa_id", "service is booked on appointments of its current medspa")
		}
		svc.MedspaID = *patch.MedspaID
	}

	if patch.Name != nil {
		svc.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		svc.Description = *patch.Description
	}
	if patch.Price != nil {
		svc.Price = *patch.Price
	}
	if patch.Duration != nil {
		svc.Duration = *patch.Duration
	}

	if err := uow.Services.Update(ctx, svc); err != nil {
		return nil, errors.Wrapf(err, "update service %d", id)
	}
	return svc, nil
}

// Delete clears the service's appointment links and then the service itself.
// It reports false when the service did not exist.
func (c *ServiceCatalog) Delete(ctx context.Context, uow *repository.UnitOfWork, id int64) (bool, error) {
	if err := uow.Appointments.DeleteLinksByService(ctx, id); err != nil {
		return false, errors.Wrapf(err, "delete appointment links of service %d", id)
	}
	deleted, err := uow.Services.Delete(ctx, id)
	if err != nil {
		return false, errors.Wrapf(err, "delete service %d", id)
	}
	return deleted, nil
}

func checkServiceValues(name *string, price *decimal.Decimal, duration *int) error {
	if name != nil && strings.TrimSpace(*name) == "" {
		return invalid("name", "must not be empty")
	}
	if price != nil && price.IsNegative() {
		return invalid("price", "must be non-negative")
	}
	if duration != nil && *duration <= 0 {
		return invalid("duration", "must be positive")
	}
	return nil
}

func pick(v *int64, current int64) int64 {
	if v != nil {
		return *v
	}
	return current
}
