package repository

import (
	"context"

	"gorm.io/gorm"

	"medspa-backend/models"
)

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Service, error)
	ListByMedspa(ctx context.Context, medspaID int64) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	// Update writes every column and reloads the row so timestamps are echoed back.
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByMedspa(ctx context.Context, medspaID int64) error
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id int64) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) ListByMedspa(ctx context.Context, medspaID int64) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("medspa_id = ?", medspaID).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *models.Service) error {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(service, "id = ?", service.ID).Error
}

func (r *GormServiceRepository) Update(ctx context.Context, service *models.Service) error {
	if err := r.db.WithContext(ctx).Save(service).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(service, "id = ?", service.ID).Error
}

func (r *GormServiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormServiceRepository) DeleteByMedspa(ctx context.Context, medspaID int64) error {
	return r.db.WithContext(ctx).Delete(&models.Service{}, "medspa_id = ?", medspaID).Error
}
