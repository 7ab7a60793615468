package repository

import (
	"context"

	"gorm.io/gorm"

	"medspa-backend/models"
)

type MedspaRepository interface {
	List(ctx context.Context) ([]models.Medspa, error)
	GetByID(ctx context.Context, id int64) (*models.Medspa, error)
	Create(ctx context.Context, medspa *models.Medspa) error
	Update(ctx context.Context, medspa *models.Medspa) error
	// Delete reports whether a row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

type GormMedspaRepository struct {
	db *gorm.DB
}

func NewGormMedspaRepository(db *gorm.DB) *GormMedspaRepository {
	return &GormMedspaRepository{db: db}
}

func (r *GormMedspaRepository) List(ctx context.Context) ([]models.Medspa, error) {
	var medspas []models.Medspa
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&medspas).Error; err != nil {
		return nil, err
	}
	return medspas, nil
}

func (r *GormMedspaRepository) GetByID(ctx context.Context, id int64) (*models.Medspa, error) {
	var m models.Medspa
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormMedspaRepository) Create(ctx context.Context, medspa *models.Medspa) error {
	return r.db.WithContext(ctx).Create(medspa).Error
}

func (r *GormMedspaRepository) Update(ctx context.Context, medspa *models.Medspa) error {
	if err := r.db.WithContext(ctx).Save(medspa).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(medspa, "id = ?", medspa.ID).Error
}

func (r *GormMedspaRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Medspa{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
