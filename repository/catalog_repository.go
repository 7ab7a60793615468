package repository

import (
	"context"

	"gorm.io/gorm"

	"medspa-backend/models"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.ServiceCategory, error)
	GetByID(ctx context.Context, id int64) (*models.ServiceCategory, error)
	Create(ctx context.Context, category *models.ServiceCategory) error
}

type TypeRepository interface {
	List(ctx context.Context) ([]models.ServiceType, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.ServiceType, error)
	GetByID(ctx context.Context, id int64) (*models.ServiceType, error)
	Create(ctx context.Context, serviceType *models.ServiceType) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]models.ServiceProduct, error)
	GetByID(ctx context.Context, id int64) (*models.ServiceProduct, error)
	Create(ctx context.Context, product *models.ServiceProduct) error
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}

type SupplierRepository interface {
	List(ctx context.Context) ([]models.Supplier, error)
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) List(ctx context.Context) ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetByID(ctx context.Context, id int64) (*models.ServiceCategory, error) {
	var c models.ServiceCategory
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *models.ServiceCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

type GormTypeRepository struct {
	db *gorm.DB
}

func NewGormTypeRepository(db *gorm.DB) *GormTypeRepository {
	return &GormTypeRepository{db: db}
}

func (r *GormTypeRepository) List(ctx context.Context) ([]models.ServiceType, error) {
	var types []models.ServiceType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *GormTypeRepository) ListByCategory(ctx context.Context, categoryID int64) ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *GormTypeRepository) GetByID(ctx context.Context, id int64) (*models.ServiceType, error) {
	var t models.ServiceType
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTypeRepository) Create(ctx context.Context, serviceType *models.ServiceType) error {
	return r.db.WithContext(ctx).Create(serviceType).Error
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]models.ServiceProduct, error) {
	var products []models.ServiceProduct
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*models.ServiceProduct, error) {
	var p models.ServiceProduct
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.ServiceProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *GormProductRepository) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ServiceProduct{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error
	return count, err
}

type GormSupplierRepository struct {
	db *gorm.DB
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *GormSupplierRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var s models.Supplier
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSupplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
