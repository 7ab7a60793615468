package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"medspa-backend/config"
	"medspa-backend/models"
	"medspa-backend/repository"
)

// fixture is a small catalog: two medspas, each with its own
// category -> type -> product chain, and three services.
type fixture struct {
	db    *gorm.DB
	store *repository.Store

	medspa, otherMedspa   *models.Medspa
	category, otherCat    *models.ServiceCategory
	serviceType, otherTyp *models.ServiceType
	supplier              *models.Supplier
	product, otherProduct *models.ServiceProduct

	botox   *models.Service // 100.00, 30 min
	filler  *models.Service // 50.50, 45 min
	foreign *models.Service // belongs to otherMedspa
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDB(config.DBConfig{
		Driver: "sqlite",
		Name:   filepath.Join(t.TempDir(), "medspa.db"),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db, store: repository.NewStore(db)}

	f.medspa = &models.Medspa{Name: "Glow", Address: "1 Main St", PhoneNumber: "+15550001111", EmailAddress: "glow@example.com"}
	f.otherMedspa = &models.Medspa{Name: "Radiance", Address: "2 Side St", PhoneNumber: "+15550002222", EmailAddress: "radiance@example.com"}
	require.NoError(t, db.Create(f.medspa).Error)
	require.NoError(t, db.Create(f.otherMedspa).Error)

	f.category = &models.ServiceCategory{Name: "Injectables"}
	f.otherCat = &models.ServiceCategory{Name: "Laser"}
	require.NoError(t, db.Create(f.category).Error)
	require.NoError(t, db.Create(f.otherCat).Error)

	f.serviceType = &models.ServiceType{Name: "Neurotoxin", CategoryID: f.category.ID}
	f.otherTyp = &models.ServiceType{Name: "Resurfacing", CategoryID: f.otherCat.ID}
	require.NoError(t, db.Create(f.serviceType).Error)
	require.NoError(t, db.Create(f.otherTyp).Error)

	f.supplier = &models.Supplier{Name: "Allergan"}
	require.NoError(t, db.Create(f.supplier).Error)

	f.product = &models.ServiceProduct{Name: "Botox", TypeID: f.serviceType.ID, SupplierID: f.supplier.ID}
	f.otherProduct = &models.ServiceProduct{Name: "Fraxel", TypeID: f.otherTyp.ID, SupplierID: f.supplier.ID}
	require.NoError(t, db.Create(f.product).Error)
	require.NoError(t, db.Create(f.otherProduct).Error)

	f.botox = f.newService(t, f.medspa, "Botox forehead", "100.00", 30)
	f.filler = f.newService(t, f.medspa, "Lip filler", "50.50", 45)
	f.foreign = f.newService(t, f.otherMedspa, "Botox crow's feet", "80.00", 20)
	return f
}

func (f *fixture) newService(t *testing.T, medspa *models.Medspa, name, price string, duration int) *models.Service {
	t.Helper()
	svc := &models.Service{
		MedspaID:   medspa.ID,
		CategoryID: f.category.ID,
		TypeID:     f.serviceType.ID,
		ProductID:  f.product.ID,
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Duration:   duration,
	}
	require.NoError(t, f.db.Create(svc).Error)
	return svc
}

func (f *fixture) newAppointment(t *testing.T, medspa *models.Medspa, start time.Time, status models.AppointmentStatus) *models.Appointment {
	t.Helper()
	appt := &models.Appointment{MedspaID: medspa.ID, StartTime: start.UTC(), Status: status}
	require.NoError(t, f.db.Create(appt).Error)
	return appt
}

func (f *fixture) link(t *testing.T, appt *models.Appointment, services ...*models.Service) {
	t.Helper()
	for _, svc := range services {
		require.NoError(t, f.db.Create(&models.AppointmentService{AppointmentID: appt.ID, ServiceID: svc.ID}).Error)
	}
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

func (f *fixture) reader() *repository.UnitOfWork {
	return f.store.Reader(context.Background())
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tomorrow() time.Time {
	return time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
}
