package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"medspa-backend/models"
)

// AppointmentFilter narrows List; zero values are ignored.
type AppointmentFilter struct {
	Status models.AppointmentStatus
	From   time.Time
	To     time.Time
}

// LinkTotals is the aggregate over an appointment's linked services.
type LinkTotals struct {
	TotalDuration int64
	TotalPrice    decimal.Decimal
}

// MedspaCount is one row of a per-medspa count.
type MedspaCount struct {
	MedspaID int64
	Count    int64
}

type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Update(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteByMedspa(ctx context.Context, medspaID int64) error

	// AddLink inserts the pair unless it already exists; reports whether a row was written.
	AddLink(ctx context.Context, appointmentID, serviceID int64) (bool, error)
	RemoveLink(ctx context.Context, appointmentID, serviceID int64) (bool, error)
	DeleteLinksByAppointment(ctx context.Context, appointmentID int64) error
	DeleteLinksByService(ctx context.Context, serviceID int64) error
	DeleteLinksByMedspa(ctx context.Context, medspaID int64) error
	CountLinksByService(ctx context.Context, serviceID int64) (int64, error)
	ListServices(ctx context.Context, appointmentID int64) ([]models.Service, error)
	ListByService(ctx context.Context, serviceID int64) ([]models.Appointment, error)
	Totals(ctx context.Context, appointmentID int64) (LinkTotals, error)

	CountScheduledByMedspa(ctx context.Context, from, to time.Time) ([]MedspaCount, error)
}

type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

func (r *GormAppointmentRepository) GetByID(ctx context.Context, id int64) (*models.Appointment, error) {
	var a models.Appointment
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAppointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.From.IsZero() {
		q = q.Where("start_time >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("start_time < ?", filter.To)
	}

	var appointments []models.Appointment
	if err := q.Order("start_time ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(appointment, "id = ?", appointment.ID).Error
}

func (r *GormAppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).First(appointment, "id = ?", appointment.ID).Error
}

func (r *GormAppointmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *GormAppointmentRepository) DeleteByMedspa(ctx context.Context, medspaID int64) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, "medspa_id = ?", medspaID).Error
}

func (r *GormAppointmentRepository) AddLink(ctx context.Context, appointmentID, serviceID int64) (bool, error) {
	link := models.AppointmentService{AppointmentID: appointmentID, ServiceID: serviceID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link)
	return res.RowsAffected > 0, res.Error
}

func (r *GormAppointmentRepository) RemoveLink(ctx context.Context, appointmentID, serviceID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("appointment_id = ? AND service_id = ?", appointmentID, serviceID).
		Delete(&models.AppointmentService{})
	return res.RowsAffected > 0, res.Error
}

func (r *GormAppointmentRepository) DeleteLinksByAppointment(ctx context.Context, appointmentID int64) error {
	return r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.AppointmentService{}).Error
}

func (r *GormAppointmentRepository) DeleteLinksByService(ctx context.Context, serviceID int64) error {
	return r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Delete(&models.AppointmentService{}).Error
}

func (r *GormAppointmentRepository) DeleteLinksByMedspa(ctx context.Context, medspaID int64) error {
	appointments := r.db.Model(&models.Appointment{}).Select("id").Where("medspa_id = ?", medspaID)
	services := r.db.Model(&models.Service{}).Select("id").Where("medspa_id = ?", medspaID)
	return r.db.WithContext(ctx).
		Where("appointment_id IN (?) OR service_id IN (?)", appointments, services).
		Delete(&models.AppointmentService{}).Error
}

func (r *GormAppointmentRepository) CountLinksByService(ctx context.Context, serviceID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AppointmentService{}).
		Where("service_id = ?", serviceID).
		Count(&count).Error
	return count, err
}

func (r *GormAppointmentRepository) ListServices(ctx context.Context, appointmentID int64) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Table("services").
		Select("services.*").
		Joins("JOIN appointment_services ON appointment_services.service_id = services.id").
		Where("appointment_services.appointment_id = ?", appointmentID).
		Order("services.id ASC").
		Scan(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormAppointmentRepository) ListByService(ctx context.Context, serviceID int64) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.*").
		Joins("JOIN appointment_services ON appointment_services.appointment_id = appointments.id").
		Where("appointment_services.service_id = ?", serviceID).
		Order("appointments.id ASC").
		Scan(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *GormAppointmentRepository) Totals(ctx context.Context, appointmentID int64) (LinkTotals, error) {
	var totals LinkTotals
	err := r.db.WithContext(ctx).
		Table("services").
		Select("COALESCE(SUM(services.duration), 0) AS total_duration, COALESCE(SUM(services.price), 0) AS total_price").
		Joins("JOIN appointment_services ON appointment_services.service_id = services.id").
		Where("appointment_services.appointment_id = ?", appointmentID).
		Scan(&totals).Error
	return totals, err
}

func (r *GormAppointmentRepository) CountScheduledByMedspa(ctx context.Context, from, to time.Time) ([]MedspaCount, error) {
	var counts []MedspaCount
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("medspa_id, COUNT(*) AS count").
		Where("status = ?", models.AppointmentStatusScheduled).
		Where("start_time >= ? AND start_time < ?", from, to).
		Group("medspa_id").
		Order("medspa_id ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
