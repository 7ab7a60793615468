package models

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

type Appointment struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	MedspaID  int64             `gorm:"index;not null" json:"medspa_id"`
	StartTime time.Time         `gorm:"not null;index" json:"start_time"`
	Status    AppointmentStatus `gorm:"type:varchar(32);not null;default:'scheduled';index" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	Medspa *Medspa `gorm:"foreignKey:MedspaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// appointment_services links appointments and services; the pair is unique.
type AppointmentService struct {
	AppointmentID int64 `gorm:"primaryKey"`
	ServiceID     int64 `gorm:"primaryKey;index"`

	Appointment *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Service     *Service     `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (AppointmentService) TableName() string {
	return "appointment_services"
}
