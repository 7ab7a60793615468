package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"medspa-backend/models"
	"medspa-backend/repository"
)

// AppointmentAggregate owns an appointment's links to services. Totals are
// always recomputed from the current link rows.
type AppointmentAggregate struct{}

// AddService links svc to appt. Linking an already linked pair succeeds
// without writing; the returned bool reports whether a row was inserted.
func (AppointmentAggregate) AddService(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment, svc *models.Service) (bool, error) {
	if appt == nil || appt.ID == 0 {
		return false, &StateError{Reason: "cannot add services to an unsaved appointment"}
	}
	if svc == nil || svc.ID == 0 {
		return false, &StateError{Reason: "cannot add an unsaved service"}
	}
	if svc.MedspaID != appt.MedspaID {
		return false, invalid("service_ids", "service must belong to the same medspa as the appointment")
	}

	inserted, err := uow.Appointments.AddLink(ctx, appt.ID, svc.ID)
	if err != nil {
		return false, errors.Wrapf(err, "link service %d to appointment %d", svc.ID, appt.ID)
	}
	return inserted, nil
}

// RemoveService unlinks svc from appt and reports whether a link existed.
func (AppointmentAggregate) RemoveService(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment, svc *models.Service) (bool, error) {
	if appt == nil || appt.ID == 0 || svc == nil || svc.ID == 0 {
		return false, nil
	}
	removed, err := uow.Appointments.RemoveLink(ctx, appt.ID, svc.ID)
	if err != nil {
		return false, errors.Wrapf(err, "unlink service %d from appointment %d", svc.ID, appt.ID)
	}
	return removed, nil
}

func (AppointmentAggregate) ListServices(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment) ([]models.Service, error) {
	if appt == nil || appt.ID == 0 {
		return []models.Service{}, nil
	}
	services, err := uow.Appointments.ListServices(ctx, appt.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "list services of appointment %d", appt.ID)
	}
	return services, nil
}

func (a AppointmentAggregate) TotalDuration(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment) (int, error) {
	totals, err := a.Totals(ctx, uow, appt)
	return totals.Duration, err
}

func (a AppointmentAggregate) TotalPrice(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment) (decimal.Decimal, error) {
	totals, err := a.Totals(ctx, uow, appt)
	return totals.Price, err
}

// Totals sums duration and price over the services linked right now.
func (AppointmentAggregate) Totals(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment) (Totals, error) {
	if appt == nil || appt.ID == 0 {
		return Totals{Price: decimal.Zero}, nil
	}
	sums, err := uow.Appointments.Totals(ctx, appt.ID)
	if err != nil {
		return Totals{Price: decimal.Zero}, errors.Wrapf(err, "total appointment %d", appt.ID)
	}
	// prices carry two decimal places; sqlite sums them as floats
	return Totals{Duration: int(sums.TotalDuration), Price: sums.TotalPrice.Round(2)}, nil
}

// UpcomingAppointments returns the appointments svc is booked on that start
// after now and are still scheduled.
func (AppointmentAggregate) UpcomingAppointments(ctx context.Context, uow *repository.UnitOfWork, svc *models.Service, now time.Time) ([]models.Appointment, error) {
	upcoming := []models.Appointment{}
	if svc == nil || svc.ID == 0 {
		return upcoming, nil
	}
	linked, err := uow.Appointments.ListByService(ctx, svc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "list appointments of service %d", svc.ID)
	}
	for _, a := range linked {
		if a.StartTime.After(now) && a.Status == models.AppointmentStatusScheduled {
			upcoming = append(upcoming, a)
		}
	}
	return upcoming, nil
}

// Totals is the derived duration (minutes) and price of an appointment.
type Totals struct {
	Duration int
	Price    decimal.Decimal
}
