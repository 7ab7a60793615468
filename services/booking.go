package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"medspa-backend/models"
	"medspa-backend/repository"
	"medspa-backend/utils"
)

// AppointmentRequest is the create payload. Any client supplied status is ignored.
type AppointmentRequest struct {
	MedspaID   *int64     `json:"medspa_id" validate:"required"`
	StartTime  *time.Time `json:"start_time" validate:"required"`
	Status     *string    `json:"status"`
	ServiceIDs []int64    `json:"service_ids"`
}

// AppointmentPatch is the update payload. A non-nil ServiceIDs replaces the
// whole linked set, an empty slice clears it.
type AppointmentPatch struct {
	Status     *string    `json:"status"`
	StartTime  *time.Time `json:"start_time"`
	ServiceIDs *[]int64   `json:"service_ids"`
}

// AppointmentQuery filters List. StartDate matches appointments starting on that calendar day.
type AppointmentQuery struct {
	Status    string
	StartDate *time.Time
}

// AppointmentView is an appointment with its derived totals.
type AppointmentView struct {
	models.Appointment
	TotalDuration int             `json:"total_duration"`
	TotalPrice    decimal.Decimal `json:"total_price"`
}

// Booking runs appointment create/update as one unit of work each: every
// step shares a transaction that is committed only at the end.
type Booking struct {
	store     *repository.Store
	aggregate AppointmentAggregate
	now       func() time.Time
}

func NewBooking(store *repository.Store) *Booking {
	return &Booking{store: store, now: time.Now}
}

func (b *Booking) Create(ctx context.Context, req AppointmentRequest) (view *AppointmentView, err error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	uow, err := b.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer b.finish(uow, "create", &err)

	if _, err := uow.Medspas.GetByID(ctx, *req.MedspaID); err != nil {
		return nil, lookupErr(err, "medspa", *req.MedspaID)
	}

	appt := &models.Appointment{
		MedspaID:  *req.MedspaID,
		StartTime: req.StartTime.UTC(),
		Status:    models.AppointmentStatusScheduled,
	}
	if err := uow.Appointments.Create(ctx, appt); err != nil {
		return nil, errors.Wrap(err, "create appointment")
	}

	if err := b.attach(ctx, uow, appt, req.ServiceIDs); err != nil {
		return nil, err
	}

	view, err = b.view(ctx, uow, appt)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	zap.L().Info("appointment created",
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("medspa_id", appt.MedspaID),
		zap.Int("services", len(req.ServiceIDs)))
	return view, nil
}

func (b *Booking) Update(ctx context.Context, id int64, patch AppointmentPatch) (view *AppointmentView, err error) {
	uow, err := b.store.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer b.finish(uow, "update", &err)

	appt, err := uow.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "appointment", id)
	}

	if patch.Status != nil {
		status := models.AppointmentStatus(*patch.Status)
		if status != models.AppointmentStatusCompleted && status != models.AppointmentStatusCanceled {
			return nil, invalid("status", "must be completed or canceled")
		}
		appt.Status = status
	}

	if patch.StartTime != nil {
		appt.StartTime = patch.StartTime.UTC()
	}

	if patch.ServiceIDs != nil {
		current, err := b.aggregate.ListServices(ctx, uow, appt)
		if err != nil {
			return nil, err
		}
		for i := range current {
			if _, err := b.aggregate.RemoveService(ctx, uow, appt, &current[i]); err != nil {
				return nil, err
			}
		}
		if err := b.attach(ctx, uow, appt, *patch.ServiceIDs); err != nil {
			return nil, err
		}
	}

	if err := uow.Appointments.Update(ctx, appt); err != nil {
		return nil, errors.Wrapf(err, "update appointment %d", id)
	}

	view, err = b.view(ctx, uow, appt)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	zap.L().Info("appointment updated",
		zap.Int64("appointment_id", appt.ID),
		zap.String("status", string(appt.Status)))
	return view, nil
}

func (b *Booking) Get(ctx context.Context, id int64) (*AppointmentView, error) {
	uow := b.store.Reader(ctx)
	appt, err := uow.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "appointment", id)
	}
	return b.view(ctx, uow, appt)
}

func (b *Booking) List(ctx context.Context, query AppointmentQuery) ([]AppointmentView, error) {
	filter := repository.AppointmentFilter{Status: models.AppointmentStatus(query.Status)}
	if query.StartDate != nil {
		day := utils.BeginningOfDay(query.StartDate.UTC())
		filter.From = day
		filter.To = day.AddDate(0, 0, 1)
	}

	uow := b.store.Reader(ctx)
	appointments, err := uow.Appointments.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list appointments")
	}

	views := make([]AppointmentView, 0, len(appointments))
	for i := range appointments {
		v, err := b.view(ctx, uow, &appointments[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

// Delete removes the appointment and its links; false when it did not exist.
func (b *Booking) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := b.store.Transaction(ctx, func(uow *repository.UnitOfWork) error {
		if err := uow.Appointments.DeleteLinksByAppointment(ctx, id); err != nil {
			return errors.Wrapf(err, "delete links of appointment %d", id)
		}
		var err error
		deleted, err = uow.Appointments.Delete(ctx, id)
		return errors.Wrapf(err, "delete appointment %d", id)
	})
	return deleted, err
}

// Upcoming lists the scheduled future appointments a service is booked on.
func (b *Booking) Upcoming(ctx context.Context, serviceID int64) ([]models.Appointment, error) {
	uow := b.store.Reader(ctx)
	svc, err := uow.Services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, lookupErr(err, "service", serviceID)
	}
	return b.aggregate.UpcomingAppointments(ctx, uow, svc, b.now())
}

func (b *Booking) attach(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment, serviceIDs []int64) error {
	for _, id := range serviceIDs {
		svc, err := uow.Services.GetByID(ctx, id)
		if err != nil {
			return lookupErr(err, "service", id)
		}
		if _, err := b.aggregate.AddService(ctx, uow, appt, svc); err != nil {
			return err
		}
	}
	return nil
}

func (b *Booking) view(ctx context.Context, uow *repository.UnitOfWork, appt *models.Appointment) (*AppointmentView, error) {
	totals, err := b.aggregate.Totals(ctx, uow, appt)
	if err != nil {
		return nil, err
	}
	return &AppointmentView{
		Appointment:   *appt,
		TotalDuration: totals.Duration,
		TotalPrice:    totals.Price,
	}, nil
}

// finish rolls back whatever was not committed and logs why.
func (b *Booking) finish(uow *repository.UnitOfWork, op string, errp *error) {
	if rbErr := uow.Rollback(); rbErr != nil {
		zap.L().Error("appointment rollback failed", zap.String("op", op), zap.Error(rbErr))
	}
	if *errp != nil {
		zap.L().Debug("appointment "+op+" rolled back", zap.Error(*errp))
	}
}
