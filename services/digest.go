package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"medspa-backend/repository"
	"medspa-backend/utils"
)

// DigestJob logs, per medspa, how many scheduled appointments fall in the
// coming window. It runs on a cron schedule.
type DigestJob struct {
	store  *repository.Store
	window int
	now    func() time.Time
	cron   *cron.Cron
}

// NewDigestJob covers the next windowDays calendar days, today included.
func NewDigestJob(store *repository.Store, windowDays int) *DigestJob {
	if windowDays <= 0 {
		windowDays = 1
	}
	return &DigestJob{store: store, window: windowDays, now: time.Now}
}

// Start registers the job under schedule (standard five field cron syntax) and
// starts the scheduler.
func (j *DigestJob) Start(schedule string) error {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			zap.L().Error("appointment digest failed", zap.Error(err))
		}
	}); err != nil {
		return errors.Wrapf(err, "schedule digest %q", schedule)
	}
	c.Start()
	j.cron = c
	zap.S().Infof("appointment digest scheduled: %s", schedule)
	return nil
}

// Stop waits for a running digest to finish.
func (j *DigestJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}

func (j *DigestJob) Run(ctx context.Context) ([]repository.MedspaCount, error) {
	from := utils.BeginningOfDay(j.now().UTC())
	to := from.AddDate(0, 0, j.window)

	counts, err := j.store.Reader(ctx).Appointments.CountScheduledByMedspa(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "count scheduled appointments")
	}

	var total int64
	for _, c := range counts {
		total += c.Count
		zap.L().Info("upcoming appointments",
			zap.Int64("medspa_id", c.MedspaID),
			zap.Int64("scheduled", c.Count),
			zap.Int("days", utils.DaysBetween(from, to)))
	}
	zap.L().Info("appointment digest completed",
		zap.Int("medspas", len(counts)),
		zap.Int64("scheduled", total))
	return counts, nil
}
