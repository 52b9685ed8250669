package job

import (
	"context"
	"fmt"
	"time"

	"github.com/saikiran2022/Health-care/internal/converter"
	"github.com/saikiran2022/Health-care/internal/domain/repository"
	"github.com/saikiran2022/Health-care/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const reminderRunTimeout = time.Minute

// ReminderJob publishes a reminder event for every appointment booked for tomorrow
// that left a phone number or email.
type ReminderJob struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	publisher       service.EventPublisher
	now             func() time.Time
}

func NewReminderJob(log *logrus.Logger, appointmentRepo repository.AppointmentRepository, publisher service.EventPublisher) *ReminderJob {
	return &ReminderJob{
		log:             log,
		appointmentRepo: appointmentRepo,
		publisher:       publisher,
		now:             time.Now,
	}
}

// Run sends the reminders and returns how many were published
func (j *ReminderJob) Run(ctx context.Context) (int, error) {
	tomorrow := j.now().AddDate(0, 0, 1).Format("2006-01-02")

	appointments, err := j.appointmentRepo.FindByDate(ctx, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("find appointments for %s: %w", tomorrow, err)
	}

	sent := 0
	for i := range appointments {
		appointment := &appointments[i]
		if !appointment.HasContact() {
			continue
		}

		event := converter.AppointmentToEvent(appointment)
		if err := j.publisher.PublishJSON(ctx, service.EventAppointmentReminder, event); err != nil {
			j.log.Warnf("Failed to publish reminder for appointment %s: %+v", appointment.ID, err)
			continue
		}
		sent++
	}

	return sent, nil
}

// Schedule registers the job on c under the given cron spec
func (j *ReminderJob) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderRunTimeout)
		defer cancel()

		j.log.Info("Running job: appointment reminders")
		sent, err := j.Run(ctx)
		if err != nil {
			j.log.Errorf("Reminder job failed: %+v", err)
			return
		}
		j.log.Infof("Reminder job published %d reminders", sent)
	})
}
