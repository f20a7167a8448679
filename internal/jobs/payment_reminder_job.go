package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PaymentReminderJob periodically emails customers about outstanding bills.
// A bill is reminder-eligible when it is Sent or PartiallyPaid and its bill
// date is older than the configured due window.
type PaymentReminderJob struct {
	handler  queries.GetOutstandingBillsQueryHandler
	notifier ports.Notifier
	schedule string
	dueDays  int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPaymentReminderJob creates a reminder job. schedule is a standard cron
// expression; dueDays is how many days a bill may age before reminders start.
func NewPaymentReminderJob(
	handler queries.GetOutstandingBillsQueryHandler,
	notifier ports.Notifier,
	schedule string,
	dueDays int,
	logger *slog.Logger,
) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler:  handler,
		notifier: notifier,
		schedule: schedule,
		dueDays:  dueDays,
		cron:     cron.New(),
		logger:   logger.With("component", "payment_reminder_job"),
	}
}

// Start schedules the reminder job.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}

func (j *PaymentReminderJob) run() {
	ctx := context.Background()

	dueBefore := time.Now().AddDate(0, 0, -j.dueDays)
	query, err := queries.NewGetOutstandingBillsQuery(dueBefore)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build outstanding bills query", "error", err)
		return
	}

	bills, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load outstanding bills", "error", err)
		return
	}

	for _, bill := range bills {
		if bill.CustomerEmail == "" {
			j.logger.WarnContext(ctx, "Skipping reminder, customer has no email address",
				"billNo", bill.BillNo)
			continue
		}

		notification := ports.BillNotification{
			Recipient:         bill.CustomerEmail,
			CustomerName:      bill.CustomerName,
			BillNo:            bill.BillNo,
			BillDate:          bill.BillDate.Format("02-01-2006"),
			FinalAmount:       bill.FinalAmount.String(),
			OutstandingAmount: bill.Outstanding().String(),
		}

		if err = j.notifier.SendPaymentReminder(ctx, notification); err != nil {
			j.logger.ErrorContext(ctx, "Failed to send payment reminder",
				"billNo", bill.BillNo, "recipient", bill.CustomerEmail, "error", err)
		}
	}
}
