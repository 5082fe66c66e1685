package usecase

import (
	"context"

	"shipnotify/internal/domain/entity"
)

// ReminderRunResult summarizes one reminder sweep.
type ReminderRunResult struct {
	Pending int // reminders that were due when the sweep started
	Sent    int // reminders delivered and marked sent
	Failed  int // reminders left pending for the next sweep
}

// ReminderUsecase defines the interface for the reminder and verification
// dispatch use cases
type ReminderUsecase interface {
	// RunPendingReminders finds every due reminder, dispatches it and
	// marks it sent. A dispatch failure leaves that notification pending
	// so the next sweep retries it.
	RunPendingReminders(ctx context.Context) (*ReminderRunResult, error)

	// SendReminder dispatches the reminder for one notification and marks
	// it sent on success.
	SendReminder(ctx context.Context, notification *entity.ShipmentNotification) error

	// SendVerification dispatches a delivery-verification message for one
	// notification. It does not change the notification's state.
	SendVerification(ctx context.Context, notification *entity.ShipmentNotification) error
}
