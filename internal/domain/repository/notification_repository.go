// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"shipnotify/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for shipment persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for shipment-notification
// database operations. All list-shaped results preserve insertion order
// (creation time ascending); search results carry no ranking.
type NotificationRepository interface {
	// CreateNotification persists a new shipment notification.
	CreateNotification(ctx context.Context, notification *entity.ShipmentNotification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ShipmentNotification, error)

	// FindNotificationByShortID retrieves a notification by the 8-character
	// ID prefix shown in operator messages. An ambiguous prefix returns
	// ErrNotificationNotFound rather than an arbitrary record.
	FindNotificationByShortID(ctx context.Context, shortID string) (*entity.ShipmentNotification, error)

	// ListNotifications retrieves every notification in insertion order.
	ListNotifications(ctx context.Context) ([]*entity.ShipmentNotification, error)

	// CountNotifications returns the number of stored notifications.
	CountNotifications(ctx context.Context) (int64, error)

	// UpdateNotification merges the non-nil patch fields into the matching
	// record. Returns ErrNotificationNotFound when the id is unknown.
	UpdateNotification(ctx context.Context, id uuid.UUID, patch entity.NotificationPatch) error

	// DeleteNotification removes a notification by ID.
	DeleteNotification(ctx context.Context, id uuid.UUID) error

	// SearchByName retrieves notifications whose customer name contains the
	// given substring, case-insensitively.
	SearchByName(ctx context.Context, name string) ([]*entity.ShipmentNotification, error)

	// SearchByPhone retrieves notifications whose stored phone matches the
	// query under the digits-only bidirectional suffix rule.
	SearchByPhone(ctx context.Context, query string) ([]*entity.ShipmentNotification, error)

	// FindPendingReminders retrieves notifications whose reminder is due at
	// the given instant and has not been sent yet.
	FindPendingReminders(ctx context.Context, now time.Time) ([]*entity.ShipmentNotification, error)

	// MarkReminderSent flips the reminder flag to sent. The transition is
	// one-way; marking an already-sent reminder is a harmless overwrite.
	MarkReminderSent(ctx context.Context, id uuid.UUID) error

	// MarkDeliveryConfirmed flips the delivery flag to confirmed, records the
	// confirmation time and, when non-nil, the proof image path.
	// Re-confirmation overwrites the confirmation time without error.
	MarkDeliveryConfirmed(ctx context.Context, id uuid.UUID, proofImage *string, confirmedAt time.Time) error
}
