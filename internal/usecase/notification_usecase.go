// Package usecase defines the application-facing interfaces of the
// notification assistant.
package usecase

import (
	"context"

	"shipnotify/internal/domain/entity"
)

// CreateNotificationInput carries the operator-supplied fields for a new
// shipment notification. The phone number may arrive in local form and is
// normalized before storage.
type CreateNotificationInput struct {
	CustomerName string `json:"customer_name" validate:"required,min=1,max=100"`
	PhoneNumber  string `json:"phone_number" validate:"required,min=4,max=20"`
	ImagePath    string `json:"image_path"`
	ReminderDays int    `json:"reminder_days" validate:"gte=0,lte=365"`
}

// NotificationPage is one page of a paginated notification listing.
type NotificationPage struct {
	Items      []*entity.ShipmentNotification
	Page       int
	TotalPages int
	Total      int64
}

// NotificationUsecase defines the interface for shipment-notification
// management use cases
type NotificationUsecase interface {
	// CreateNotification validates the input, normalizes the phone number,
	// derives the reminder time and persists a new notification.
	CreateNotification(ctx context.Context, input CreateNotificationInput) (*entity.ShipmentNotification, error)

	// GetNotification resolves idText as a full UUID or as the 8-character
	// short code shown in operator messages.
	GetNotification(ctx context.Context, idText string) (*entity.ShipmentNotification, error)

	// ListNotificationsPage retrieves one page of notifications in
	// insertion order. Pages are 1-based; an out-of-range page clamps to
	// the nearest valid one.
	ListNotificationsPage(ctx context.Context, page int) (*NotificationPage, error)

	// CountNotifications returns the number of stored notifications.
	CountNotifications(ctx context.Context) (int64, error)

	// SearchByName retrieves notifications by case-insensitive substring
	// match on the customer name.
	SearchByName(ctx context.Context, name string) ([]*entity.ShipmentNotification, error)

	// SearchByPhone retrieves notifications matching the query under the
	// digits-only bidirectional suffix rule.
	SearchByPhone(ctx context.Context, query string) ([]*entity.ShipmentNotification, error)

	// DeleteNotification removes a notification and its stored image.
	DeleteNotification(ctx context.Context, idText string) error

	// ConfirmDelivery marks the notification delivered, with an optional
	// proof image path.
	ConfirmDelivery(ctx context.Context, idText string, proofImage *string) (*entity.ShipmentNotification, error)
}
