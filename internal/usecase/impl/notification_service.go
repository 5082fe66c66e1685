package impl

import (
	"context"
	"log/slog"
	"time"

	"shipnotify/config"
	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/phone"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/domain/service"
	"shipnotify/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const shortIDLen = 8

type notificationService struct {
	notificationRepo repository.NotificationRepository
	imageStore       service.ImageStore
	validate         *validator.Validate
	defaultDays      int
	pageSize         int
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	imageStore service.ImageStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		imageStore:       imageStore,
		validate:         validator.New(),
		defaultDays:      cfg.Reminder.DefaultDays,
		pageSize:         cfg.Telegram.PageSize,
		logger:           logger,
	}
}

// CreateNotification validates the input, normalizes the phone number,
// derives the reminder time and persists a new notification.
func (s *notificationService) CreateNotification(ctx context.Context, input usecase.CreateNotificationInput) (*entity.ShipmentNotification, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	days := input.ReminderDays
	if days == 0 {
		days = s.defaultDays
	}

	now := time.Now()
	notification := &entity.ShipmentNotification{
		ID:           uuid.New(),
		CustomerName: input.CustomerName,
		PhoneNumber:  phone.Normalize(input.PhoneNumber),
		ImagePath:    input.ImagePath,
		ReminderDays: days,
		ReminderTime: entity.ReminderTimeFor(now, days),
		CreatedAt:    now,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "notification created",
		slog.String("id", notification.ID.String()),
		slog.String("phone", phone.Mask(notification.PhoneNumber)),
		slog.Int("reminderDays", days),
	)

	return notification, nil
}

// GetNotification resolves idText as a full UUID or as the 8-character
// short code shown in operator messages.
func (s *notificationService) GetNotification(ctx context.Context, idText string) (*entity.ShipmentNotification, error) {
	if id, err := uuid.Parse(idText); err == nil {
		return s.notificationRepo.FindNotificationByID(ctx, id)
	}

	if len(idText) == shortIDLen {
		return s.notificationRepo.FindNotificationByShortID(ctx, idText)
	}

	return nil, repository.ErrNotificationNotFound
}

// ListNotificationsPage retrieves one page of notifications in insertion
// order. Pages are 1-based; an out-of-range page clamps to the nearest
// valid one.
func (s *notificationService) ListNotificationsPage(ctx context.Context, page int) (*usecase.NotificationPage, error) {
	all, err := s.notificationRepo.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	total := int64(len(all))
	totalPages := (len(all) + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	return &usecase.NotificationPage{
		Items:      all[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// CountNotifications returns the number of stored notifications.
func (s *notificationService) CountNotifications(ctx context.Context) (int64, error) {
	return s.notificationRepo.CountNotifications(ctx)
}

// SearchByName retrieves notifications by case-insensitive substring match
// on the customer name.
func (s *notificationService) SearchByName(ctx context.Context, name string) ([]*entity.ShipmentNotification, error) {
	return s.notificationRepo.SearchByName(ctx, name)
}

// SearchByPhone retrieves notifications matching the query under the
// digits-only bidirectional suffix rule.
func (s *notificationService) SearchByPhone(ctx context.Context, query string) ([]*entity.ShipmentNotification, error) {
	return s.notificationRepo.SearchByPhone(ctx, query)
}

// DeleteNotification removes a notification and its stored image.
func (s *notificationService) DeleteNotification(ctx context.Context, idText string) error {
	notification, err := s.GetNotification(ctx, idText)
	if err != nil {
		return err
	}

	if err := s.notificationRepo.DeleteNotification(ctx, notification.ID); err != nil {
		return err
	}

	if notification.ImagePath != "" {
		if err := s.imageStore.Delete(ctx, notification.ImagePath); err != nil {
			// The record is gone; an orphaned image is only worth a warning.
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to delete notification image",
				slog.String("id", notification.ID.String()),
				slog.String("imagePath", notification.ImagePath),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

// ConfirmDelivery marks the notification delivered, with an optional proof
// image path.
func (s *notificationService) ConfirmDelivery(ctx context.Context, idText string, proofImage *string) (*entity.ShipmentNotification, error) {
	notification, err := s.GetNotification(ctx, idText)
	if err != nil {
		return nil, err
	}

	confirmedAt := time.Now()
	if err := s.notificationRepo.MarkDeliveryConfirmed(ctx, notification.ID, proofImage, confirmedAt); err != nil {
		return nil, errors.Wrap(err, "failed to confirm delivery")
	}

	notification.DeliveryConfirmed = true
	notification.DeliveryDate = &confirmedAt
	if proofImage != nil {
		notification.DeliveryProofImage = proofImage
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "delivery confirmed",
		slog.String("id", notification.ID.String()),
	)

	return notification, nil
}
