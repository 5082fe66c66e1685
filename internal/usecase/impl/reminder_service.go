package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shipnotify/internal/domain/entity"
	"shipnotify/internal/domain/phone"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/domain/service"
	"shipnotify/internal/usecase"

	"github.com/pkg/errors"
)

type reminderService struct {
	notificationRepo repository.NotificationRepository
	adminRepo        repository.AdminRepository
	templateUsecase  usecase.TemplateUsecase
	smsSender        service.SMSSender
	messenger        service.Messenger
	imageStore       service.ImageStore
	logger           *slog.Logger
}

// NewReminderService creates a new reminder service instance
func NewReminderService(
	notificationRepo repository.NotificationRepository,
	adminRepo repository.AdminRepository,
	templateUsecase usecase.TemplateUsecase,
	smsSender service.SMSSender,
	messenger service.Messenger,
	imageStore service.ImageStore,
	logger *slog.Logger,
) usecase.ReminderUsecase {
	return &reminderService{
		notificationRepo: notificationRepo,
		adminRepo:        adminRepo,
		templateUsecase:  templateUsecase,
		smsSender:        smsSender,
		messenger:        messenger,
		imageStore:       imageStore,
		logger:           logger,
	}
}

// RunPendingReminders finds every due reminder, dispatches it and marks it
// sent. A dispatch failure leaves that notification pending so the next
// sweep retries it.
func (s *reminderService) RunPendingReminders(ctx context.Context) (*usecase.ReminderRunResult, error) {
	pending, err := s.notificationRepo.FindPendingReminders(ctx, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending reminders")
	}

	result := &usecase.ReminderRunResult{Pending: len(pending)}
	if len(pending) == 0 {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "no reminders due")

		return result, nil
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "reminders due",
		slog.Int("count", len(pending)),
	)

	for _, notification := range pending {
		if err := s.SendReminder(ctx, notification); err != nil {
			result.Failed++
			s.logger.LogAttrs(ctx, slog.LevelError, "reminder dispatch failed",
				slog.String("id", notification.ID.String()),
				slog.String("customer", notification.CustomerName),
				slog.String("error", err.Error()),
			)

			continue
		}
		result.Sent++
	}

	return result, nil
}

// SendReminder dispatches the reminder for one notification and marks it
// sent on success. The customer SMS is the gating step; admin copies are
// best effort and never leave the reminder pending.
func (s *reminderService) SendReminder(ctx context.Context, notification *entity.ShipmentNotification) error {
	message, err := s.templateUsecase.RenderTemplate(ctx, entity.TemplateSMS, notification)
	if err != nil {
		return err
	}

	if err := s.smsSender.SendSMS(ctx, notification.PhoneNumber, message); err != nil {
		return errors.Wrap(err, "failed to send reminder SMS")
	}

	s.notifyAdmins(ctx, notification, fmt.Sprintf(
		"تم إرسال تذكير للعميل:\n\nالاسم: %s\nالهاتف: %s\nرمز الإشعار: %s",
		notification.CustomerName, notification.PhoneNumber, notification.ShortID(),
	), true)

	if err := s.notificationRepo.MarkReminderSent(ctx, notification.ID); err != nil {
		return errors.Wrap(err, "failed to mark reminder sent")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "reminder sent",
		slog.String("id", notification.ID.String()),
		slog.String("phone", phone.Mask(notification.PhoneNumber)),
	)

	return nil
}

// SendVerification dispatches a delivery-verification message for one
// notification without changing its state.
func (s *reminderService) SendVerification(ctx context.Context, notification *entity.ShipmentNotification) error {
	message, err := s.templateUsecase.RenderTemplate(ctx, entity.TemplateVerification, notification)
	if err != nil {
		return err
	}

	if err := s.smsSender.SendSMS(ctx, notification.PhoneNumber, message); err != nil {
		return errors.Wrap(err, "failed to send verification SMS")
	}

	s.notifyAdmins(ctx, notification, fmt.Sprintf(
		"تم إرسال رسالة تحقق للعميل:\n\nالاسم: %s\nالهاتف: %s\nرمز الإشعار: %s",
		notification.CustomerName, notification.PhoneNumber, notification.ShortID(),
	), false)

	s.logger.LogAttrs(ctx, slog.LevelInfo, "verification sent",
		slog.String("id", notification.ID.String()),
	)

	return nil
}

// notifyAdmins sends a copy of the dispatch to every administrator,
// optionally attaching the shipment image. Failures are logged only.
func (s *reminderService) notifyAdmins(ctx context.Context, notification *entity.ShipmentNotification, text string, withImage bool) {
	admins, err := s.adminRepo.ListAdmins(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to list admins for copy",
			slog.String("error", err.Error()),
		)

		return
	}

	var image []byte
	if withImage && notification.ImagePath != "" {
		image, err = s.imageStore.Load(ctx, notification.ImagePath)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to load shipment image",
				slog.String("imagePath", notification.ImagePath),
				slog.String("error", err.Error()),
			)
			image = nil
		}
	}

	for _, admin := range admins {
		if _, err := s.messenger.SendMessage(ctx, admin.TelegramID, text, nil); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to message admin",
				slog.Int64("adminId", admin.TelegramID),
				slog.String("error", err.Error()),
			)

			continue
		}

		if image != nil {
			caption := "صورة الإشعار لـ " + notification.CustomerName
			if err := s.messenger.SendPhoto(ctx, admin.TelegramID, notification.ShortID()+".jpg", image, caption); err != nil {
				s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to send image to admin",
					slog.Int64("adminId", admin.TelegramID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
