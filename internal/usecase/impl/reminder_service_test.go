package impl

import (
	"context"
	"testing"
	"time"

	"shipnotify/internal/domain/entity"
	mockRepo "shipnotify/internal/mocks/repository"
	mockSvc "shipnotify/internal/mocks/service"
	"shipnotify/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReminderService(t *testing.T) (
	usecase.ReminderUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockAdminRepository,
	*mockSvc.MockSMSSender,
	*mockSvc.MockMessenger,
	*mockSvc.MockImageStore,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	templateRepo := mockRepo.NewMockTemplateRepository(t)
	smsSender := mockSvc.NewMockSMSSender(t)
	messenger := mockSvc.NewMockMessenger(t)
	imageStore := mockSvc.NewMockImageStore(t)

	// Real template service over a repo that always falls back to defaults.
	templateRepo.EXPECT().GetTemplate(mock.Anything, mock.Anything).
		Return(&entity.MessageTemplate{
			Name: entity.TemplateSMS,
			Text: "مرحباً {customer_name}، رمزك {notification_id}",
		}, nil).
		Maybe()
	templateUsecase := NewTemplateService(templateRepo, testLogger())

	service := NewReminderService(
		notificationRepo, adminRepo, templateUsecase,
		smsSender, messenger, imageStore, testLogger(),
	)

	return service, notificationRepo, adminRepo, smsSender, messenger, imageStore
}

func pendingNotification() *entity.ShipmentNotification {
	now := time.Now()

	return &entity.ShipmentNotification{
		ID:           uuid.New(),
		CustomerName: "أحمد",
		PhoneNumber:  "+963911234567",
		ReminderDays: 3,
		ReminderTime: now.Add(-time.Hour),
		CreatedAt:    now.Add(-73 * time.Hour),
	}
}

func TestReminderService_RunPendingReminders_MarksSent(t *testing.T) {
	service, notificationRepo, adminRepo, smsSender, messenger, _ := createTestReminderService(t)
	ctx := context.Background()

	notification := pendingNotification()

	notificationRepo.EXPECT().FindPendingReminders(ctx, mock.Anything).
		Return([]*entity.ShipmentNotification{notification}, nil)
	smsSender.EXPECT().SendSMS(ctx, notification.PhoneNumber, mock.Anything).Return(nil)
	adminRepo.EXPECT().ListAdmins(ctx).
		Return([]*entity.Administrator{{TelegramID: 100}}, nil)
	messenger.EXPECT().SendMessage(ctx, int64(100), mock.Anything, mock.Anything).
		Return(int64(1), nil)
	notificationRepo.EXPECT().MarkReminderSent(ctx, notification.ID).Return(nil)

	result, err := service.RunPendingReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Pending)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 0, result.Failed)
}

func TestReminderService_RunPendingReminders_SMSFailureLeavesPending(t *testing.T) {
	service, notificationRepo, _, smsSender, _, _ := createTestReminderService(t)
	ctx := context.Background()

	notification := pendingNotification()

	notificationRepo.EXPECT().FindPendingReminders(ctx, mock.Anything).
		Return([]*entity.ShipmentNotification{notification}, nil)
	smsSender.EXPECT().SendSMS(ctx, notification.PhoneNumber, mock.Anything).
		Return(errors.New("carrier down"))
	// MarkReminderSent must not be called: the reminder stays pending.

	result, err := service.RunPendingReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Pending)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestReminderService_RunPendingReminders_NothingDue(t *testing.T) {
	service, notificationRepo, _, _, _, _ := createTestReminderService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().FindPendingReminders(ctx, mock.Anything).
		Return([]*entity.ShipmentNotification{}, nil)

	result, err := service.RunPendingReminders(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Pending)
}

func TestReminderService_SendReminder_AdminCopyFailureStillMarksSent(t *testing.T) {
	service, notificationRepo, adminRepo, smsSender, messenger, _ := createTestReminderService(t)
	ctx := context.Background()

	notification := pendingNotification()

	smsSender.EXPECT().SendSMS(ctx, notification.PhoneNumber, mock.Anything).Return(nil)
	adminRepo.EXPECT().ListAdmins(ctx).
		Return([]*entity.Administrator{{TelegramID: 100}}, nil)
	messenger.EXPECT().SendMessage(ctx, int64(100), mock.Anything, mock.Anything).
		Return(int64(0), errors.New("blocked"))
	notificationRepo.EXPECT().MarkReminderSent(ctx, notification.ID).Return(nil)

	err := service.SendReminder(ctx, notification)

	assert.NoError(t, err)
}

func TestReminderService_SendReminder_AttachesImageForAdmins(t *testing.T) {
	service, notificationRepo, adminRepo, smsSender, messenger, imageStore := createTestReminderService(t)
	ctx := context.Background()

	notification := pendingNotification()
	notification.ImagePath = "images/ship.jpg"

	smsSender.EXPECT().SendSMS(ctx, notification.PhoneNumber, mock.Anything).Return(nil)
	adminRepo.EXPECT().ListAdmins(ctx).
		Return([]*entity.Administrator{{TelegramID: 100}}, nil)
	imageStore.EXPECT().Load(ctx, "images/ship.jpg").Return([]byte{0xFF, 0xD8}, nil)
	messenger.EXPECT().SendMessage(ctx, int64(100), mock.Anything, mock.Anything).
		Return(int64(1), nil)
	messenger.EXPECT().SendPhoto(ctx, int64(100), mock.Anything, mock.Anything, mock.Anything).
		Return(nil)
	notificationRepo.EXPECT().MarkReminderSent(ctx, notification.ID).Return(nil)

	err := service.SendReminder(ctx, notification)

	assert.NoError(t, err)
}

func TestReminderService_SendVerification_NoStateChange(t *testing.T) {
	service, _, adminRepo, smsSender, messenger, _ := createTestReminderService(t)
	ctx := context.Background()

	notification := pendingNotification()

	smsSender.EXPECT().SendSMS(ctx, notification.PhoneNumber, mock.Anything).Return(nil)
	adminRepo.EXPECT().ListAdmins(ctx).
		Return([]*entity.Administrator{{TelegramID: 100}}, nil)
	messenger.EXPECT().SendMessage(ctx, int64(100), mock.Anything, mock.Anything).
		Return(int64(1), nil)
	// No MarkReminderSent and no MarkDeliveryConfirmed expectations.

	err := service.SendVerification(ctx, notification)

	assert.NoError(t, err)
}
