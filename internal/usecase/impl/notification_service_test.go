package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shipnotify/config"
	"shipnotify/internal/domain/entity"
	"shipnotify/internal/domain/repository"
	mockRepo "shipnotify/internal/mocks/repository"
	mockSvc "shipnotify/internal/mocks/service"
	"shipnotify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Telegram = &config.TelegramConfig{PageSize: 5}
	cfg.Reminder = &config.ReminderConfig{Interval: time.Minute, DefaultDays: 3}

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockImageStore,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	service := NewNotificationService(notificationRepo, imageStore, newTestConfig(), testLogger())

	return service, notificationRepo, imageStore
}

func TestNotificationService_CreateNotification_Success(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	var created *entity.ShipmentNotification
	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.ShipmentNotification)
		}).
		Return(nil)

	before := time.Now()
	notification, err := service.CreateNotification(ctx, usecase.CreateNotificationInput{
		CustomerName: "أحمد محمد",
		PhoneNumber:  "0911234567",
		ImagePath:    "images/x.jpg",
		ReminderDays: 7,
	})
	after := time.Now()

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created, notification)
	assert.Equal(t, "+963911234567", notification.PhoneNumber)
	assert.Equal(t, 7, notification.ReminderDays)
	assert.False(t, notification.ReminderSent)
	assert.False(t, notification.DeliveryConfirmed)

	// Reminder time is exactly createdAt plus 7 whole days.
	wantMin := before.Add(7 * 24 * time.Hour)
	wantMax := after.Add(7 * 24 * time.Hour)
	assert.False(t, notification.ReminderTime.Before(wantMin))
	assert.False(t, notification.ReminderTime.After(wantMax))
}

func TestNotificationService_CreateNotification_DefaultsReminderDays(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	notification, err := service.CreateNotification(ctx, usecase.CreateNotificationInput{
		CustomerName: "سارة",
		PhoneNumber:  "0531123456",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, notification.ReminderDays)
	assert.Equal(t, "+90531123456", notification.PhoneNumber)
}

func TestNotificationService_CreateNotification_ValidationFailure(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	_, err := service.CreateNotification(context.Background(), usecase.CreateNotificationInput{
		CustomerName: "",
		PhoneNumber:  "0911234567",
	})

	assert.Error(t, err)
}

func TestNotificationService_GetNotification_ByShortID(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	want := &entity.ShipmentNotification{ID: uuid.New()}
	shortID := want.ShortID()

	notificationRepo.EXPECT().FindNotificationByShortID(ctx, shortID).Return(want, nil)

	got, err := service.GetNotification(ctx, shortID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotificationService_GetNotification_MalformedID(t *testing.T) {
	service, _, _ := createTestNotificationService(t)

	_, err := service.GetNotification(context.Background(), "nope")

	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationService_ListNotificationsPage_ClampsOutOfRange(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	all := make([]*entity.ShipmentNotification, 7)
	for i := range all {
		all[i] = &entity.ShipmentNotification{ID: uuid.New()}
	}
	notificationRepo.EXPECT().ListNotifications(ctx).Return(all, nil)

	page, err := service.ListNotificationsPage(ctx, 99)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, int64(7), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, all[5], page.Items[0])
}

func TestNotificationService_ListNotificationsPage_Empty(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().ListNotifications(ctx).Return([]*entity.ShipmentNotification{}, nil)

	page, err := service.ListNotificationsPage(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestNotificationService_DeleteNotification_RemovesImage(t *testing.T) {
	service, notificationRepo, imageStore := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.ShipmentNotification{ID: uuid.New(), ImagePath: "images/a.jpg"}

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().DeleteNotification(ctx, notification.ID).Return(nil)
	imageStore.EXPECT().Delete(ctx, "images/a.jpg").Return(nil)

	err := service.DeleteNotification(ctx, notification.ID.String())

	assert.NoError(t, err)
}

func TestNotificationService_ConfirmDelivery_RecordsProof(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notification := &entity.ShipmentNotification{ID: uuid.New()}
	proof := "images/proof.jpg"

	notificationRepo.EXPECT().FindNotificationByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkDeliveryConfirmed(ctx, notification.ID, &proof, mock.Anything).Return(nil)

	got, err := service.ConfirmDelivery(ctx, notification.ID.String(), &proof)

	require.NoError(t, err)
	assert.True(t, got.DeliveryConfirmed)
	require.NotNil(t, got.DeliveryDate)
	require.NotNil(t, got.DeliveryProofImage)
	assert.Equal(t, proof, *got.DeliveryProofImage)
}
