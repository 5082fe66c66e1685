package telegram

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"shipnotify/config"
	"shipnotify/internal/domain/entity"
	"shipnotify/internal/domain/service"
	mockSvc "shipnotify/internal/mocks/service"
	mockUC "shipnotify/internal/mocks/usecase"
	"shipnotify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherMocks struct {
	notifications *mockUC.MockNotificationUsecase
	admins        *mockUC.MockAdminUsecase
	templates     *mockUC.MockTemplateUsecase
	reminders     *mockUC.MockReminderUsecase
	messenger     *mockSvc.MockMessenger
	analyzer      *mockSvc.MockVisionAnalyzer
	images        *mockSvc.MockImageStore
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *dispatcherMocks) {
	t.Helper()

	cfg := &config.Config{
		Telegram: &config.TelegramConfig{Token: "test-token", PageSize: 5},
		Vision:   &config.VisionConfig{Endpoint: "http://localhost:9999/v1/chat/completions"},
	}
	cfg.Reminder = &config.ReminderConfig{Interval: time.Minute, DefaultDays: 3}

	mocks := &dispatcherMocks{
		notifications: mockUC.NewMockNotificationUsecase(t),
		admins:        mockUC.NewMockAdminUsecase(t),
		templates:     mockUC.NewMockTemplateUsecase(t),
		reminders:     mockUC.NewMockReminderUsecase(t),
		messenger:     mockSvc.NewMockMessenger(t),
		analyzer:      mockSvc.NewMockVisionAnalyzer(t),
		images:        mockSvc.NewMockImageStore(t),
	}

	dispatcher := NewDispatcher(Params{
		Config:              cfg,
		Logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUsecase: mocks.notifications,
		AdminUsecase:        mocks.admins,
		TemplateUsecase:     mocks.templates,
		ReminderUsecase:     mocks.reminders,
		Messenger:           mocks.messenger,
		Analyzer:            mocks.analyzer,
		ImageStore:          mocks.images,
	})

	return dispatcher, mocks
}

func textUpdate(chatID, userID int64, text string) *Update {
	return &Update{
		Message: &Message{
			MessageID: 10,
			From:      &User{ID: userID, FirstName: "سارة"},
			Chat:      Chat{ID: chatID},
			Text:      text,
		},
	}
}

func photoUpdate(chatID, userID int64, fileID string) *Update {
	return &Update{
		Message: &Message{
			MessageID: 11,
			From:      &User{ID: userID},
			Chat:      Chat{ID: chatID},
			Photo: []PhotoSize{
				{FileID: "small", Width: 90, Height: 90},
				{FileID: fileID, Width: 800, Height: 800},
			},
		},
	}
}

func callbackUpdate(chatID, userID int64, data string) *Update {
	return &Update{
		CallbackQuery: &CallbackQuery{
			ID:   "cb-1",
			From: User{ID: userID},
			Message: &Message{
				MessageID: 42,
				Chat:      Chat{ID: chatID},
			},
			Data: data,
		},
	}
}

func storedNotification() *entity.ShipmentNotification {
	return &entity.ShipmentNotification{
		ID:           uuid.New(),
		CustomerName: "أحمد",
		PhoneNumber:  "+963911234567",
		ImagePath:    "abc.jpg",
		ReminderDays: 3,
		CreatedAt:    time.Now(),
		ReminderTime: time.Now().Add(72 * time.Hour),
	}
}

func TestHandleUpdate_StartPromotesFirstUser(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().BootstrapAdmin(ctx, int64(7)).Return(true, nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "تم تعيينك كمسؤول رئيسي")
		}), mock.Anything).
		Return(int64(1), nil)

	err := dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "/start"))
	require.NoError(t, err)
}

func TestHandleUpdate_StartShowsAdminPanelForAdmin(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().BootstrapAdmin(ctx, int64(7)).Return(false, nil)
	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), mock.Anything, mock.MatchedBy(func(keyboard service.InlineKeyboard) bool {
			return len(keyboard) > 0
		})).
		Return(int64(1), nil)

	err := dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "/start"))
	require.NoError(t, err)
}

func TestHandleUpdate_AdminPanelShowsNotificationTotal(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil)
	mocks.notifications.EXPECT().CountNotifications(ctx).Return(int64(12), nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, msgAdminPanel) && strings.Contains(text, "12")
		}), mock.Anything).
		Return(int64(1), nil)

	err := dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "/admin"))
	require.NoError(t, err)
}

func TestHandleUpdate_AdminCommandDeniedForRegularUser(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().IsAdmin(ctx, int64(8)).Return(false, nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), msgAdminOnly, mock.Anything).
		Return(int64(1), nil)

	err := dispatcher.HandleUpdate(ctx, textUpdate(100, 8, "/admin"))
	require.NoError(t, err)
}

func TestHandleUpdate_AddNotificationConversation(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil)
	mocks.messenger.EXPECT().AnswerCallbackQuery(ctx, "cb-1", "").Return(nil)
	mocks.messenger.EXPECT().
		EditMessageText(ctx, int64(100), int64(42), msgAskCustomerNameInline, mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, callbackUpdate(100, 7, "add_notification")))

	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), mock.Anything, mock.Anything).
		Return(int64(1), nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "أحمد محمد")))
	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "0912345678")))

	mocks.messenger.EXPECT().DownloadFile(ctx, "big-file").Return([]byte("jpeg-bytes"), nil)
	mocks.images.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasSuffix(key, ".jpg")
		}), []byte("jpeg-bytes")).
		Return("stored.jpg", nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, photoUpdate(100, 7, "big-file")))

	// A non-positive day count is rejected and the question repeats.
	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "0")))
	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "خمسة")))

	created := storedNotification()
	mocks.notifications.EXPECT().
		CreateNotification(ctx, usecase.CreateNotificationInput{
			CustomerName: "أحمد محمد",
			PhoneNumber:  "0912345678",
			ImagePath:    "stored.jpg",
			ReminderDays: 5,
		}).
		Return(created, nil)
	mocks.images.EXPECT().Load(ctx, created.ImagePath).Return([]byte("jpeg-bytes"), nil)
	mocks.messenger.EXPECT().
		SendPhoto(ctx, int64(100), created.ShortID()+".jpg", []byte("jpeg-bytes"), mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "5")))
}

func TestHandleUpdate_UserSearchMasksPhoneNumbers(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	found := storedNotification()
	mocks.notifications.EXPECT().SearchByPhone(ctx, "0911234567").Return(
		[]*entity.ShipmentNotification{found}, nil)

	var sentText string
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(200), mock.Anything, mock.Anything).
		Return(int64(1), nil).
		Run(func(args mock.Arguments) {
			sentText = args.Get(2).(string)
		})
	mocks.images.EXPECT().Load(ctx, found.ImagePath).Return([]byte("img"), nil)
	mocks.messenger.EXPECT().
		SendPhoto(ctx, int64(200), mock.Anything, []byte("img"), mock.Anything).
		Return(nil)

	err := dispatcher.HandleUpdate(ctx, textUpdate(200, 9, "/search 0911234567"))
	require.NoError(t, err)

	assert.NotContains(t, sentText, found.PhoneNumber)
	assert.Contains(t, sentText, "4567")
	assert.Contains(t, sentText, found.ShortID())
}

func TestHandleUpdate_ConfirmCommand(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), msgConfirmUsage, mock.Anything).
		Return(int64(1), nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "/confirm")))

	confirmed := storedNotification()
	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil)
	mocks.notifications.EXPECT().
		ConfirmDelivery(ctx, confirmed.ShortID(), (*string)(nil)).
		Return(confirmed, nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "تم تأكيد تسليم")
		}), mock.Anything).
		Return(int64(1), nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "/confirm "+confirmed.ShortID())))
}

func TestHandleUpdate_ExtractFlowCreatesNotification(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.messenger.EXPECT().AnswerCallbackQuery(ctx, "cb-1", "").Return(nil).Times(2)
	mocks.messenger.EXPECT().
		EditMessageText(ctx, int64(300), int64(42), msgAIImageIntro, mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, callbackUpdate(300, 9, "ai_image")))

	analysis := "اسم العميل: أحمد محمد\nرقم الهاتف: +963911234567\nالوجهة: دمشق"
	mocks.messenger.EXPECT().DownloadFile(ctx, "big-file").Return([]byte("shipment"), nil)
	mocks.analyzer.EXPECT().AnalyzeImage(ctx, []byte("shipment")).Return(analysis, nil)
	mocks.images.EXPECT().Save(ctx, mock.Anything, []byte("shipment")).Return("permanent.jpg", nil)
	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(300), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "تحليل الصورة")
		}), mock.Anything).
		Return(int64(1), nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, photoUpdate(300, 9, "big-file")))

	created := storedNotification()
	mocks.notifications.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(input usecase.CreateNotificationInput) bool {
			return input.CustomerName == "أحمد محمد" &&
				input.PhoneNumber == "+963911234567" &&
				input.ImagePath == "permanent.jpg" &&
				input.ReminderDays == aiDefaultReminderDays
		})).
		Return(created, nil)
	mocks.messenger.EXPECT().
		EditMessageText(ctx, int64(300), int64(42), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "تم إنشاء إشعار جديد")
		}), mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, callbackUpdate(300, 9, "extract_confirm_1")))
}

func TestHandleUpdate_CancelResetsConversation(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil)
	mocks.messenger.EXPECT().AnswerCallbackQuery(ctx, "cb-1", "").Return(nil)
	mocks.messenger.EXPECT().
		EditMessageText(ctx, int64(100), int64(42), msgAskSearchName, mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, callbackUpdate(100, 7, "search_by_name")))

	mocks.messenger.EXPECT().
		SendMessage(ctx, int64(100), msgOperationCanceled, mock.Anything).
		Return(int64(1), nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "/cancel")))

	// The next plain text message is no longer treated as a search query.
	require.NoError(t, dispatcher.HandleUpdate(ctx, textUpdate(100, 7, "نص عادي")))
}

func TestHandleUpdate_ListNotificationsPaginates(t *testing.T) {
	dispatcher, mocks := newTestDispatcher(t)
	ctx := context.Background()

	mocks.admins.EXPECT().IsAdmin(ctx, int64(7)).Return(true, nil).Times(2)
	mocks.messenger.EXPECT().AnswerCallbackQuery(ctx, "cb-1", "").Return(nil).Times(2)

	first := storedNotification()
	mocks.notifications.EXPECT().ListNotificationsPage(ctx, 1).Return(&usecase.NotificationPage{
		Items:      []*entity.ShipmentNotification{first},
		Page:       1,
		TotalPages: 3,
		Total:      11,
	}, nil)
	mocks.messenger.EXPECT().
		EditMessageText(ctx, int64(100), int64(42), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "الصفحة 1 من 3")
		}), mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, callbackUpdate(100, 7, "list_notifications")))

	mocks.notifications.EXPECT().ListNotificationsPage(ctx, 2).Return(&usecase.NotificationPage{
		Items:      []*entity.ShipmentNotification{first},
		Page:       2,
		TotalPages: 3,
		Total:      11,
	}, nil)
	mocks.messenger.EXPECT().
		EditMessageText(ctx, int64(100), int64(42), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "الصفحة 2 من 3")
		}), mock.Anything).
		Return(nil)

	require.NoError(t, dispatcher.HandleUpdate(ctx, callbackUpdate(100, 7, "next_page")))
}
