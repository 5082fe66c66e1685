package impl

import (
	"context"
	"testing"

	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	mockRepo "shipnotify/internal/mocks/repository"
	"shipnotify/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTemplateService(t *testing.T) (
	usecase.TemplateUsecase,
	*mockRepo.MockTemplateRepository,
) {
	templateRepo := mockRepo.NewMockTemplateRepository(t)

	service := NewTemplateService(templateRepo, testLogger())

	return service, templateRepo
}

func TestTemplateService_UpdateTemplate_RejectsUnknownName(t *testing.T) {
	service, _ := createTestTemplateService(t)

	err := service.UpdateTemplate(context.Background(), "ransom_note", "هذا نص")

	assert.ErrorIs(t, err, domainerrors.ErrUnknownTemplate)
}

func TestTemplateService_UpdateTemplate_RejectsEmptyText(t *testing.T) {
	service, _ := createTestTemplateService(t)

	err := service.UpdateTemplate(context.Background(), entity.TemplateSMS, "   ")

	assert.Error(t, err)
}

func TestTemplateService_UpdateTemplate_Success(t *testing.T) {
	service, templateRepo := createTestTemplateService(t)
	ctx := context.Background()

	templateRepo.EXPECT().UpdateTemplate(ctx, entity.TemplateSMS, "نص جديد").Return(nil)

	err := service.UpdateTemplate(ctx, entity.TemplateSMS, "نص جديد")

	assert.NoError(t, err)
}

func TestTemplateService_RenderTemplate_FillsPlaceholders(t *testing.T) {
	service, templateRepo := createTestTemplateService(t)
	ctx := context.Background()

	notification := &entity.ShipmentNotification{
		ID:           uuid.New(),
		CustomerName: "أحمد",
		PhoneNumber:  "+963911234567",
	}

	templateRepo.EXPECT().GetTemplate(ctx, entity.TemplateSMS).
		Return(&entity.MessageTemplate{
			Name: entity.TemplateSMS,
			Text: "مرحباً {customer_name}، رمزك {notification_id} على {phone_number}",
		}, nil)

	message, err := service.RenderTemplate(ctx, entity.TemplateSMS, notification)

	require.NoError(t, err)
	assert.Contains(t, message, "أحمد")
	assert.Contains(t, message, notification.ShortID())
	assert.Contains(t, message, "+963911234567")
	assert.NotContains(t, message, "{customer_name}")
}

func TestTemplateService_GetTemplate_RejectsUnknownName(t *testing.T) {
	service, _ := createTestTemplateService(t)

	_, err := service.GetTemplate(context.Background(), "unknown")

	assert.ErrorIs(t, err, domainerrors.ErrUnknownTemplate)
}
