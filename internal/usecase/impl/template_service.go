package impl

import (
	"context"
	"log/slog"
	"strings"

	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/usecase"
)

type templateService struct {
	templateRepo repository.TemplateRepository
	logger       *slog.Logger
}

// NewTemplateService creates a new template service instance
func NewTemplateService(
	templateRepo repository.TemplateRepository,
	logger *slog.Logger,
) usecase.TemplateUsecase {
	return &templateService{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// GetTemplates retrieves the full template set.
func (s *templateService) GetTemplates(ctx context.Context) (map[string]*entity.MessageTemplate, error) {
	return s.templateRepo.GetTemplates(ctx)
}

// GetTemplate retrieves a single template by name.
func (s *templateService) GetTemplate(ctx context.Context, name string) (*entity.MessageTemplate, error) {
	if !entity.IsTemplateName(name) {
		return nil, domainerrors.ErrUnknownTemplate
	}

	return s.templateRepo.GetTemplate(ctx, name)
}

// UpdateTemplate stores new text for a known template name.
func (s *templateService) UpdateTemplate(ctx context.Context, name string, text string) error {
	if !entity.IsTemplateName(name) {
		return domainerrors.ErrUnknownTemplate
	}
	if strings.TrimSpace(text) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("template text must not be empty")
	}

	if err := s.templateRepo.UpdateTemplate(ctx, name, text); err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "template updated",
		slog.String("name", name),
	)

	return nil
}

// RenderTemplate fills the template's placeholders from the notification.
func (s *templateService) RenderTemplate(ctx context.Context, name string, notification *entity.ShipmentNotification) (string, error) {
	template, err := s.GetTemplate(ctx, name)
	if err != nil {
		return "", err
	}

	return template.Render(notification), nil
}
