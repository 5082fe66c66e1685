package usecase

import (
	"context"

	"shipnotify/internal/domain/entity"
)

// TemplateUsecase defines the interface for message-template use cases
type TemplateUsecase interface {
	// GetTemplates retrieves the full template set, filling defaults for
	// names without a stored override.
	GetTemplates(ctx context.Context) (map[string]*entity.MessageTemplate, error)

	// GetTemplate retrieves a single template by name.
	GetTemplate(ctx context.Context, name string) (*entity.MessageTemplate, error)

	// UpdateTemplate stores new text for a known template name.
	UpdateTemplate(ctx context.Context, name string, text string) error

	// RenderTemplate fills the template's placeholders from the
	// notification.
	RenderTemplate(ctx context.Context, name string, notification *entity.ShipmentNotification) (string, error)
}
