package repository

import (
	"context"

	"shipnotify/internal/domain/entity"
)

// TemplateRepository defines the interface for message-template storage.
type TemplateRepository interface {
	// GetTemplates retrieves the full template set keyed by name. Names
	// missing from storage are filled in with their default text, so the
	// returned map always covers the fixed template set.
	GetTemplates(ctx context.Context) (map[string]*entity.MessageTemplate, error)

	// GetTemplate retrieves a single template by name, falling back to the
	// default text when no override is stored.
	GetTemplate(ctx context.Context, name string) (*entity.MessageTemplate, error)

	// UpdateTemplate stores new text for a known template name.
	UpdateTemplate(ctx context.Context, name string, text string) error
}
