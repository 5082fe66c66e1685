package postgres

import (
	"context"

	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// GetTemplates retrieves the full template set keyed by name. Only operator
// overrides live in the table; names without a row get their default text.
func (repo *templateRepository) GetTemplates(ctx context.Context) (map[string]*entity.MessageTemplate, error) {
	var templateModels []*model.MessageTemplateModel

	if err := repo.db.WithContext(ctx).
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load templates")
	}

	templates := make(map[string]*entity.MessageTemplate, len(entity.TemplateNames()))
	for _, name := range entity.TemplateNames() {
		templates[name] = &entity.MessageTemplate{
			Name: name,
			Text: entity.DefaultTemplateText(name),
		}
	}
	for _, templateM := range templateModels {
		if !entity.IsTemplateName(templateM.Name) {
			continue
		}
		templates[templateM.Name] = toTemplateDomain(templateM)
	}

	return templates, nil
}

// GetTemplate retrieves a single template by name, falling back to the
// default text when no override is stored.
func (repo *templateRepository) GetTemplate(ctx context.Context, name string) (*entity.MessageTemplate, error) {
	if !entity.IsTemplateName(name) {
		return nil, domainerrors.ErrUnknownTemplate
	}

	var templateM model.MessageTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entity.MessageTemplate{
				Name: name,
				Text: entity.DefaultTemplateText(name),
			}, nil
		}

		return nil, errors.Wrap(err, "failed to load template")
	}

	return toTemplateDomain(&templateM), nil
}

// UpdateTemplate stores new text for a known template name.
func (repo *templateRepository) UpdateTemplate(ctx context.Context, name string, text string) error {
	if !entity.IsTemplateName(name) {
		return domainerrors.ErrUnknownTemplate
	}

	templateM := &model.MessageTemplateModel{
		Name: name,
		Text: text,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
		}).
		Create(templateM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update template")
	}

	return nil
}

// --- Mapper Functions ---

// toTemplateDomain converts a GORM model to a domain entity.
func toTemplateDomain(templateM *model.MessageTemplateModel) *entity.MessageTemplate {
	return &entity.MessageTemplate{
		Name:      templateM.Name,
		Text:      templateM.Text,
		UpdatedAt: templateM.UpdatedAt,
	}
}
