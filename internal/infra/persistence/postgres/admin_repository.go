package postgres

import (
	"context"

	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// ListAdmins retrieves every administrator in registration order.
func (repo *adminRepository) ListAdmins(ctx context.Context) ([]*entity.Administrator, error) {
	var adminModels []*model.AdministratorModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&adminModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list admins")
	}

	admins := make([]*entity.Administrator, 0, len(adminModels))
	for _, adminM := range adminModels {
		admins = append(admins, toAdminDomain(adminM))
	}

	return admins, nil
}

// IsAdmin reports whether the given Telegram account is registered.
func (repo *adminRepository) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AdministratorModel{}).
		Where("telegram_id = ?", telegramID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check admin membership")
	}

	return count > 0, nil
}

// AddAdmin registers an administrator. Adding an existing admin is not an
// error; the call reports that the account was already present.
func (repo *adminRepository) AddAdmin(ctx context.Context, telegramID int64) (bool, error) {
	adminM := &model.AdministratorModel{TelegramID: telegramID}

	result := repo.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		FirstOrCreate(adminM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			// Raced with a concurrent add; the account is registered either way.
			return true, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add admin")
	}

	alreadyPresent := result.RowsAffected == 0

	return alreadyPresent, nil
}

// RemoveAdmin deregisters an administrator. Removing an unknown admin is not
// an error; the call reports that the account was already absent.
func (repo *adminRepository) RemoveAdmin(ctx context.Context, telegramID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("telegram_id = ?", telegramID).
		Delete(&model.AdministratorModel{})

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove admin")
	}

	alreadyAbsent := result.RowsAffected == 0

	return alreadyAbsent, nil
}

// ResetAdmins removes every administrator, returning the registry to the
// bootstrap state where the next /start promotes its sender.
func (repo *adminRepository) ResetAdmins(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.AdministratorModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reset admins")
	}

	return nil
}

// CountAdmins returns the number of registered administrators.
func (repo *adminRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AdministratorModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count admins")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAdminDomain converts a GORM model to a domain entity.
func toAdminDomain(adminM *model.AdministratorModel) *entity.Administrator {
	return &entity.Administrator{
		TelegramID: adminM.TelegramID,
		CreatedAt:  adminM.CreatedAt,
	}
}
