package postgres

import (
	"context"
	"strings"
	"time"

	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/phone"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new shipment notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.ShipmentNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("duplicate notification ID")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrNotificationCreationFailed.WrapMessage("missing required notification information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.ShipmentNotification, error) {
	var notificationM model.ShipmentNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationByShortID retrieves a notification by the 8-character ID
// prefix shown in operator messages.
func (repo *notificationRepository) FindNotificationByShortID(ctx context.Context, shortID string) (*entity.ShipmentNotification, error) {
	var notificationModels []*model.ShipmentNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id::text LIKE ?", strings.ToLower(shortID)+"%").
		Limit(2).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification by short ID")
	}

	// Zero or multiple hits both mean the prefix does not identify a record.
	if len(notificationModels) != 1 {
		return nil, repository.ErrNotificationNotFound
	}

	return toNotificationDomain(notificationModels[0]), nil
}

// ListNotifications retrieves every notification in insertion order.
func (repo *notificationRepository) ListNotifications(ctx context.Context) ([]*entity.ShipmentNotification, error) {
	var notificationModels []*model.ShipmentNotificationModel

	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// CountNotifications returns the number of stored notifications.
func (repo *notificationRepository) CountNotifications(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentNotificationModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notifications")
	}

	return count, nil
}

// UpdateNotification merges the non-nil patch fields into the matching record.
func (repo *notificationRepository) UpdateNotification(ctx context.Context, id uuid.UUID, patch entity.NotificationPatch) error {
	updates := buildPatchUpdates(patch)
	if len(updates) == 0 {
		// Nothing to change; still report unknown IDs.
		var exists int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ShipmentNotificationModel{}).
			Where("id = ?", id).
			Count(&exists).Error; err != nil {
			return errors.Wrap(err, "failed to check notification existence")
		}
		if exists == 0 {
			return repository.ErrNotificationNotFound
		}

		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentNotificationModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteNotification removes a notification by ID.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShipmentNotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// SearchByName retrieves notifications whose customer name contains the
// given substring, case-insensitively.
func (repo *notificationRepository) SearchByName(ctx context.Context, name string) ([]*entity.ShipmentNotification, error) {
	var notificationModels []*model.ShipmentNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("customer_name ILIKE ?", "%"+name+"%").
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search notifications by name")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// SearchByPhone retrieves notifications whose stored phone matches the query
// under the digits-only bidirectional suffix rule: either number may be a
// suffix of the other, so partial queries hit too. The query is country-code
// normalized first so a local 0-prefixed number finds its stored
// international form.
func (repo *notificationRepository) SearchByPhone(ctx context.Context, query string) ([]*entity.ShipmentNotification, error) {
	digits := phone.DigitsOnly(phone.Normalize(query))
	if digits == "" {
		return []*entity.ShipmentNotification{}, nil
	}

	var notificationModels []*model.ShipmentNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("phone_digits <> '' AND (phone_digits LIKE '%' || ? OR ? LIKE '%' || phone_digits)", digits, digits).
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search notifications by phone")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// FindPendingReminders retrieves notifications whose reminder is due at the
// given instant and has not been sent yet.
func (repo *notificationRepository) FindPendingReminders(ctx context.Context, now time.Time) ([]*entity.ShipmentNotification, error) {
	var notificationModels []*model.ShipmentNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("reminder_sent = ? AND reminder_time <= ?", false, now).
		Order("created_at ASC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending reminders")
	}

	return toNotificationDomainSlice(notificationModels), nil
}

// MarkReminderSent flips the reminder flag to sent. Expressed as a patch so
// the one-way transitions share UpdateNotification's merge and not-found
// handling.
func (repo *notificationRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	sent := true

	return repo.UpdateNotification(ctx, id, entity.NotificationPatch{ReminderSent: &sent})
}

// MarkDeliveryConfirmed flips the delivery flag to confirmed, recording the
// confirmation time and optional proof image.
func (repo *notificationRepository) MarkDeliveryConfirmed(ctx context.Context, id uuid.UUID, proofImage *string, confirmedAt time.Time) error {
	confirmed := true

	return repo.UpdateNotification(ctx, id, entity.NotificationPatch{
		DeliveryConfirmed:  &confirmed,
		DeliveryDate:       &confirmedAt,
		DeliveryProofImage: proofImage,
	})
}

// buildPatchUpdates converts a patch into a GORM updates map, skipping nil fields.
func buildPatchUpdates(patch entity.NotificationPatch) map[string]interface{} {
	updates := map[string]interface{}{}

	if patch.CustomerName != nil {
		updates["customer_name"] = *patch.CustomerName
	}
	if patch.PhoneNumber != nil {
		updates["phone_number"] = *patch.PhoneNumber
		// Keep the digits projection in step with the stored number.
		updates["phone_digits"] = phone.DigitsOnly(*patch.PhoneNumber)
	}
	if patch.ImagePath != nil {
		updates["image_path"] = *patch.ImagePath
	}
	if patch.ReminderSent != nil {
		updates["reminder_sent"] = *patch.ReminderSent
	}
	if patch.DeliveryConfirmed != nil {
		updates["delivery_confirmed"] = *patch.DeliveryConfirmed
	}
	if patch.DeliveryDate != nil {
		updates["delivery_date"] = *patch.DeliveryDate
	}
	if patch.DeliveryProofImage != nil {
		updates["delivery_proof_image"] = *patch.DeliveryProofImage
	}

	return updates
}

// --- Mapper Functions ---

// fromNotificationDomain converts a domain entity to a GORM model.
func fromNotificationDomain(notification *entity.ShipmentNotification) *model.ShipmentNotificationModel {
	return &model.ShipmentNotificationModel{
		ID:                 notification.ID,
		CustomerName:       notification.CustomerName,
		PhoneNumber:        notification.PhoneNumber,
		PhoneDigits:        phone.DigitsOnly(notification.PhoneNumber),
		ImagePath:          notification.ImagePath,
		ReminderDays:       notification.ReminderDays,
		ReminderTime:       notification.ReminderTime,
		ReminderSent:       notification.ReminderSent,
		DeliveryConfirmed:  notification.DeliveryConfirmed,
		DeliveryDate:       notification.DeliveryDate,
		DeliveryProofImage: notification.DeliveryProofImage,
		CreatedAt:          notification.CreatedAt,
	}
}

// toNotificationDomain converts a GORM model to a domain entity.
func toNotificationDomain(notificationM *model.ShipmentNotificationModel) *entity.ShipmentNotification {
	return &entity.ShipmentNotification{
		ID:                 notificationM.ID,
		CustomerName:       notificationM.CustomerName,
		PhoneNumber:        notificationM.PhoneNumber,
		PhoneDigits:        notificationM.PhoneDigits,
		ImagePath:          notificationM.ImagePath,
		ReminderDays:       notificationM.ReminderDays,
		ReminderTime:       notificationM.ReminderTime,
		ReminderSent:       notificationM.ReminderSent,
		DeliveryConfirmed:  notificationM.DeliveryConfirmed,
		DeliveryDate:       notificationM.DeliveryDate,
		DeliveryProofImage: notificationM.DeliveryProofImage,
		CreatedAt:          notificationM.CreatedAt,
	}
}

func toNotificationDomainSlice(notificationModels []*model.ShipmentNotificationModel) []*entity.ShipmentNotification {
	notifications := make([]*entity.ShipmentNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}
