package usecase

import (
	"context"

	"shipnotify/internal/domain/entity"
)

// AdminUsecase defines the interface for administrator registry use cases
type AdminUsecase interface {
	// IsAdmin reports whether the Telegram account is an administrator.
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)

	// ListAdmins retrieves every administrator in registration order.
	ListAdmins(ctx context.Context) ([]*entity.Administrator, error)

	// AddAdmin registers an administrator. Registering an existing admin
	// succeeds and reports alreadyPresent=true.
	AddAdmin(ctx context.Context, telegramID int64) (alreadyPresent bool, err error)

	// RemoveAdmin deregisters an administrator. Removing an unknown admin
	// succeeds and reports alreadyAbsent=true.
	RemoveAdmin(ctx context.Context, telegramID int64) (alreadyAbsent bool, err error)

	// ResetAdmins empties the registry. The next BootstrapAdmin call will
	// promote its caller.
	ResetAdmins(ctx context.Context) error

	// BootstrapAdmin promotes the Telegram account to administrator if and
	// only if the registry is empty. The check and the insert run in one
	// transaction so concurrent first contacts elect exactly one admin.
	BootstrapAdmin(ctx context.Context, telegramID int64) (promoted bool, err error)
}
