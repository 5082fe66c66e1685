package repository

import (
	"context"

	"shipnotify/internal/domain/entity"
)

// AdminRepository defines the interface for administrator registry
// operations. Membership operations are idempotent.
type AdminRepository interface {
	// ListAdmins retrieves every administrator in registration order.
	ListAdmins(ctx context.Context) ([]*entity.Administrator, error)

	// IsAdmin reports whether the given Telegram account is registered.
	IsAdmin(ctx context.Context, telegramID int64) (bool, error)

	// AddAdmin registers an administrator. Returns alreadyPresent=true when
	// the account was registered before the call.
	AddAdmin(ctx context.Context, telegramID int64) (alreadyPresent bool, err error)

	// RemoveAdmin deregisters an administrator. Returns alreadyAbsent=true
	// when the account was not registered before the call.
	RemoveAdmin(ctx context.Context, telegramID int64) (alreadyAbsent bool, err error)

	// ResetAdmins removes every administrator, returning the registry to the
	// bootstrap state.
	ResetAdmins(ctx context.Context) error

	// CountAdmins returns the number of registered administrators.
	CountAdmins(ctx context.Context) (int64, error)
}
