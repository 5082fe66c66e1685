package impl

import (
	"context"
	"log/slog"

	"shipnotify/internal/domain/entity"
	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/repository"
	"shipnotify/internal/usecase"
)

type adminService struct {
	adminRepo repository.AdminRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	adminRepo repository.AdminRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		adminRepo: adminRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// IsAdmin reports whether the Telegram account is an administrator.
func (s *adminService) IsAdmin(ctx context.Context, telegramID int64) (bool, error) {
	return s.adminRepo.IsAdmin(ctx, telegramID)
}

// ListAdmins retrieves every administrator in registration order.
func (s *adminService) ListAdmins(ctx context.Context) ([]*entity.Administrator, error) {
	return s.adminRepo.ListAdmins(ctx)
}

// AddAdmin registers an administrator.
func (s *adminService) AddAdmin(ctx context.Context, telegramID int64) (bool, error) {
	if telegramID <= 0 {
		return false, domainerrors.ErrInvalidAdminID
	}

	alreadyPresent, err := s.adminRepo.AddAdmin(ctx, telegramID)
	if err != nil {
		return false, err
	}

	if !alreadyPresent {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "admin added",
			slog.Int64("telegramId", telegramID),
		)
	}

	return alreadyPresent, nil
}

// RemoveAdmin deregisters an administrator.
func (s *adminService) RemoveAdmin(ctx context.Context, telegramID int64) (bool, error) {
	alreadyAbsent, err := s.adminRepo.RemoveAdmin(ctx, telegramID)
	if err != nil {
		return false, err
	}

	if !alreadyAbsent {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "admin removed",
			slog.Int64("telegramId", telegramID),
		)
	}

	return alreadyAbsent, nil
}

// ResetAdmins empties the registry.
func (s *adminService) ResetAdmins(ctx context.Context) error {
	if err := s.adminRepo.ResetAdmins(ctx); err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "admin registry reset")

	return nil
}

// BootstrapAdmin promotes the Telegram account to administrator if and only
// if the registry is empty. The count and insert run in one transaction so
// concurrent first contacts elect exactly one admin.
func (s *adminService) BootstrapAdmin(ctx context.Context, telegramID int64) (bool, error) {
	if telegramID <= 0 {
		return false, domainerrors.ErrInvalidAdminID
	}

	var promoted bool
	err := s.txManager.Execute(ctx, func(ctx context.Context, factory repository.RepositoryFactory) error {
		adminRepo := factory.NewAdminRepository()

		count, err := adminRepo.CountAdmins(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if _, err := adminRepo.AddAdmin(ctx, telegramID); err != nil {
			return err
		}
		promoted = true

		return nil
	})
	if err != nil {
		return false, err
	}

	if promoted {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "first contact promoted to admin",
			slog.Int64("telegramId", telegramID),
		)
	}

	return promoted, nil
}
