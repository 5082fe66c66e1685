package repository

import (
	"context"
)

// TransactionManager manages database transactions across repositories.
type TransactionManager interface {
	// Execute runs the given function within a single transaction. The
	// factory hands out repositories bound to that transaction. Any error
	// (or panic) rolls the transaction back; a nil return commits it.
	Execute(ctx context.Context, fn func(ctx context.Context, factory RepositoryFactory) error) error
}

// RepositoryFactory creates repository instances bound to a transaction.
type RepositoryFactory interface {
	// NewNotificationRepository creates a NotificationRepository instance.
	NewNotificationRepository() NotificationRepository

	// NewAdminRepository creates an AdminRepository instance.
	NewAdminRepository() AdminRepository

	// NewTemplateRepository creates a TemplateRepository instance.
	NewTemplateRepository() TemplateRepository
}
