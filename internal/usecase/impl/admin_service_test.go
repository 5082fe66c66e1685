package impl

import (
	"context"
	"testing"

	domainerrors "shipnotify/internal/domain/errors"
	"shipnotify/internal/domain/repository"
	mockRepo "shipnotify/internal/mocks/repository"
	"shipnotify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAdminService(t *testing.T) (
	usecase.AdminUsecase,
	*mockRepo.MockAdminRepository,
	*mockRepo.MockTransactionManager,
) {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := NewAdminService(adminRepo, txManager, testLogger())

	return service, adminRepo, txManager
}

// runTransaction wires the tx manager mock so Execute runs the callback
// against the given factory and reports its error.
func runTransaction(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().Execute(ctx, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, repository.RepositoryFactory) error)
			_ = fn(ctx, factory)
		})
}

func TestAdminService_AddAdmin_ReportsAlreadyPresent(t *testing.T) {
	service, adminRepo, _ := createTestAdminService(t)
	ctx := context.Background()

	adminRepo.EXPECT().AddAdmin(ctx, int64(42)).Return(true, nil)

	alreadyPresent, err := service.AddAdmin(ctx, 42)

	require.NoError(t, err)
	assert.True(t, alreadyPresent)
}

func TestAdminService_AddAdmin_RejectsInvalidID(t *testing.T) {
	service, _, _ := createTestAdminService(t)

	_, err := service.AddAdmin(context.Background(), 0)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminID)
}

func TestAdminService_RemoveAdmin_ReportsAlreadyAbsent(t *testing.T) {
	service, adminRepo, _ := createTestAdminService(t)
	ctx := context.Background()

	adminRepo.EXPECT().RemoveAdmin(ctx, int64(42)).Return(true, nil)

	alreadyAbsent, err := service.RemoveAdmin(ctx, 42)

	require.NoError(t, err)
	assert.True(t, alreadyAbsent)
}

func TestAdminService_BootstrapAdmin_PromotesWhenRegistryEmpty(t *testing.T) {
	service, _, txManager := createTestAdminService(t)
	ctx := context.Background()

	txAdminRepo := mockRepo.NewMockAdminRepository(t)
	txAdminRepo.EXPECT().CountAdmins(ctx).Return(int64(0), nil)
	txAdminRepo.EXPECT().AddAdmin(ctx, int64(7)).Return(false, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAdminRepository().Return(txAdminRepo)

	runTransaction(ctx, txManager, factory)

	promoted, err := service.BootstrapAdmin(ctx, 7)

	require.NoError(t, err)
	assert.True(t, promoted)
}

func TestAdminService_BootstrapAdmin_SkipsWhenAdminsExist(t *testing.T) {
	service, _, txManager := createTestAdminService(t)
	ctx := context.Background()

	txAdminRepo := mockRepo.NewMockAdminRepository(t)
	txAdminRepo.EXPECT().CountAdmins(ctx).Return(int64(2), nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAdminRepository().Return(txAdminRepo)

	runTransaction(ctx, txManager, factory)

	promoted, err := service.BootstrapAdmin(ctx, 7)

	require.NoError(t, err)
	assert.False(t, promoted)
}

func TestAdminService_BootstrapAdmin_RejectsInvalidID(t *testing.T) {
	service, _, _ := createTestAdminService(t)

	_, err := service.BootstrapAdmin(context.Background(), -1)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAdminID)
}
