package service

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"canteen-api/internal/features/maintenance/domain"
)

type mockStatusRepository struct {
	mock.Mock
}

func (m *mockStatusRepository) Save(ctx context.Context, status *domain.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *mockStatusRepository) Get(ctx context.Context) (*domain.Status, error) {
	args := m.Called(ctx)
	if status, ok := args.Get(0).(*domain.Status); ok {
		return status, args.Error(1)
	}
	return nil, args.Error(1)
}

func newService(repo *mockStatusRepository) (*MaintenanceServiceImpl, *clockwork.FakeClock) {
	fc := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	return NewMaintenanceService(repo, fc), fc
}

func TestMaintenanceService_Enable(t *testing.T) {
	repo := new(mockStatusRepository)
	svc, fc := newService(repo)

	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	status, err := svc.Enable(context.Background(), "Back at 14:00")

	require.NoError(t, err)
	assert.True(t, status.Enabled)
	assert.Equal(t, "Back at 14:00", status.Message)
	assert.Equal(t, fc.Now(), status.UpdatedAt)
}

func TestMaintenanceService_Enable_DefaultMessage(t *testing.T) {
	repo := new(mockStatusRepository)
	svc, _ := newService(repo)

	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	status, err := svc.Enable(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMessage, status.Message)
}

func TestMaintenanceService_Disable(t *testing.T) {
	repo := new(mockStatusRepository)
	svc, _ := newService(repo)

	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	status, err := svc.Disable(context.Background())

	require.NoError(t, err)
	assert.False(t, status.Enabled)
	assert.Empty(t, status.Message)
}

func TestMaintenanceService_Status_DefaultsToOff(t *testing.T) {
	repo := new(mockStatusRepository)
	svc, _ := newService(repo)

	repo.On("Get", mock.Anything).Return(nil, nil)

	status, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.False(t, status.Enabled)
}
