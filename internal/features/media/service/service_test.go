package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"canteen-api/internal/features/media/domain"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBannerRepository is a mock implementation of ports.BannerRepository
type MockBannerRepository struct {
	mock.Mock
}

func (m *MockBannerRepository) Save(ctx context.Context, banner *domain.Banner) error {
	args := m.Called(ctx, banner)
	return args.Error(0)
}

func (m *MockBannerRepository) Get(ctx context.Context, id string) (*domain.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Banner), args.Error(1)
}

func (m *MockBannerRepository) List(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Banner), args.Error(1)
}

func (m *MockBannerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func threeBanners() []domain.Banner {
	return []domain.Banner{
		{ID: "b0", Type: domain.BannerTypeImage, FileReference: "media/b0.jpg", DisplayOrder: 0},
		{ID: "b1", Type: domain.BannerTypeImage, FileReference: "media/b1.jpg", DisplayOrder: 1},
		{ID: "b2", Type: domain.BannerTypeVideo, FileReference: "media/b2.mp4", DisplayOrder: 2},
	}
}

func newStartedService(t *testing.T, repo *MockBannerRepository, clock clockwork.Clock) *MediaServiceImpl {
	t.Helper()
	svc := NewMediaService(repo, clock, 4*time.Second, domain.CarouselConfig{
		SlideWidth:       480,
		ReleaseThreshold: 60,
		Damping:          1.0,
	})
	require.NoError(t, svc.Start(context.Background()))
	t.Cleanup(svc.Stop)
	return svc
}

func TestMediaService_StartLoadsBanners(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	svc := newStartedService(t, repo, clockwork.NewFakeClock())

	snap := svc.Snapshot()
	assert.Equal(t, "idle", snap.State)
	assert.Equal(t, 0, snap.Index)
	assert.Len(t, snap.Banners, 3)
	repo.AssertExpectations(t)
}

func TestMediaService_StartRepoError(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("redis down"))

	svc := NewMediaService(repo, clockwork.NewFakeClock(), 4*time.Second, domain.CarouselConfig{})
	err := svc.Start(context.Background())
	assert.Error(t, err)
}

func TestMediaService_AutoAdvance(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	fc := clockwork.NewFakeClock()
	svc := newStartedService(t, repo, fc)

	fc.Advance(4 * time.Second)
	require.Eventually(t, func() bool {
		return svc.Snapshot().Index == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "transitioning", svc.Snapshot().State)

	// No further advance until the animation-end event arrives.
	fc.Advance(10 * time.Second)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, svc.Snapshot().Index)

	snap := svc.CompleteTransition()
	assert.Equal(t, "idle", snap.State)

	fc.Advance(4 * time.Second)
	require.Eventually(t, func() bool {
		return svc.Snapshot().Index == 2
	}, time.Second, 5*time.Millisecond)
}

func TestMediaService_DragCancelsAutoAdvance(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	fc := clockwork.NewFakeClock()
	svc := newStartedService(t, repo, fc)

	_, err := svc.ApplyGesture(domain.GestureDown, 100)
	require.NoError(t, err)

	fc.Advance(10 * time.Second)
	time.Sleep(20 * time.Millisecond)

	snap := svc.Snapshot()
	assert.Equal(t, "dragging", snap.State)
	assert.Equal(t, 0, snap.Index)
}

func TestMediaService_SwipeCommitsNextSlide(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	svc := newStartedService(t, repo, clockwork.NewFakeClock())

	_, err := svc.ApplyGesture(domain.GestureDown, 200)
	require.NoError(t, err)
	snap, err := svc.ApplyGesture(domain.GestureMove, 100)
	require.NoError(t, err)
	assert.InDelta(t, -100.0, snap.DragOffset, 0.0001)

	snap, err = svc.ApplyGesture(domain.GestureUp, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, "transitioning", snap.State)
	assert.Zero(t, snap.DragOffset)
}

func TestMediaService_ShortDragReturnsToIdle(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	svc := newStartedService(t, repo, clockwork.NewFakeClock())

	svc.ApplyGesture(domain.GestureDown, 200)
	svc.ApplyGesture(domain.GestureMove, 160)

	snap, err := svc.ApplyGesture(domain.GestureUp, 160)
	require.NoError(t, err)
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, "idle", snap.State)
}

func TestMediaService_InvalidGesturePhase(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	svc := newStartedService(t, repo, clockwork.NewFakeClock())

	_, err := svc.ApplyGesture("pinch", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidGesturePhase)
}

func TestMediaService_UpsertBanner(t *testing.T) {
	ctx := context.Background()

	t.Run("GeneratesID", func(t *testing.T) {
		repo := new(MockBannerRepository)
		repo.On("List", mock.Anything).Return(threeBanners(), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*domain.Banner")).Return(nil).Once()

		svc := newStartedService(t, repo, clockwork.NewFakeClock())

		banner, err := svc.UpsertBanner(ctx, "", domain.BannerTypeImage, "media/new.jpg", "image/jpeg", 5)
		require.NoError(t, err)
		assert.NotEmpty(t, banner.ID)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidType", func(t *testing.T) {
		repo := new(MockBannerRepository)
		repo.On("List", mock.Anything).Return(threeBanners(), nil)

		svc := newStartedService(t, repo, clockwork.NewFakeClock())

		_, err := svc.UpsertBanner(ctx, "", "gif", "media/x.gif", "image/gif", 1)
		assert.ErrorIs(t, err, domain.ErrInvalidBannerType)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockBannerRepository)
		repo.On("List", mock.Anything).Return(threeBanners(), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*domain.Banner")).Return(errors.New("redis down")).Once()

		svc := newStartedService(t, repo, clockwork.NewFakeClock())

		_, err := svc.UpsertBanner(ctx, "b9", domain.BannerTypeImage, "media/x.jpg", "image/jpeg", 9)
		assert.Error(t, err)
	})
}

func TestMediaService_DeleteBanner(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)
	repo.On("Delete", ctx, "b1").Return(nil).Once()

	svc := newStartedService(t, repo, clockwork.NewFakeClock())

	err := svc.DeleteBanner(ctx, "b1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMediaService_ReportLoadError(t *testing.T) {
	repo := new(MockBannerRepository)
	repo.On("List", mock.Anything).Return(threeBanners(), nil)

	svc := newStartedService(t, repo, clockwork.NewFakeClock())

	svc.ReportLoadError("b2")
	snap := svc.Snapshot()
	assert.Equal(t, []string{"b2"}, snap.FailedBanners)
}
