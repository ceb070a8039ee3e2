package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBanners(n int) []Banner {
	banners := make([]Banner, 0, n)
	for i := 0; i < n; i++ {
		banners = append(banners, Banner{
			ID:            fmt.Sprintf("banner-%d", i),
			Type:          BannerTypeImage,
			FileReference: fmt.Sprintf("media/banner-%d.jpg", i),
			MimeType:      "image/jpeg",
			DisplayOrder:  i,
		})
	}
	return banners
}

func TestCarousel_AdvanceWrapsModuloN(t *testing.T) {
	for _, n := range []int{2, 3, 5, 7} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			c := NewCarousel(testBanners(n), CarouselConfig{})

			for step := 0; step < 2*n; step++ {
				prev := c.Index()
				require.True(t, c.Advance())
				assert.Equal(t, (prev+1)%n, c.Index())
				require.True(t, c.CompleteTransition())
			}
			// Full cycles return to the start.
			assert.Equal(t, 0, c.Index())
		})
	}
}

func TestCarousel_RetreatWrapsModuloN(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			c := NewCarousel(testBanners(n), CarouselConfig{})

			for step := 0; step < 2*n; step++ {
				prev := c.Index()
				require.True(t, c.Retreat())
				assert.Equal(t, (prev-1+n)%n, c.Index())
				require.True(t, c.CompleteTransition())
			}
			assert.Equal(t, 0, c.Index())
		})
	}
}

func TestCarousel_SingleBannerIsStatic(t *testing.T) {
	c := NewCarousel(testBanners(1), CarouselConfig{})

	assert.False(t, c.Advance())
	assert.False(t, c.Retreat())
	assert.False(t, c.PointerDown(100))
	assert.False(t, c.PointerMove(40))
	assert.False(t, c.PointerUp())
	assert.False(t, c.ShouldAutoAdvance())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, StateIdle, c.State())
}

func TestCarousel_EmptyIsStatic(t *testing.T) {
	c := NewCarousel(nil, CarouselConfig{})

	assert.False(t, c.Advance())
	assert.Equal(t, 0, c.Index())
	_, ok := c.Current()
	assert.False(t, ok)
}

func TestCarousel_ConcurrentTransitionRejected(t *testing.T) {
	c := NewCarousel(testBanners(3), CarouselConfig{})

	require.True(t, c.Advance())
	assert.Equal(t, StateTransitioning, c.State())

	// A second transition must be rejected until the first completes.
	assert.False(t, c.Advance())
	assert.False(t, c.Retreat())
	assert.False(t, c.PointerDown(10))
	assert.Equal(t, 1, c.Index())

	require.True(t, c.CompleteTransition())
	assert.True(t, c.Advance())
}

func TestCarousel_DragOffsetClampedToHalfSlideWidth(t *testing.T) {
	cfg := CarouselConfig{SlideWidth: 400, ReleaseThreshold: 60, Damping: 1.0}
	c := NewCarousel(testBanners(3), cfg)

	require.True(t, c.PointerDown(0))

	for _, x := range []float64{-1000, -300, -10, 0, 10, 300, 1000} {
		require.True(t, c.PointerMove(x))
		assert.LessOrEqual(t, c.DragOffset(), 200.0)
		assert.GreaterOrEqual(t, c.DragOffset(), -200.0)
	}
}

func TestCarousel_DampingResistsDrag(t *testing.T) {
	cfg := CarouselConfig{SlideWidth: 1000, ReleaseThreshold: 60, Damping: 0.5}
	c := NewCarousel(testBanners(2), cfg)

	require.True(t, c.PointerDown(0))
	require.True(t, c.PointerMove(100))
	assert.InDelta(t, 50.0, c.DragOffset(), 0.0001)
}

func TestCarousel_ReleaseBelowThresholdKeepsIndex(t *testing.T) {
	cfg := CarouselConfig{SlideWidth: 480, ReleaseThreshold: 60, Damping: 1.0}
	c := NewCarousel(testBanners(3), cfg)

	require.True(t, c.PointerDown(0))
	require.True(t, c.PointerMove(-60))

	committed := c.PointerUp()
	assert.False(t, committed)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, StateIdle, c.State())
	assert.Zero(t, c.DragOffset())
}

func TestCarousel_ReleaseBeyondThresholdCommitsByDirection(t *testing.T) {
	cfg := CarouselConfig{SlideWidth: 480, ReleaseThreshold: 60, Damping: 1.0}

	t.Run("DragLeftRevealsNext", func(t *testing.T) {
		c := NewCarousel(testBanners(3), cfg)
		require.True(t, c.Advance())
		require.True(t, c.CompleteTransition())
		require.Equal(t, 1, c.Index())

		// N=3, start index=1, drag of -100px then release.
		require.True(t, c.PointerDown(0))
		require.True(t, c.PointerMove(-100))
		assert.True(t, c.PointerUp())

		assert.Equal(t, 2, c.Index())
		assert.Zero(t, c.DragOffset())
		assert.Equal(t, StateTransitioning, c.State())
	})

	t.Run("DragRightRevealsPrevious", func(t *testing.T) {
		c := NewCarousel(testBanners(3), cfg)

		require.True(t, c.PointerDown(0))
		require.True(t, c.PointerMove(100))
		assert.True(t, c.PointerUp())

		assert.Equal(t, 2, c.Index())
		assert.Equal(t, StateTransitioning, c.State())
	})
}

func TestCarousel_OrderedByDisplayOrder(t *testing.T) {
	banners := []Banner{
		{ID: "c", DisplayOrder: 3},
		{ID: "a", DisplayOrder: 1},
		{ID: "b", DisplayOrder: 2},
	}
	c := NewCarousel(banners, CarouselConfig{})

	current, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, "a", current.ID)

	ordered := c.Banners()
	assert.Equal(t, []string{"a", "b", "c"}, []string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestCarousel_LoadErrorsDoNotAffectTraversal(t *testing.T) {
	c := NewCarousel(testBanners(3), CarouselConfig{})

	c.MarkLoadError("banner-1")
	assert.True(t, c.LoadFailed("banner-1"))
	assert.False(t, c.LoadFailed("banner-0"))
	assert.Equal(t, []string{"banner-1"}, c.FailedBanners())

	// The failed banner stays in the rotation.
	require.True(t, c.Advance())
	require.True(t, c.CompleteTransition())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, 3, c.Len())
}

func TestCarousel_ShouldAutoAdvance(t *testing.T) {
	c := NewCarousel(testBanners(2), CarouselConfig{})
	assert.True(t, c.ShouldAutoAdvance())

	require.True(t, c.PointerDown(0))
	assert.False(t, c.ShouldAutoAdvance())

	require.True(t, c.PointerMove(-200))
	require.True(t, c.PointerUp())
	assert.False(t, c.ShouldAutoAdvance())

	require.True(t, c.CompleteTransition())
	assert.True(t, c.ShouldAutoAdvance())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "transitioning", StateTransitioning.String())
	assert.Equal(t, "unknown", State(99).String())
}
