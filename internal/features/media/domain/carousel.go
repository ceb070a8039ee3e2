package domain

import (
	"math"
	"sort"
)

// State identifies the carousel interaction state. The original boolean guard
// flags (isDragging/isTransitioning) are replaced by one enumerated state so
// every transition is handled exhaustively.
type State int

const (
	// StateIdle means the carousel is showing a slide and may auto-advance.
	StateIdle State = iota
	// StateDragging means a pointer gesture is in progress.
	StateDragging
	// StateTransitioning means a slide-change animation is running.
	StateTransitioning
)

// String returns the lowercase state name used on the wire.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateTransitioning:
		return "transitioning"
	default:
		return "unknown"
	}
}

// CarouselConfig holds the gesture tuning constants. The thresholds are
// tunable, not load-bearing.
type CarouselConfig struct {
	// SlideWidth is the reference slide width in pixels; drag offsets are
	// clamped to half of it.
	SlideWidth float64
	// ReleaseThreshold is the minimum absolute offset that commits a slide
	// change on pointer-up.
	ReleaseThreshold float64
	// Damping resists drag movement. 1.0 means the offset follows the
	// pointer exactly.
	Damping float64
}

const (
	defaultSlideWidth       = 480
	defaultReleaseThreshold = 60
	defaultDamping          = 0.65
)

// withDefaults fills zero-valued tuning fields.
func (c CarouselConfig) withDefaults() CarouselConfig {
	if c.SlideWidth <= 0 {
		c.SlideWidth = defaultSlideWidth
	}
	if c.ReleaseThreshold <= 0 {
		c.ReleaseThreshold = defaultReleaseThreshold
	}
	if c.Damping <= 0 {
		c.Damping = defaultDamping
	}
	return c
}

// Carousel is a cyclic, swipeable sequence of banners.
//
// Invariants: the index is always in [0, N); only one transition is active at
// a time; a single-banner (or empty) carousel is static and rejects every
// gesture and advance.
type Carousel struct {
	banners []Banner
	cfg     CarouselConfig

	state      State
	index      int
	dragStartX float64
	dragOffset float64
	failed     map[string]bool
}

// NewCarousel creates a carousel over the given banners, ordered by
// DisplayOrder.
func NewCarousel(banners []Banner, cfg CarouselConfig) *Carousel {
	ordered := make([]Banner, len(banners))
	copy(ordered, banners)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DisplayOrder < ordered[j].DisplayOrder
	})

	return &Carousel{
		banners: ordered,
		cfg:     cfg.withDefaults(),
		state:   StateIdle,
		failed:  make(map[string]bool),
	}
}

// Len returns the number of banners.
func (c *Carousel) Len() int {
	return len(c.banners)
}

// Index returns the current slide index.
func (c *Carousel) Index() int {
	return c.index
}

// State returns the current interaction state.
func (c *Carousel) State() State {
	return c.state
}

// DragOffset returns the current drag offset in pixels.
func (c *Carousel) DragOffset() float64 {
	return c.dragOffset
}

// Current returns the banner at the current index.
func (c *Carousel) Current() (Banner, bool) {
	if len(c.banners) == 0 {
		return Banner{}, false
	}
	return c.banners[c.index], true
}

// Banners returns the ordered banner sequence.
func (c *Carousel) Banners() []Banner {
	out := make([]Banner, len(c.banners))
	copy(out, c.banners)
	return out
}

// interactive reports whether the carousel can change slides at all.
func (c *Carousel) interactive() bool {
	return len(c.banners) > 1
}

// ShouldAutoAdvance reports whether an auto-advance timer should be armed.
func (c *Carousel) ShouldAutoAdvance() bool {
	return c.state == StateIdle && c.interactive()
}

// Advance moves to the next slide cyclically and starts a transition.
// It is rejected unless the carousel is idle and has more than one banner.
func (c *Carousel) Advance() bool {
	if c.state != StateIdle || !c.interactive() {
		return false
	}
	c.index = (c.index + 1) % len(c.banners)
	c.state = StateTransitioning
	return true
}

// Retreat moves to the previous slide cyclically and starts a transition.
func (c *Carousel) Retreat() bool {
	if c.state != StateIdle || !c.interactive() {
		return false
	}
	c.index = (c.index - 1 + len(c.banners)) % len(c.banners)
	c.state = StateTransitioning
	return true
}

// PointerDown begins a drag gesture at the given pointer position.
func (c *Carousel) PointerDown(x float64) bool {
	if c.state != StateIdle || !c.interactive() {
		return false
	}
	c.state = StateDragging
	c.dragStartX = x
	c.dragOffset = 0
	return true
}

// PointerMove updates the drag offset. The raw pointer delta is resisted by
// the damping factor and clamped to half the slide width in either direction.
func (c *Carousel) PointerMove(x float64) bool {
	if c.state != StateDragging {
		return false
	}
	limit := c.cfg.SlideWidth / 2
	offset := (x - c.dragStartX) * c.cfg.Damping
	if offset > limit {
		offset = limit
	}
	if offset < -limit {
		offset = -limit
	}
	c.dragOffset = offset
	return true
}

// PointerUp ends the drag gesture. If the final offset exceeds the release
// threshold the slide change commits in the direction of the drag (a leftward
// drag reveals the next slide); otherwise the offset resets and the index is
// unchanged. Returns true when a slide change committed.
func (c *Carousel) PointerUp() bool {
	if c.state != StateDragging {
		return false
	}

	offset := c.dragOffset
	c.dragOffset = 0

	if math.Abs(offset) <= c.cfg.ReleaseThreshold {
		c.state = StateIdle
		return false
	}

	if offset < 0 {
		c.index = (c.index + 1) % len(c.banners)
	} else {
		c.index = (c.index - 1 + len(c.banners)) % len(c.banners)
	}
	c.state = StateTransitioning
	return true
}

// CompleteTransition marks the slide-change animation as finished.
func (c *Carousel) CompleteTransition() bool {
	if c.state != StateTransitioning {
		return false
	}
	c.state = StateIdle
	return true
}

// MarkLoadError records that a banner asset failed to load. The banner stays
// in the rotation and renders as a placeholder.
func (c *Carousel) MarkLoadError(bannerID string) {
	c.failed[bannerID] = true
}

// LoadFailed reports whether the banner asset previously failed to load.
func (c *Carousel) LoadFailed(bannerID string) bool {
	return c.failed[bannerID]
}

// FailedBanners returns the IDs of banners whose assets failed to load.
func (c *Carousel) FailedBanners() []string {
	if len(c.failed) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.failed))
	for id := range c.failed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
