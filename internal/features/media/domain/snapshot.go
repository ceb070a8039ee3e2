package domain

import "errors"

// GesturePhase identifies a pointer gesture event forwarded by the client.
type GesturePhase string

const (
	GestureDown GesturePhase = "down"
	GestureMove GesturePhase = "move"
	GestureUp   GesturePhase = "up"
)

var ErrInvalidGesturePhase = errors.New("invalid gesture phase")

// CarouselSnapshot is the externally visible carousel state.
type CarouselSnapshot struct {
	State         string   `json:"state"`
	Index         int      `json:"index"`
	DragOffset    float64  `json:"drag_offset"`
	Banners       []Banner `json:"banners"`
	FailedBanners []string `json:"failed_banners,omitempty"`
}

// Snapshot captures the externally visible state of the carousel.
func (c *Carousel) Snapshot() CarouselSnapshot {
	return CarouselSnapshot{
		State:         c.state.String(),
		Index:         c.index,
		DragOffset:    c.dragOffset,
		Banners:       c.Banners(),
		FailedBanners: c.FailedBanners(),
	}
}
