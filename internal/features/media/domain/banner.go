package domain

import (
	"errors"
	"time"
)

// BannerType distinguishes the kind of media a banner renders.
type BannerType string

const (
	BannerTypeImage BannerType = "image"
	BannerTypeVideo BannerType = "video"
)

var (
	ErrInvalidBannerType    = errors.New("invalid banner type")
	ErrMissingFileReference = errors.New("missing file reference")
)

// Banner represents a single carousel slide (image or video).
type Banner struct {
	ID string `json:"id"`
	// Type is the media kind, image or video.
	Type BannerType `json:"type"`
	// FileReference points at the asset on the file-serving endpoint.
	FileReference string `json:"file_reference"`
	// MimeType is the content type used by the media element.
	MimeType string `json:"mime_type"`
	// DisplayOrder controls the position within the carousel sequence.
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewBanner creates a new Banner and validates it.
func NewBanner(id string, bannerType BannerType, fileReference, mimeType string, displayOrder int) (*Banner, error) {
	if bannerType != BannerTypeImage && bannerType != BannerTypeVideo {
		return nil, ErrInvalidBannerType
	}
	if fileReference == "" {
		return nil, ErrMissingFileReference
	}

	return &Banner{
		ID:            id,
		Type:          bannerType,
		FileReference: fileReference,
		MimeType:      mimeType,
		DisplayOrder:  displayOrder,
		CreatedAt:     time.Now(),
	}, nil
}
