package hashtag

import (
	"context"
	"time"

	"socialite/internal/core/hashtag"
)

// HashtagRepository is the outbound port for hashtags. Create maps a
// unique-index violation on tag to apperrors.ErrDuplicate so callers can
// resolve concurrent ensures by re-reading.
type HashtagRepository interface {
	Create(ctx context.Context, h *hashtag.Hashtag) (*hashtag.Hashtag, error)
	FindByID(ctx context.Context, id uint) (*hashtag.Hashtag, error)
	FindByTag(ctx context.Context, tag string) (*hashtag.Hashtag, error)
	FindAll(ctx context.Context, limit, offset int) ([]*hashtag.Hashtag, int64, error)
	Update(ctx context.Context, h *hashtag.Hashtag) (*hashtag.Hashtag, error)
	Delete(ctx context.Context, id uint) error
}

type HashtagDTO struct {
	ID        uint      `json:"id"`
	Tag       string    `json:"tag"`
	PostCount int64     `json:"postCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToDTO(h *hashtag.Hashtag, postCount int64) *HashtagDTO {
	return &HashtagDTO{
		ID:        h.ID,
		Tag:       h.Tag,
		PostCount: postCount,
		CreatedAt: h.CreatedAt,
	}
}
