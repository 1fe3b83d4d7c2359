package like

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/core/like"
)

// LikeWithPost is a like joined with the liked post's content, fetched for
// activity payload enrichment.
type LikeWithPost struct {
	like.Like
	PostContent string
}

// LikeRepository is the outbound port for likes. Create relies on the
// unique (user, post) index for the at-most-one-like invariant.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) (*like.Like, error)
	FindByID(ctx context.Context, id uint) (*like.Like, error)
	FindAll(ctx context.Context, limit, offset int) ([]*like.Like, int64, error)
	// FindByUser returns the user's full like history joined with the liked
	// posts, inside the optional inclusive bounds, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*LikeWithPost, error)
	// CountByPostIDs returns like counts keyed by post id; posts with no
	// likes are simply absent from the map.
	CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error)
	Delete(ctx context.Context, id uint) error
}

type LikeDTO struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"userId"`
	PostID    uint      `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToDTO(l *like.Like) *LikeDTO {
	return &LikeDTO{
		ID:        l.ID,
		UserID:    l.UserID.String(),
		PostID:    l.PostID,
		CreatedAt: l.CreatedAt,
	}
}
