package follow

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/core/follow"
	userPort "socialite/internal/ports/user"
)

// FollowRepository is the outbound port for follow edges. Create relies on
// the unique (follower, following) index and reports a duplicate edge as
// apperrors.ErrDuplicate rather than pre-checking.
type FollowRepository interface {
	Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error)
	FindByID(ctx context.Context, id uint) (*follow.Follow, error)
	FindAll(ctx context.Context, limit, offset int) ([]*follow.Follow, int64, error)
	// FollowersOf lists edges pointing at userID, follower profile loaded.
	FollowersOf(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*follow.Follow, int64, error)
	// FollowingOf lists edges leaving followerID, followed profile loaded.
	FollowingOf(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]*follow.Follow, int64, error)
	// FollowingIDs resolves the complete set of users followerID follows.
	FollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	// FindByFollower returns the full edge history for the activity stream,
	// followed profile loaded, inside the optional inclusive bounds.
	FindByFollower(ctx context.Context, followerID uuid.UUID, start, end *time.Time) ([]*follow.Follow, error)
	Delete(ctx context.Context, id uint) error
}

type FollowDTO struct {
	ID          uint      `json:"id"`
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FollowerProfileDTO is a follower listing entry: the follower's profile
// plus when the edge was created.
type FollowerProfileDTO struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	FollowedAt time.Time `json:"followedAt"`
}

// FollowDetailDTO is an edge with both profiles loaded.
type FollowDetailDTO struct {
	ID        uint              `json:"id"`
	Follower  *userPort.UserDTO `json:"follower"`
	Following *userPort.UserDTO `json:"following"`
	CreatedAt time.Time         `json:"createdAt"`
}

func ToDetailDTO(f *follow.Follow) *FollowDetailDTO {
	return &FollowDetailDTO{
		ID:        f.ID,
		Follower:  userPort.ToDTO(&f.Follower),
		Following: userPort.ToDTO(&f.Following),
		CreatedAt: f.CreatedAt,
	}
}

func ToDTO(f *follow.Follow) *FollowDTO {
	return &FollowDTO{
		ID:          f.ID,
		FollowerID:  f.FollowerID.String(),
		FollowingID: f.FollowingID.String(),
		CreatedAt:   f.CreatedAt,
	}
}
