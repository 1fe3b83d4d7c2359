package follow

import (
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/core/user"
)

// Follow is a directed edge: Follower follows Following. The unique index
// over the pair rejects duplicate edges in the same direction.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_following;index:idx_follow_follower" json:"followerId"`
	FollowingID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_follower_following;index:idx_follow_following" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`

	Follower  user.User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following user.User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}
