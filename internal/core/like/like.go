package like

import (
	"time"

	"github.com/gofrs/uuid"
)

// Like rows are unique per (user, post); a second like of the same post by
// the same user violates the index and is reported as a duplicate.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_like_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:uniq_like_user_post;index:idx_like_post" json:"postId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
