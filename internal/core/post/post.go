package post

import (
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/core/hashtag"
	"socialite/internal/core/like"
	"socialite/internal/core/user"
)

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uuid.UUID `gorm:"type:char(36);not null;index:idx_post_author" json:"authorId"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_post_created" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Author   user.User         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Hashtags []hashtag.Hashtag `gorm:"many2many:post_hashtags" json:"hashtags"`
	Likes    []like.Like       `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
