package hashtag

import "time"

// Hashtag tags are stored normalized to lowercase; the unique index on tag
// is what makes concurrent Ensure calls for the same tag safe.
type Hashtag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Tag       string    `gorm:"size:255;unique;not null;index:idx_hashtag_tag" json:"tag"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
