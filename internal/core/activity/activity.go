package activity

import "time"

// Kinds of activity a user produces. Derived at query time; nothing in this
// package is persisted.
const (
	KindPost   = "post"
	KindLike   = "like"
	KindFollow = "follow"
)

// Event is one entry in a user's merged activity stream: a post authored,
// a like given, or a follow made, tagged with its kind and timestamp.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// PostPayload carries the authored post.
type PostPayload struct {
	PostID    uint      `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikePayload enriches a like event with the liked post.
type LikePayload struct {
	PostID      uint   `json:"postId"`
	PostContent string `json:"postContent"`
}

// FollowPayload enriches a follow event with the followed user's profile.
type FollowPayload struct {
	FollowedUserID string `json:"followedUserId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
}
