package post

import (
	"context"
	"time"

	"github.com/gofrs/uuid"

	"socialite/internal/core/hashtag"
	"socialite/internal/core/post"
	likePort "socialite/internal/ports/like"
	userPort "socialite/internal/ports/user"
)

// PostRepository is the outbound port for post persistence. List-shaped
// queries order by created_at DESC with id ASC breaking ties, so repeated
// reads paginate over a stable sequence.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	FindAll(ctx context.Context, limit, offset int) ([]*post.Post, int64, error)
	// FindByAuthors windows the union of all listed authors' posts under a
	// single global ordering, never per author.
	FindByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*post.Post, int64, error)
	// FindByAuthor returns one author's full history inside the optional
	// inclusive time bounds, newest first.
	FindByAuthor(ctx context.Context, authorID uuid.UUID, start, end *time.Time) ([]*post.Post, error)
	FindByHashtag(ctx context.Context, hashtagID uint, limit, offset int) ([]*post.Post, int64, error)
	CountByHashtag(ctx context.Context, hashtagID uint) (int64, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	ReplaceHashtags(ctx context.Context, p *post.Post, tags []hashtag.Hashtag) error
	// Delete removes the post and its likes in one transaction.
	Delete(ctx context.Context, id uint) error
}

type PostDTO struct {
	ID        uint              `json:"id"`
	Content   string            `json:"content"`
	AuthorID  string            `json:"authorId"`
	Author    *userPort.UserDTO `json:"author,omitempty"`
	Hashtags  []string          `json:"hashtags"`
	LikeCount int64             `json:"likeCount"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func ToDTO(p *post.Post, likeCount int64) *PostDTO {
	tags := make([]string, 0, len(p.Hashtags))
	for _, h := range p.Hashtags {
		tags = append(tags, h.Tag)
	}
	dto := &PostDTO{
		ID:        p.ID,
		Content:   p.Content,
		AuthorID:  p.AuthorID.String(),
		Hashtags:  tags,
		LikeCount: likeCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author.ID != uuid.Nil {
		dto.Author = userPort.ToDTO(&p.Author)
	}
	return dto
}

// ToDTOs maps a page of posts, resolving their like counts in one grouped
// query against the like repository.
func ToDTOs(ctx context.Context, likes likePort.LikeRepository, posts []*post.Post) ([]*PostDTO, error) {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	counts, err := likes.CountByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	dtos := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, ToDTO(p, counts[p.ID]))
	}
	return dtos, nil
}
