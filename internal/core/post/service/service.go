package postapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
	hashtagEntity "socialite/internal/core/hashtag"
	postEntity "socialite/internal/core/post"
	likePort "socialite/internal/ports/like"
	postPort "socialite/internal/ports/post"
	userPort "socialite/internal/ports/user"
)

const maxContentLength = 5000

// HashtagEnsurer is the slice of the hashtag service posts need: tags named
// on a post are created on first sight.
type HashtagEnsurer interface {
	Ensure(ctx context.Context, tag string) (*hashtagEntity.Hashtag, error)
}

type PostService struct {
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
	LikeRepository likePort.LikeRepository
	Hashtags       HashtagEnsurer
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	likeRepo likePort.LikeRepository,
	hashtags HashtagEnsurer,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		UserRepository: userRepo,
		LikeRepository: likeRepo,
		Hashtags:       hashtags,
	}
}

func validateContent(content string) error {
	if content == "" {
		return fmt.Errorf("%w: post content cannot be empty", apperrors.ErrValidation)
	}
	if len(content) > maxContentLength {
		return fmt.Errorf("%w: post content must not exceed %d characters", apperrors.ErrValidation, maxContentLength)
	}
	return nil
}

// Create stores the post and attaches its hashtags, ensuring each tag
// exists first.
func (s *PostService) Create(ctx context.Context, content, authorID string, tags []string) (*postPort.PostDTO, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	aid, err := uuid.FromString(authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid author id", apperrors.ErrValidation)
	}
	if _, err := s.UserRepository.FindByID(ctx, aid); err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}

	p, err := s.PostRepository.Create(ctx, &postEntity.Post{
		Content:  content,
		AuthorID: aid,
	})
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := s.attachHashtags(ctx, p, tags); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, p.ID)
}

// Update replaces the content and, when tags are supplied, the hashtag set.
func (s *PostService) Update(ctx context.Context, id uint, content string, tags []string) (*postPort.PostDTO, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Content = content
	if _, err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := s.attachHashtags(ctx, p, tags); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

func (s *PostService) attachHashtags(ctx context.Context, p *postEntity.Post, tags []string) error {
	hashtags := make([]hashtagEntity.Hashtag, 0, len(tags))
	for _, tag := range tags {
		h, err := s.Hashtags.Ensure(ctx, tag)
		if err != nil {
			return fmt.Errorf("hashtag %q: %w", tag, err)
		}
		hashtags = append(hashtags, *h)
	}
	return s.PostRepository.ReplaceHashtags(ctx, p, hashtags)
}

func (s *PostService) Get(ctx context.Context, id uint) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.LikeRepository.CountByPostIDs(ctx, []uint{p.ID})
	if err != nil {
		return nil, err
	}
	return postPort.ToDTO(p, counts[p.ID]), nil
}

func (s *PostService) List(ctx context.Context, limit, offset int) ([]*postPort.PostDTO, int64, error) {
	posts, total, err := s.PostRepository.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos, err := postPort.ToDTOs(ctx, s.LikeRepository, posts)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

// Delete removes the post together with its likes.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.PostRepository.Delete(ctx, id)
}
