package feedapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
	followPort "socialite/internal/ports/follow"
	likePort "socialite/internal/ports/like"
	postPort "socialite/internal/ports/post"
	userPort "socialite/internal/ports/user"
)

// FeedService builds a user's timeline at read time: resolve who they
// follow, then window the union of those authors' posts newest first.
// Nothing is precomputed or cached.
type FeedService struct {
	UserRepository   userPort.UserRepository
	FollowRepository followPort.FollowRepository
	PostRepository   postPort.PostRepository
	LikeRepository   likePort.LikeRepository
}

func NewFeedService(
	userRepo userPort.UserRepository,
	followRepo followPort.FollowRepository,
	postRepo postPort.PostRepository,
	likeRepo likePort.LikeRepository,
) *FeedService {
	return &FeedService{
		UserRepository:   userRepo,
		FollowRepository: followRepo,
		PostRepository:   postRepo,
		LikeRepository:   likeRepo,
	}
}

// Feed returns one page of the user's reverse-chronological timeline plus
// the total number of posts behind it. Following no one yields an empty
// page with total 0, not an error.
func (s *FeedService) Feed(ctx context.Context, userID string, limit, offset int) ([]*postPort.PostDTO, int64, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	if _, err := s.UserRepository.FindByID(ctx, uid); err != nil {
		return nil, 0, err
	}

	// The complete following set forms the author filter; the edge count is
	// bounded by how many accounts one user can follow.
	followingIDs, err := s.FollowRepository.FollowingIDs(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []*postPort.PostDTO{}, 0, nil
	}

	posts, total, err := s.PostRepository.FindByAuthors(ctx, followingIDs, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos, err := postPort.ToDTOs(ctx, s.LikeRepository, posts)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}
