package likeapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
	likeEntity "socialite/internal/core/like"
	likePort "socialite/internal/ports/like"
	postPort "socialite/internal/ports/post"
	userPort "socialite/internal/ports/user"
)

type LikeService struct {
	LikeRepository likePort.LikeRepository
	PostRepository postPort.PostRepository
	UserRepository userPort.UserRepository
}

func NewLikeService(
	likeRepo likePort.LikeRepository,
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
) *LikeService {
	return &LikeService{
		LikeRepository: likeRepo,
		PostRepository: postRepo,
		UserRepository: userRepo,
	}
}

// Like records that userID liked postID. A second like of the same post by
// the same user loses against the unique index and comes back ErrDuplicate.
func (s *LikeService) Like(ctx context.Context, userID string, postID uint) (*likePort.LikeDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	if _, err := s.UserRepository.FindByID(ctx, uid); err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}

	l, err := s.LikeRepository.Create(ctx, &likeEntity.Like{
		UserID: uid,
		PostID: postID,
	})
	if err != nil {
		return nil, err
	}
	return likePort.ToDTO(l), nil
}

// Unlike removes a like by its id.
func (s *LikeService) Unlike(ctx context.Context, id uint) error {
	return s.LikeRepository.Delete(ctx, id)
}

func (s *LikeService) Get(ctx context.Context, id uint) (*likePort.LikeDTO, error) {
	l, err := s.LikeRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return likePort.ToDTO(l), nil
}

func (s *LikeService) List(ctx context.Context, limit, offset int) ([]*likePort.LikeDTO, int64, error) {
	likes, total, err := s.LikeRepository.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]*likePort.LikeDTO, 0, len(likes))
	for _, l := range likes {
		dtos = append(dtos, likePort.ToDTO(l))
	}
	return dtos, total, nil
}
