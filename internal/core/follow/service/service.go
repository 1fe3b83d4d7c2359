package followapp

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"socialite/internal/apperrors"
	followEntity "socialite/internal/core/follow"
	followPort "socialite/internal/ports/follow"
	userPort "socialite/internal/ports/user"
)

// FollowService is the social graph accessor: it owns follow edges and
// answers who-follows-whom with pagination.
type FollowService struct {
	FollowRepository followPort.FollowRepository
	UserRepository   userPort.UserRepository
}

func NewFollowService(followRepo followPort.FollowRepository, userRepo userPort.UserRepository) *FollowService {
	return &FollowService{
		FollowRepository: followRepo,
		UserRepository:   userRepo,
	}
}

// Follow creates the edge follower -> following. Self-follows and duplicate
// edges are rejected; the duplicate check is the unique index itself, so
// concurrent identical requests cannot double-insert.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID string) (*followPort.FollowDTO, error) {
	if followerID == followingID {
		return nil, fmt.Errorf("%w: cannot follow yourself", apperrors.ErrSelfReference)
	}
	fid, err := uuid.FromString(followerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid follower id", apperrors.ErrValidation)
	}
	gid, err := uuid.FromString(followingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid following id", apperrors.ErrValidation)
	}
	if _, err := s.UserRepository.FindByID(ctx, fid); err != nil {
		return nil, fmt.Errorf("follower user: %w", err)
	}
	if _, err := s.UserRepository.FindByID(ctx, gid); err != nil {
		return nil, fmt.Errorf("user to follow: %w", err)
	}

	f, err := s.FollowRepository.Create(ctx, &followEntity.Follow{
		FollowerID:  fid,
		FollowingID: gid,
	})
	if err != nil {
		return nil, err
	}
	return followPort.ToDTO(f), nil
}

// Unfollow deletes the edge by its id.
func (s *FollowService) Unfollow(ctx context.Context, id uint) error {
	return s.FollowRepository.Delete(ctx, id)
}

func (s *FollowService) Get(ctx context.Context, id uint) (*followPort.FollowDetailDTO, error) {
	f, err := s.FollowRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return followPort.ToDetailDTO(f), nil
}

func (s *FollowService) List(ctx context.Context, limit, offset int) ([]*followPort.FollowDetailDTO, int64, error) {
	follows, total, err := s.FollowRepository.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]*followPort.FollowDetailDTO, 0, len(follows))
	for _, f := range follows {
		dtos = append(dtos, followPort.ToDetailDTO(f))
	}
	return dtos, total, nil
}

// FollowersOf lists who follows userID, newest edge first. A user with no
// followers gets an empty page, not an error.
func (s *FollowService) FollowersOf(ctx context.Context, userID string, limit, offset int) ([]*followPort.FollowerProfileDTO, int64, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	if _, err := s.UserRepository.FindByID(ctx, uid); err != nil {
		return nil, 0, err
	}
	follows, total, err := s.FollowRepository.FollowersOf(ctx, uid, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	profiles := make([]*followPort.FollowerProfileDTO, 0, len(follows))
	for _, f := range follows {
		profiles = append(profiles, &followPort.FollowerProfileDTO{
			ID:         f.Follower.ID.String(),
			FirstName:  f.Follower.FirstName,
			LastName:   f.Follower.LastName,
			Email:      f.Follower.Email,
			FollowedAt: f.CreatedAt,
		})
	}
	return profiles, total, nil
}

// FollowingOf lists who userID follows, newest edge first.
func (s *FollowService) FollowingOf(ctx context.Context, userID string, limit, offset int) ([]*followPort.FollowerProfileDTO, int64, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: invalid user id", apperrors.ErrValidation)
	}
	if _, err := s.UserRepository.FindByID(ctx, uid); err != nil {
		return nil, 0, err
	}
	follows, total, err := s.FollowRepository.FollowingOf(ctx, uid, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	profiles := make([]*followPort.FollowerProfileDTO, 0, len(follows))
	for _, f := range follows {
		profiles = append(profiles, &followPort.FollowerProfileDTO{
			ID:         f.Following.ID.String(),
			FirstName:  f.Following.FirstName,
			LastName:   f.Following.LastName,
			Email:      f.Following.Email,
			FollowedAt: f.CreatedAt,
		})
	}
	return profiles, total, nil
}
