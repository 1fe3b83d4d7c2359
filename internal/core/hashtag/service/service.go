package hashtagapp

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"socialite/internal/apperrors"
	hashtagEntity "socialite/internal/core/hashtag"
	hashtagPort "socialite/internal/ports/hashtag"
	likePort "socialite/internal/ports/like"
	postPort "socialite/internal/ports/post"
)

var tagPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const maxTagLength = 50

// HashtagService owns tag normalization and the tag -> posts lookup.
type HashtagService struct {
	HashtagRepository hashtagPort.HashtagRepository
	PostRepository    postPort.PostRepository
	LikeRepository    likePort.LikeRepository
}

func NewHashtagService(
	hashtagRepo hashtagPort.HashtagRepository,
	postRepo postPort.PostRepository,
	likeRepo likePort.LikeRepository,
) *HashtagService {
	return &HashtagService{
		HashtagRepository: hashtagRepo,
		PostRepository:    postRepo,
		LikeRepository:    likeRepo,
	}
}

// Normalize folds a raw tag to its canonical stored form.
func Normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

func validateTag(tag string) error {
	if tag == "" || len(tag) > maxTagLength || !tagPattern.MatchString(tag) {
		return fmt.Errorf("%w: tag must be 1-%d letters, numbers or underscores", apperrors.ErrValidation, maxTagLength)
	}
	return nil
}

// Ensure returns the hashtag for tag, creating it when absent. When a
// concurrent caller creates the same tag first, the insert loses against
// the unique index and the winner's row is re-read and returned.
func (s *HashtagService) Ensure(ctx context.Context, tag string) (*hashtagEntity.Hashtag, error) {
	normalized := Normalize(tag)
	if err := validateTag(normalized); err != nil {
		return nil, err
	}
	h, err := s.HashtagRepository.FindByTag(ctx, normalized)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	created, err := s.HashtagRepository.Create(ctx, &hashtagEntity.Hashtag{Tag: normalized})
	if err == nil {
		return created, nil
	}
	if errors.Is(err, apperrors.ErrDuplicate) {
		return s.HashtagRepository.FindByTag(ctx, normalized)
	}
	return nil, err
}

// PostsByTag looks the tag up case-insensitively. An unknown tag yields an
// empty page, not an error.
func (s *HashtagService) PostsByTag(ctx context.Context, tag string, limit, offset int) ([]*postPort.PostDTO, int64, error) {
	h, err := s.HashtagRepository.FindByTag(ctx, Normalize(tag))
	if errors.Is(err, apperrors.ErrNotFound) {
		return []*postPort.PostDTO{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	posts, total, err := s.PostRepository.FindByHashtag(ctx, h.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos, err := postPort.ToDTOs(ctx, s.LikeRepository, posts)
	if err != nil {
		return nil, 0, err
	}
	return dtos, total, nil
}

// Create registers a tag explicitly and rejects one that already exists.
func (s *HashtagService) Create(ctx context.Context, tag string) (*hashtagPort.HashtagDTO, error) {
	normalized := Normalize(tag)
	if err := validateTag(normalized); err != nil {
		return nil, err
	}
	h, err := s.HashtagRepository.Create(ctx, &hashtagEntity.Hashtag{Tag: normalized})
	if err != nil {
		return nil, err
	}
	return hashtagPort.ToDTO(h, 0), nil
}

func (s *HashtagService) Get(ctx context.Context, id uint) (*hashtagPort.HashtagDTO, error) {
	h, err := s.HashtagRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.PostRepository.CountByHashtag(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	return hashtagPort.ToDTO(h, count), nil
}

func (s *HashtagService) List(ctx context.Context, limit, offset int) ([]*hashtagPort.HashtagDTO, int64, error) {
	tags, total, err := s.HashtagRepository.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	dtos := make([]*hashtagPort.HashtagDTO, 0, len(tags))
	for _, h := range tags {
		count, err := s.PostRepository.CountByHashtag(ctx, h.ID)
		if err != nil {
			return nil, 0, err
		}
		dtos = append(dtos, hashtagPort.ToDTO(h, count))
	}
	return dtos, total, nil
}

// Update renames a tag; the new value must not collide with another tag.
func (s *HashtagService) Update(ctx context.Context, id uint, tag string) (*hashtagPort.HashtagDTO, error) {
	normalized := Normalize(tag)
	if err := validateTag(normalized); err != nil {
		return nil, err
	}
	h, err := s.HashtagRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing, err := s.HashtagRepository.FindByTag(ctx, normalized)
	if err == nil && existing.ID != id {
		return nil, fmt.Errorf("%w: another hashtag uses this tag", apperrors.ErrDuplicate)
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	h.Tag = normalized
	updated, err := s.HashtagRepository.Update(ctx, h)
	if err != nil {
		return nil, err
	}
	count, err := s.PostRepository.CountByHashtag(ctx, updated.ID)
	if err != nil {
		return nil, err
	}
	return hashtagPort.ToDTO(updated, count), nil
}

func (s *HashtagService) Delete(ctx context.Context, id uint) error {
	return s.HashtagRepository.Delete(ctx, id)
}
