package database

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"socialite/internal/apperrors"
	"socialite/internal/core/follow"
)

// FollowRepositoryDatabase implements the follow repository port over gorm.
type FollowRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowRepositoryDatabase(db *gorm.DB) *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{db: db}
}

// Create inserts the edge; the unique (follower_id, following_id) index
// turns a concurrent double-insert into ErrDuplicate for the loser.
func (repo *FollowRepositoryDatabase) Create(ctx context.Context, f *follow.Follow) (*follow.Follow, error) {
	if err := repo.db.WithContext(ctx).Omit("Follower", "Following").Create(f).Error; err != nil {
		return nil, translate(err)
	}
	return f, nil
}

func (repo *FollowRepositoryDatabase) FindByID(ctx context.Context, id uint) (*follow.Follow, error) {
	var f follow.Follow
	err := repo.db.WithContext(ctx).
		Preload("Follower").
		Preload("Following").
		First(&f, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &f, nil
}

func (repo *FollowRepositoryDatabase) FindAll(ctx context.Context, limit, offset int) ([]*follow.Follow, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&follow.Follow{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var follows []*follow.Follow
	err := repo.db.WithContext(ctx).
		Preload("Follower").
		Preload("Following").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return follows, total, nil
}

func (repo *FollowRepositoryDatabase) FollowersOf(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*follow.Follow, int64, error) {
	base := repo.db.WithContext(ctx).Model(&follow.Follow{}).Where("following_id = ?", userID)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var follows []*follow.Follow
	err := repo.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return follows, total, nil
}

func (repo *FollowRepositoryDatabase) FollowingOf(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]*follow.Follow, int64, error) {
	base := repo.db.WithContext(ctx).Model(&follow.Follow{}).Where("follower_id = ?", followerID)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var follows []*follow.Follow
	err := repo.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&follows).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return follows, total, nil
}

func (repo *FollowRepositoryDatabase) FollowingIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).Model(&follow.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

func (repo *FollowRepositoryDatabase) FindByFollower(ctx context.Context, followerID uuid.UUID, start, end *time.Time) ([]*follow.Follow, error) {
	var follows []*follow.Follow
	q := repo.db.WithContext(ctx).Where("follower_id = ?", followerID)
	q = timeBounds(q, "created_at", start, end)
	err := q.Preload("Following").
		Order("created_at DESC, id ASC").
		Find(&follows).Error
	if err != nil {
		return nil, translate(err)
	}
	return follows, nil
}

func (repo *FollowRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	res := repo.db.WithContext(ctx).Delete(&follow.Follow{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
