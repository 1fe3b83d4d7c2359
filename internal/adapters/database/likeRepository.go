package database

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"socialite/internal/apperrors"
	"socialite/internal/core/like"
	likePort "socialite/internal/ports/like"
)

// LikeRepositoryDatabase implements the like repository port over gorm.
type LikeRepositoryDatabase struct {
	db *gorm.DB
}

func NewLikeRepositoryDatabase(db *gorm.DB) *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{db: db}
}

// Create inserts the like; the unique (user_id, post_id) index turns a
// concurrent double-like into ErrDuplicate for the loser.
func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) (*like.Like, error) {
	if err := repo.db.WithContext(ctx).Create(l).Error; err != nil {
		return nil, translate(err)
	}
	return l, nil
}

func (repo *LikeRepositoryDatabase) FindByID(ctx context.Context, id uint) (*like.Like, error) {
	var l like.Like
	if err := repo.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (repo *LikeRepositoryDatabase) FindAll(ctx context.Context, limit, offset int) ([]*like.Like, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&like.Like{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var likes []*like.Like
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&likes).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return likes, total, nil
}

// FindByUser joins each like with the liked post so the activity stream can
// carry the post content in its payload.
func (repo *LikeRepositoryDatabase) FindByUser(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]*likePort.LikeWithPost, error) {
	var rows []*likePort.LikeWithPost
	q := repo.db.WithContext(ctx).Model(&like.Like{}).
		Select("likes.*, posts.content AS post_content").
		Joins("JOIN posts ON posts.id = likes.post_id").
		Where("likes.user_id = ?", userID)
	q = timeBounds(q, "likes.created_at", start, end)
	if err := q.Order("likes.created_at DESC, likes.id ASC").Scan(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (repo *LikeRepositoryDatabase) CountByPostIDs(ctx context.Context, postIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		PostID uint
		Total  int64
	}
	err := repo.db.WithContext(ctx).Model(&like.Like{}).
		Select("post_id, COUNT(*) AS total").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		counts[r.PostID] = r.Total
	}
	return counts, nil
}

func (repo *LikeRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	res := repo.db.WithContext(ctx).Delete(&like.Like{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
