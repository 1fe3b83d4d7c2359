package database

import (
	"context"

	"gorm.io/gorm"

	"socialite/internal/apperrors"
	"socialite/internal/core/hashtag"
)

// HashtagRepositoryDatabase implements the hashtag repository port over gorm.
type HashtagRepositoryDatabase struct {
	db *gorm.DB
}

func NewHashtagRepositoryDatabase(db *gorm.DB) *HashtagRepositoryDatabase {
	return &HashtagRepositoryDatabase{db: db}
}

// Create inserts the tag; a concurrent insert of the same tag loses against
// the unique index and surfaces as ErrDuplicate.
func (repo *HashtagRepositoryDatabase) Create(ctx context.Context, h *hashtag.Hashtag) (*hashtag.Hashtag, error) {
	if err := repo.db.WithContext(ctx).Create(h).Error; err != nil {
		return nil, translate(err)
	}
	return h, nil
}

func (repo *HashtagRepositoryDatabase) FindByID(ctx context.Context, id uint) (*hashtag.Hashtag, error) {
	var h hashtag.Hashtag
	if err := repo.db.WithContext(ctx).First(&h, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (repo *HashtagRepositoryDatabase) FindByTag(ctx context.Context, tag string) (*hashtag.Hashtag, error) {
	var h hashtag.Hashtag
	if err := repo.db.WithContext(ctx).First(&h, "tag = ?", tag).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (repo *HashtagRepositoryDatabase) FindAll(ctx context.Context, limit, offset int) ([]*hashtag.Hashtag, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&hashtag.Hashtag{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var tags []*hashtag.Hashtag
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tags).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return tags, total, nil
}

func (repo *HashtagRepositoryDatabase) Update(ctx context.Context, h *hashtag.Hashtag) (*hashtag.Hashtag, error) {
	if err := repo.db.WithContext(ctx).Save(h).Error; err != nil {
		return nil, translate(err)
	}
	return h, nil
}

// Delete clears the post associations before removing the tag itself.
func (repo *HashtagRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_hashtags WHERE hashtag_id = ?", id).Error; err != nil {
			return translate(err)
		}
		res := tx.Delete(&hashtag.Hashtag{}, id)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
