package database

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"socialite/internal/apperrors"
	"socialite/internal/core/hashtag"
	"socialite/internal/core/like"
	"socialite/internal/core/post"
)

// PostRepositoryDatabase implements the post repository port over gorm.
type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit("Author", "Likes").Create(p).Error; err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Hashtags").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindAll(ctx context.Context, limit, offset int) ([]*post.Post, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&post.Post{}).Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Hashtags").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return posts, total, nil
}

// FindByAuthors orders the union of all authors' posts globally before the
// window is applied, so interleaving across authors stays correct.
func (repo *PostRepositoryDatabase) FindByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]*post.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []*post.Post{}, 0, nil
	}
	base := repo.db.WithContext(ctx).Model(&post.Post{}).Where("author_id IN ?", authorIDs)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var posts []*post.Post
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Hashtags").
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) FindByAuthor(ctx context.Context, authorID uuid.UUID, start, end *time.Time) ([]*post.Post, error) {
	var posts []*post.Post
	q := repo.db.WithContext(ctx).Where("author_id = ?", authorID)
	q = timeBounds(q, "created_at", start, end)
	if err := q.Order("created_at DESC, id ASC").Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindByHashtag(ctx context.Context, hashtagID uint, limit, offset int) ([]*post.Post, int64, error) {
	joined := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&post.Post{}).
			Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
			Where("post_hashtags.hashtag_id = ?", hashtagID)
	}
	var total int64
	if err := joined().Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	var posts []*post.Post
	err := joined().
		Preload("Author").
		Preload("Hashtags").
		Order("posts.created_at DESC, posts.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, translate(err)
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) CountByHashtag(ctx context.Context, hashtagID uint) (int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).Model(&post.Post{}).
		Joins("JOIN post_hashtags ON post_hashtags.post_id = posts.id").
		Where("post_hashtags.hashtag_id = ?", hashtagID).
		Count(&total).Error
	if err != nil {
		return 0, translate(err)
	}
	return total, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit("Author", "Hashtags", "Likes").Save(p).Error; err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) ReplaceHashtags(ctx context.Context, p *post.Post, tags []hashtag.Hashtag) error {
	if err := repo.db.WithContext(ctx).Model(p).Association("Hashtags").Replace(&tags); err != nil {
		return translate(err)
	}
	return nil
}

// Delete removes the post, its likes and its hashtag associations in one
// transaction.
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&like.Like{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Exec("DELETE FROM post_hashtags WHERE post_id = ?", id).Error; err != nil {
			return translate(err)
		}
		res := tx.Delete(&post.Post{}, id)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}
