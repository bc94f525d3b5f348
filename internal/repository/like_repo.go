package repository

import (
	"context"

	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
)

type LikeRepository interface {
	Add(ctx context.Context, userID, newsID uint) error
	Remove(ctx context.Context, userID, newsID uint) error
	Contains(ctx context.Context, userID, newsID uint) (bool, error)
	CountFor(ctx context.Context, newsID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Add(ctx context.Context, userID, newsID uint) error {
	like := model.NewsLike{
		UserID: userID,
		NewsID: newsID,
	}
	return r.db.WithContext(ctx).Create(&like).Error
}

func (r *likeRepository) Remove(ctx context.Context, userID, newsID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND news_id = ?", userID, newsID).
		Delete(&model.NewsLike{}).Error
}

func (r *likeRepository) Contains(ctx context.Context, userID, newsID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.NewsLike{}).
		Where("user_id = ? AND news_id = ?", userID, newsID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) CountFor(ctx context.Context, newsID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.NewsLike{}).
		Where("news_id = ?", newsID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
