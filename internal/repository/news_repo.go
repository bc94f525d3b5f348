package repository

import (
	"context"

	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
)

type NewsRepository interface {
	Create(ctx context.Context, news *model.News) error
	FindByID(ctx context.Context, id uint) (*model.News, error)
	FindAll(ctx context.Context, typeFilter string) ([]model.News, error)
}

type newsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(ctx context.Context, news *model.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*model.News, error) {
	var news model.News
	if err := r.db.WithContext(ctx).First(&news, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &news, nil
}

// FindAll returns news in insertion order, optionally narrowed to one
// section name. The match is exact and case-sensitive.
func (r *newsRepository) FindAll(ctx context.Context, typeFilter string) ([]model.News, error) {
	var news []model.News
	query := r.db.WithContext(ctx).Order("id")

	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}

	if err := query.Find(&news).Error; err != nil {
		return nil, err
	}
	return news, nil
}
