package repository

import (
	"context"

	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
)

type SectionRepository interface {
	FindAll(ctx context.Context) ([]model.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) FindAll(ctx context.Context) ([]model.Section, error) {
	var sections []model.Section
	if err := r.db.WithContext(ctx).Order("id").Find(&sections).Error; err != nil {
		return nil, err
	}
	return sections, nil
}
