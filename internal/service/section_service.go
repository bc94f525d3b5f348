package service

import (
	"context"

	"lyceum.by/newsportal/internal/model"
	"lyceum.by/newsportal/internal/repository"
)

type SectionService interface {
	List(ctx context.Context) ([]model.Section, error)
}

type sectionService struct {
	repo repository.SectionRepository
}

func NewSectionService(repo repository.SectionRepository) SectionService {
	return &sectionService{repo: repo}
}

func (s *sectionService) List(ctx context.Context) ([]model.Section, error) {
	return s.repo.FindAll(ctx)
}
