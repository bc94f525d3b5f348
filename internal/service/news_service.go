package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
	"lyceum.by/newsportal/internal/repository"
	"lyceum.by/newsportal/pkg/apperror"
	"lyceum.by/newsportal/pkg/storage"
)

type CreateNewsInput struct {
	Title       string `form:"title" binding:"required,max=35"`
	Description string `form:"description" binding:"required,max=100"`
	Text        string `form:"text" binding:"required,max=1000"`
	Type        string `form:"type" binding:"required,max=30"`
}

// ImageFile carries the uploaded news image.
type ImageFile struct {
	Reader   io.Reader
	FileName string
}

// NewsPage is one slice of the listing plus the numbers the pager needs.
type NewsPage struct {
	Items   []model.News
	Page    int
	MaxPage int
	Total   int
}

type NewsService interface {
	List(ctx context.Context, typeFilter string, page int) (*NewsPage, error)
	Get(ctx context.Context, id uint) (*model.News, int64, error)
	Liked(ctx context.Context, userID, newsID uint) (bool, error)
	Create(ctx context.Context, input CreateNewsInput, image *ImageFile) error
	ToggleLike(ctx context.Context, userID, newsID uint) (bool, int64, error)
}

type newsService struct {
	repo         repository.NewsRepository
	likes        repository.LikeRepository
	imageStorage storage.ImageStorage
	sanitizer    *bluemonday.Policy
	pageSize     int
}

func NewNewsService(repo repository.NewsRepository, likes repository.LikeRepository, imageStorage storage.ImageStorage, pageSize int) NewsService {
	return &newsService{
		repo:         repo,
		likes:        likes,
		imageStorage: imageStorage,
		sanitizer:    bluemonday.UGCPolicy(),
		pageSize:     pageSize,
	}
}

func (s *newsService) List(ctx context.Context, typeFilter string, page int) (*NewsPage, error) {
	news, err := s.repo.FindAll(ctx, typeFilter)
	if err != nil {
		return nil, err
	}

	// Report the same page the slice was cut for, so the pager never
	// shows "page 0".
	if page < 1 {
		page = 1
	}
	items, maxPage := paginate(news, page, s.pageSize)
	return &NewsPage{
		Items:   items,
		Page:    page,
		MaxPage: maxPage,
		Total:   len(news),
	}, nil
}

func (s *newsService) Get(ctx context.Context, id uint) (*model.News, int64, error) {
	news, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperror.ErrNotFound
		}
		return nil, 0, err
	}

	count, err := s.likes.CountFor(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	return news, count, nil
}

func (s *newsService) Liked(ctx context.Context, userID, newsID uint) (bool, error) {
	return s.likes.Contains(ctx, userID, newsID)
}

func (s *newsService) Create(ctx context.Context, input CreateNewsInput, image *ImageFile) error {
	imagePath, err := s.imageStorage.SaveImage(ctx, image.Reader, image.FileName)
	if err != nil {
		return err
	}

	news := &model.News{
		Title:       input.Title,
		Description: input.Description,
		Text:        s.sanitizer.Sanitize(input.Text),
		Date:        time.Now().Format("2006-01-02"),
		Type:        input.Type,
		ImagePath:   imagePath,
	}

	return s.repo.Create(ctx, news)
}

// ToggleLike flips the like state of the pair and returns the new state
// together with the item's like count.
func (s *newsService) ToggleLike(ctx context.Context, userID, newsID uint) (bool, int64, error) {
	if _, err := s.repo.FindByID(ctx, newsID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, apperror.ErrNotFound
		}
		return false, 0, err
	}

	liked, err := s.likes.Contains(ctx, userID, newsID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = s.likes.Remove(ctx, userID, newsID)
	} else {
		err = s.likes.Add(ctx, userID, newsID)
	}
	if err != nil {
		return false, 0, err
	}

	count, err := s.likes.CountFor(ctx, newsID)
	if err != nil {
		return false, 0, err
	}

	return !liked, count, nil
}

// paginate cuts one page out of items. Pages start at 1; a page past the
// end comes back empty rather than as an error.
func paginate(items []model.News, page, size int) ([]model.News, int) {
	maxPage := (len(items) + size - 1) / size

	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil, maxPage
	}

	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], maxPage
}
