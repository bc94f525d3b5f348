package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
	"lyceum.by/newsportal/internal/repository"
	"lyceum.by/newsportal/pkg/apperror"
	"lyceum.by/newsportal/pkg/validator"
)

type RegisterInput struct {
	Login    string `form:"login" binding:"required,max=20"`
	Email    string `form:"phone_number" binding:"required,phone_by"`
	Password string `form:"password" binding:"required,min=6"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, login, password string) (*model.User, error)
}

type authService struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	// Re-checked here so callers that skip form binding get the same answer.
	if !validator.ValidPhone(input.Email) {
		return nil, apperror.ErrInvalidPhone
	}

	if err := s.ensureUserUnique(ctx, input.Login, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Login:        input.Login,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
	}

	// Two registrations can pass ensureUserUnique at once; the unique
	// indexes decide the race and the loser lands here with an error.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) ensureUserUnique(ctx context.Context, login, email string) error {
	if _, err := s.repo.FindByLogin(ctx, login); err == nil {
		return apperror.ErrDuplicateLogin
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return apperror.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return nil
}
