package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
	"lyceum.by/newsportal/internal/repository"
	"lyceum.by/newsportal/pkg/apperror"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.News{}, &model.Section{}, &model.NewsLike{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func userCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count users: %v", err)
	}
	return count
}

func TestRegisterThenLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	input := RegisterInput{
		Login:    "petrov",
		Email:    "+375 29 123 45 67",
		Password: "secret1",
	}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := svc.Login(ctx, "petrov", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Login != "petrov" {
		t.Errorf("Login() user = %q, want %q", user.Login, "petrov")
	}

	if _, err := svc.Login(ctx, "petrov", "wrong"); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() with bad password error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody", "secret1"); !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("Login() with unknown login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	first := RegisterInput{Login: "ivanova", Email: "+375 29 111 11 11", Password: "secret1"}
	if _, err := svc.Register(ctx, first); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	second := RegisterInput{Login: "ivanova", Email: "+375 29 222 22 22", Password: "secret2"}
	if _, err := svc.Register(ctx, second); !errors.Is(err, apperror.ErrDuplicateLogin) {
		t.Errorf("Register() error = %v, want ErrDuplicateLogin", err)
	}

	if got := userCount(t, db); got != 1 {
		t.Errorf("user count = %d, want 1", got)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	first := RegisterInput{Login: "ivanova", Email: "+375 29 111 11 11", Password: "secret1"}
	if _, err := svc.Register(ctx, first); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	second := RegisterInput{Login: "sidorov", Email: "+375 29 111 11 11", Password: "secret2"}
	if _, err := svc.Register(ctx, second); !errors.Is(err, apperror.ErrDuplicateEmail) {
		t.Errorf("Register() error = %v, want ErrDuplicateEmail", err)
	}

	if got := userCount(t, db); got != 1 {
		t.Errorf("user count = %d, want 1", got)
	}
}

func TestRegisterPhoneFormat(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+375 29 123 45 67", true},
		{"+375 44 000 00 00", true},
		{"123456", false},
		{"+375291234567", false},
		{"375 29 123 45 67", false},
		{"+375 29 123 45 678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			db := newTestDB(t)
			svc := NewAuthService(repository.NewUserRepository(db))

			input := RegisterInput{Login: "petrov", Email: tt.phone, Password: "secret1"}
			_, err := svc.Register(context.Background(), input)

			if tt.valid && err != nil {
				t.Fatalf("Register(%q) error = %v, want nil", tt.phone, err)
			}
			if !tt.valid {
				if !errors.Is(err, apperror.ErrInvalidPhone) {
					t.Fatalf("Register(%q) error = %v, want ErrInvalidPhone", tt.phone, err)
				}
				if got := userCount(t, db); got != 0 {
					t.Errorf("user count = %d, want 0", got)
				}
			}
		})
	}
}
