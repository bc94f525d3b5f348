package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/model"
	"lyceum.by/newsportal/internal/repository"
)

type testApp struct {
	router *gin.Engine
	db     *gorm.DB
	called *bool
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	m := NewAuthMiddleware(repository.NewUserRepository(db))

	router := gin.New()
	router.Use(sessions.Sessions("session", cookie.NewStore([]byte("test-secret"))))
	router.Use(m.LoadUser())

	called := false
	markCalled := func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	}

	router.POST("/testlogin", func(c *gin.Context) {
		var user model.User
		if err := db.First(&user).Error; err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		if err := SetSessionUser(c, user.ID, false); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	protected := router.Group("")
	protected.Use(m.RequireAuth())
	protected.POST("/panel", markCalled)
	protected.POST("/new", markCalled)

	return &testApp{router: router, db: db, called: &called}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	tests := []struct {
		target   string
		wantNext string
	}{
		{"/panel", "/login?next=%2Fpanel"},
		{"/new?id=1", "/login?next=%2Fnew%3Fid%3D1"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			app := newTestApp(t)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			app.router.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Errorf("status = %d, want %d", w.Code, http.StatusSeeOther)
			}
			if got := w.Header().Get("Location"); got != tt.wantNext {
				t.Errorf("Location = %q, want %q", got, tt.wantNext)
			}
			if *app.called {
				t.Error("protected handler ran for anonymous request")
			}
		})
	}
}

func TestRequireAuthAllowsSessionUser(t *testing.T) {
	app := newTestApp(t)

	user := model.User{Login: "admin", Email: "+375 29 000 00 00", PasswordHash: "x"}
	if err := app.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/testlogin", nil)
	app.router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("login status = %d, want %d", w.Code, http.StatusNoContent)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/panel", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	app.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !*app.called {
		t.Error("protected handler did not run for authenticated request")
	}
}

func TestLoadUserIgnoresStaleSession(t *testing.T) {
	app := newTestApp(t)

	user := model.User{Login: "admin", Email: "+375 29 000 00 00", PasswordHash: "x"}
	if err := app.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/testlogin", nil)
	app.router.ServeHTTP(w, req)
	cookies := w.Result().Cookies()

	if err := app.db.Delete(&user).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/panel", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	app.router.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want redirect for stale session", w.Code)
	}
	if *app.called {
		t.Error("protected handler ran with stale session")
	}
}
