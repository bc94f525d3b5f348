package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"lyceum.by/newsportal/internal/model"
	"lyceum.by/newsportal/internal/repository"
)

const (
	sessionUserKey = "user_id"
	contextUserKey = "user"

	rememberMaxAge = 30 * 24 * 60 * 60 // seconds
)

type AuthMiddleware struct {
	users repository.UserRepository
}

func NewAuthMiddleware(users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{users: users}
}

// LoadUser resolves the current user from the session cookie, if any.
// Anonymous requests pass through with no user in the context.
func (m *AuthMiddleware) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		v := session.Get(sessionUserKey)
		if v == nil {
			c.Next()
			return
		}

		id, ok := v.(uint)
		if !ok {
			c.Next()
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), id)
		if err != nil {
			// Stale session (user gone or secret rotated mid-flight).
			c.Next()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAuth sends anonymous visitors to the login form, remembering
// where they were headed.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(contextUserKey); !exists {
			c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user resolved by LoadUser for this request.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

// SetSessionUser binds the session cookie to the given user id. With
// remember set the cookie survives the browser session for a month.
func SetSessionUser(c *gin.Context, id uint, remember bool) error {
	session := sessions.Default(c)

	maxAge := 0
	if remember {
		maxAge = rememberMaxAge
	}
	session.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	session.Set(sessionUserKey, id)
	return session.Save()
}

// ClearSession drops the session cookie.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
