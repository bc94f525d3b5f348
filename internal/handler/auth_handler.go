package handler

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"lyceum.by/newsportal/internal/middleware"
	"lyceum.by/newsportal/internal/service"
	"lyceum.by/newsportal/pkg/validator"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flashes": takeFlashes(c),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		addFlash(c, validator.FormatValidationError(err))
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	if _, err := h.service.Register(c.Request.Context(), input); err != nil {
		addFlash(c, flashMessage(err))
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flashes": takeFlashes(c),
		"Next":    c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	login := strings.TrimSpace(c.PostForm("login"))
	password := c.PostForm("password")
	// Checkbox is simply absent when unchecked.
	remember := c.PostForm("remember") != ""

	user, err := h.service.Login(c.Request.Context(), login, password)
	if err != nil {
		addFlash(c, flashMessage(err))
		target := "/login"
		if next := c.Query("next"); next != "" {
			target += "?next=" + url.QueryEscape(next)
		}
		c.Redirect(http.StatusSeeOther, target)
		return
	}

	if err := middleware.SetSessionUser(c, user.ID, remember); err != nil {
		log.Printf("failed to save session for uid=%d: %v", user.ID, err)
		addFlash(c, genericFailure)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		log.Printf("failed to clear session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// safeNext keeps the deferred redirect target on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
