package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lyceum.by/newsportal/internal/middleware"
	"lyceum.by/newsportal/internal/service"
	"lyceum.by/newsportal/pkg/apperror"
)

type NewsHandler struct {
	news     service.NewsService
	sections service.SectionService
}

func NewNewsHandler(news service.NewsService, sections service.SectionService) *NewsHandler {
	return &NewsHandler{news: news, sections: sections}
}

// Index serves the home page: the paginated listing, optionally narrowed
// to one section picked through the filter form. Pager links carry the
// active filter back as ?type= so it survives page navigation.
func (h *NewsHandler) Index(c *gin.Context) {
	typeFilter := c.Query("type")
	if c.Request.Method == http.MethodPost && c.PostForm("pick") != "" {
		typeFilter = c.PostForm("type")
	}

	page := 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil {
		page = p
	}

	newsPage, err := h.news.List(c.Request.Context(), typeFilter, page)
	if err != nil {
		log.Printf("[Internal Error]: %v", err)
		c.String(http.StatusInternalServerError, genericFailure)
		return
	}

	sections, err := h.sections.List(c.Request.Context())
	if err != nil {
		log.Printf("[Internal Error]: %v", err)
		c.String(http.StatusInternalServerError, genericFailure)
		return
	}

	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flashes":  takeFlashes(c),
		"User":     user,
		"News":     newsPage.Items,
		"Page":     newsPage.Page,
		"MaxPage":  newsPage.MaxPage,
		"Sections": sections,
		"Filter":   typeFilter,
	})
}

// Show renders one news item with its like count.
func (h *NewsHandler) Show(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}

	news, likeCount, err := h.news.Get(c.Request.Context(), id)
	if err != nil {
		h.renderNewsError(c, err)
		return
	}

	liked := false
	user, loggedIn := middleware.CurrentUser(c)
	if loggedIn {
		if liked, err = h.news.Liked(c.Request.Context(), user.ID, id); err != nil {
			log.Printf("[Internal Error]: %v", err)
			c.String(http.StatusInternalServerError, genericFailure)
			return
		}
	}

	c.HTML(http.StatusOK, "news.html", gin.H{
		"Flashes":   takeFlashes(c),
		"User":      user,
		"News":      news,
		"LikeCount": likeCount,
		"Liked":     liked,
	})
}

// ToggleLike flips the visitor's like on the item and returns to it.
func (h *NewsHandler) ToggleLike(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}

	user, _ := middleware.CurrentUser(c)
	if _, _, err := h.news.ToggleLike(c.Request.Context(), user.ID, id); err != nil {
		h.renderNewsError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/new?id=%d", id))
}

func (h *NewsHandler) Timetable(c *gin.Context) {
	sections, err := h.sections.List(c.Request.Context())
	if err != nil {
		log.Printf("[Internal Error]: %v", err)
		c.String(http.StatusInternalServerError, genericFailure)
		return
	}

	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "timetable.html", gin.H{
		"User":     user,
		"Sections": sections,
	})
}

func (h *NewsHandler) renderNewsError(c *gin.Context, err error) {
	status := apperror.MapErrorToStatus(err)
	if status == http.StatusNotFound {
		c.String(status, "404")
		return
	}
	log.Printf("[Internal Error]: %v", err)
	c.String(status, genericFailure)
}

// newsID pulls the item id from ?id=. An unparseable id behaves like an
// unknown one.
func newsID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "404")
		return 0, false
	}
	return uint(id), true
}
