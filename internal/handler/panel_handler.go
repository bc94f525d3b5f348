package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lyceum.by/newsportal/internal/middleware"
	"lyceum.by/newsportal/internal/service"
	"lyceum.by/newsportal/pkg/validator"
)

type PanelHandler struct {
	news     service.NewsService
	sections service.SectionService
}

func NewPanelHandler(news service.NewsService, sections service.SectionService) *PanelHandler {
	return &PanelHandler{news: news, sections: sections}
}

func (h *PanelHandler) Show(c *gin.Context) {
	sections, err := h.sections.List(c.Request.Context())
	if err != nil {
		log.Printf("[Internal Error]: %v", err)
		c.String(http.StatusInternalServerError, genericFailure)
		return
	}

	user, _ := middleware.CurrentUser(c)
	c.HTML(http.StatusOK, "panel.html", gin.H{
		"Flashes":  takeFlashes(c),
		"User":     user,
		"Sections": sections,
	})
}

// Create publishes a news item from the panel form.
func (h *PanelHandler) Create(c *gin.Context) {
	if c.PostForm("button") != "create" {
		c.Redirect(http.StatusSeeOther, "/panel")
		return
	}

	var input service.CreateNewsInput
	if err := c.ShouldBind(&input); err != nil {
		addFlash(c, validator.FormatValidationError(err))
		c.Redirect(http.StatusSeeOther, "/panel")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		addFlash(c, "Нужно выбрать изображение")
		c.Redirect(http.StatusSeeOther, "/panel")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[Internal Error]: %v", err)
		addFlash(c, genericFailure)
		c.Redirect(http.StatusSeeOther, "/panel")
		return
	}
	defer file.Close()

	image := &service.ImageFile{Reader: file, FileName: fileHeader.Filename}
	if err := h.news.Create(c.Request.Context(), input, image); err != nil {
		// Covers the reused-filename unique violation as well; the visitor
		// only ever sees the opaque failure text.
		log.Printf("[Internal Error]: %v", err)
		addFlash(c, genericFailure)
		c.Redirect(http.StatusSeeOther, "/panel")
		return
	}

	addFlash(c, "Новость опубликована")
	c.Redirect(http.StatusSeeOther, "/panel")
}
