package server

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lyceum.by/newsportal/internal/config"
	"lyceum.by/newsportal/internal/handler"
	"lyceum.by/newsportal/internal/middleware"
	"lyceum.by/newsportal/internal/repository"
	"lyceum.by/newsportal/internal/service"
	"lyceum.by/newsportal/pkg/storage"
	"lyceum.by/newsportal/pkg/validator"
)

type Server struct {
	engine *gin.Engine
}

func NewServer(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if err := validator.RegisterPhoneRule(); err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	imageStorage, err := storage.NewLocalStorage(cfg.UploadDir, cfg.UploadPrefix)
	if err != nil {
		return nil, err
	}

	authSvc := service.NewAuthService(userRepo)
	newsSvc := service.NewNewsService(newsRepo, likeRepo, imageStorage, cfg.PageSize)
	sectionSvc := service.NewSectionService(sectionRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	newsHandler := handler.NewNewsHandler(newsSvc, sectionSvc)
	panelHandler := handler.NewPanelHandler(newsSvc, sectionSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	store := cookie.NewStore(cfg.SessionSecret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("session", store))

	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	})
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "web/static")

	authMiddleware := middleware.NewAuthMiddleware(userRepo)
	router.Use(authMiddleware.LoadUser())

	// Public routes
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/", newsHandler.Index)
	router.POST("/", newsHandler.Index)
	router.GET("/new", newsHandler.Show)
	router.GET("/timetable", newsHandler.Timetable)

	// Protected routes
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/logout", authHandler.Logout)
		protected.GET("/panel", panelHandler.Show)
		protected.POST("/panel", panelHandler.Create)
		protected.POST("/new", newsHandler.ToggleLike)
	}

	return &Server{engine: router}, nil
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}
