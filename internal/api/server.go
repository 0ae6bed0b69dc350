package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mroshb/quiz_bot/internal/config"
	"github.com/mroshb/quiz_bot/internal/middleware"
	"github.com/mroshb/quiz_bot/internal/repositories"
	"github.com/mroshb/quiz_bot/pkg/errors"
)

// Server is the authenticated HTTP API administrators use to manage the
// theme/question catalog the bot plays from.
type Server struct {
	cfg    *config.Config
	quiz   *repositories.QuizRepository
	admins *repositories.AdminRepository
	router *gin.Engine
}

func NewServer(cfg *config.Config, quiz *repositories.QuizRepository, admins *repositories.AdminRepository) *Server {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		quiz:   quiz,
		admins: admins,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery())

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerIP, time.Minute)
	s.router.Use(rateLimitMiddleware(limiter))

	api := s.router.Group("/api")
	{
		api.POST("/admin/login", s.login)

		protected := api.Group("/")
		protected.Use(s.authMiddleware())
		{
			protected.POST("/themes", s.createTheme)
			protected.GET("/themes", s.listThemes)
			protected.POST("/questions", s.createQuestion)
			protected.GET("/questions", s.listQuestions)
		}
	}

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return s
}

// Router exposes the gin engine for the HTTP server and for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func rateLimitMiddleware(limiter *middleware.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// errorStatus maps repository error codes onto HTTP statuses.
func errorStatus(err error) int {
	switch errors.Code(err) {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAlreadyExists:
		return http.StatusConflict
	case errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
