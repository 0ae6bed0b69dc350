package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mroshb/quiz_bot/internal/security"
	"github.com/mroshb/quiz_bot/pkg/errors"
)

const sessionCookie = "admin_session"

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// login checks admin credentials and sets a signed session cookie.
func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := s.admins.GetByEmail(req.Email)
	if err != nil || !security.CheckPassword(admin.PasswordHash, req.Password) {
		// Same reply for unknown email and bad password.
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		abortWithError(c, errors.Wrap(err, errors.ErrCodeInternalError, "failed to sign session token"))
		return
	}

	secure := s.cfg.AppEnv == "production"
	c.SetCookie(sessionCookie, signed, int(24*time.Hour.Seconds()), "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"id": admin.ID, "email": admin.Email})
}

// authMiddleware validates the session cookie and stores the admin email in
// the request context.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if email, ok := claims["email"].(string); ok {
				c.Set("admin_email", email)
			}
		}

		c.Next()
	}
}
