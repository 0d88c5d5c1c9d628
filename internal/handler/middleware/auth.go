package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"mentor-availability/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxMentorIDKey = "mentor_id"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the acting mentor from the bearer token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxMentorIDKey, claims.MentorID)
		c.Set("jwt_claims", map[string]any{
			"mentor_id": claims.MentorID.String(),
		})
		c.Next()
	}
}

func GetMentorID(c *gin.Context) (uuid.UUID, bool) {
	mentorID, exists := c.Get(ctxMentorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := mentorID.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// SetMentorID is used by tests that bypass token validation.
func SetMentorID(c *gin.Context, mentorID uuid.UUID) {
	c.Set(ctxMentorIDKey, mentorID)
}
