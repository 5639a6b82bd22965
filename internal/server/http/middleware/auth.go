package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bookcatalog/internal/domain/model"
	pkgAuth "github.com/polkiloo/bookcatalog/internal/pkg/auth"
	"github.com/polkiloo/bookcatalog/internal/server/http/dto"
)

const (
	// IdentityContextKey is a gin context key for the authenticated *model.User.
	IdentityContextKey = "identity"

	msgTokenMissing  = "Token is missing"
	msgTokenInvalid  = "Token is invalid"
	msgInternalError = "Internal server error"
)

// IdentityResolver verifies bearer tokens.
type IdentityResolver interface {
	Verify(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: msgTokenMissing})
			return
		}

		user, err := resolver.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: msgTokenInvalid})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgInternalError})
			return
		}

		c.Set(IdentityContextKey, user)
		c.Next()
	}
}

// extractToken reads the raw token from the Authorization header. No scheme prefix is stripped.
func extractToken(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("Authorization"))
}
