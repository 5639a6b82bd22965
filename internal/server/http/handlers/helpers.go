package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/bookcatalog/internal/domain/errors"
	"github.com/polkiloo/bookcatalog/internal/domain/model"
	pkgAuth "github.com/polkiloo/bookcatalog/internal/pkg/auth"
	"github.com/polkiloo/bookcatalog/internal/server/http/dto"
	"github.com/polkiloo/bookcatalog/internal/server/http/middleware"
)

const (
	msgInternalError      = "Internal server error"
	msgInvalidBody        = "Invalid request body"
	msgBookNotFound       = "Book not found"
	msgInvalidCredentials = "Invalid username or password"
	msgTokenInvalid       = "Token is invalid"
)

// CurrentUser extracts authenticated user from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func message(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.MessageResponse{Message: msg})
}

// respondError maps domain errors to HTTP replies; conflict is the message
// used for ErrAlreadyExists.
func respondError(c *gin.Context, err error, conflict string) {
	var vErr *domainErrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: vErr.Message, Field: vErr.Field})
	case errors.Is(err, domainErrors.ErrInvalidInput):
		message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		message(c, http.StatusConflict, conflict)
	case errors.Is(err, domainErrors.ErrNotFound):
		message(c, http.StatusNotFound, msgBookNotFound)
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		message(c, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, pkgAuth.ErrInvalidToken):
		message(c, http.StatusUnauthorized, msgTokenInvalid)
	default:
		_ = c.Error(err)
		message(c, http.StatusInternalServerError, msgInternalError)
	}
}
