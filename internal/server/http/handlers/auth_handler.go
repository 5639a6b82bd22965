package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/bookcatalog/internal/server/http/dto"
)

const (
	msgRegistered         = "User registered successfully"
	msgUsernameTaken      = "Username already exists"
	msgCredentialsMissing = "Username and password are required"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, msgCredentialsMissing)
		return
	}

	if err := h.facade.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		respondError(c, err, msgUsernameTaken)
		return
	}

	message(c, http.StatusCreated, msgRegistered)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, msgCredentialsMissing)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, msgUsernameTaken)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
