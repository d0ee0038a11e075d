package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kuanensn/italy/internal/errors"
	"github.com/kuanensn/italy/internal/middleware"
)

// AuthHandler exchanges the trip passcode for a session token.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// CreateSessionRequest represents the request payload for opening a session.
type CreateSessionRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// CreateSession handles passcode login.
// @Summary     Open a session
// @Description Exchange the trip passcode for a bearer token used on mutating routes
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body CreateSessionRequest true "Trip passcode"
// @Success     200 {object} map[string]interface{} "Session token"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Wrong passcode"
// @Router      /auth/session [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if !middleware.VerifyPasscode(req.Passcode) {
		respondWithError(c, apperrors.ErrInvalidPasscode)
		return
	}

	token, expiry, err := middleware.GenerateSessionToken()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int64(expiry.Seconds()),
	})
}
