package handlers

import (
	"net/http"

	"landing_cms_backend/internal/services"
	"landing_cms_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// AuthHandler holds the authentication service.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as services.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// Login checks the password field of a JSON body like {"password": "..."}.
// A missing or non-string password is a plain mismatch; a body that is not JSON fails the request.
func (h *AuthHandler) Login(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondInternalError(c, err, "Login: Failed to read body")
		return
	}
	if !gjson.ValidBytes(body) {
		respondInternalError(c, services.ErrMalformedRequestBody, "Login: Failed to parse body")
		return
	}

	password := gjson.GetBytes(body, "password")
	if password.Type != gjson.String || !h.authService.Verify(password.Str) {
		utils.RespondPlain(c, http.StatusUnauthorized, "Error")
		return
	}
	c.String(http.StatusOK, "OK")
}
