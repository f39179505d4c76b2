package handlers

import (
	"errors"
	"net/http"

	"landing_cms_backend/internal/services"
	"landing_cms_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondInternalError maps a failed request onto a 500. Malformed stored data and
// malformed request bodies are fatal for the request; they are not repaired.
func respondInternalError(c *gin.Context, err error, logMessage string) {
	utils.LogError(err, logMessage)
	switch {
	case errors.Is(err, services.ErrMalformedStoredConfig):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeMalformedStoredData, "Stored site config could not be parsed.", ""))
	case errors.Is(err, services.ErrMalformedRequestBody):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeMalformedBody, "Request body could not be parsed.", ""))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal error.", ""))
	}
}

// NotFound answers every unmatched path and method.
func NotFound(c *gin.Context) {
	utils.RespondPlain(c, http.StatusNotFound, "Not Found")
}
