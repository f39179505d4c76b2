package handlers

import (
	"net/http"

	"landing_cms_backend/internal/services"

	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

// SiteConfigHandler exposes the site config document over the API.
type SiteConfigHandler struct {
	siteConfigService services.SiteConfigService
}

// NewSiteConfigHandler creates a new SiteConfigHandler.
func NewSiteConfigHandler(scs services.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{siteConfigService: scs}
}

// GetSiteConfig returns the current document, unauthenticated.
func (h *SiteConfigHandler) GetSiteConfig(c *gin.Context) {
	doc, err := h.siteConfigService.Load(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "GetSiteConfig: Error from siteConfigService.Load")
		return
	}
	c.Data(http.StatusOK, jsonContentType, doc)
}

// UpdateSiteConfig replaces the document with the request body.
// AdminPasswordMiddleware has already checked the Authorization header.
func (h *SiteConfigHandler) UpdateSiteConfig(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondInternalError(c, err, "UpdateSiteConfig: Failed to read body")
		return
	}
	if err := h.siteConfigService.Save(c.Request.Context(), body); err != nil {
		respondInternalError(c, err, "UpdateSiteConfig: Error from siteConfigService.Save")
		return
	}
	c.String(http.StatusOK, "OK")
}
