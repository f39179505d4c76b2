package handlers

import (
	"bytes"
	"net/http"

	"landing_cms_backend/internal/pages"
	"landing_cms_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the two HTML pages.
type PageHandler struct {
	siteConfigService services.SiteConfigService
	renderer          *pages.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(scs services.SiteConfigService, renderer *pages.Renderer) *PageHandler {
	return &PageHandler{siteConfigService: scs, renderer: renderer}
}

// Home renders the public landing page from the current site config.
func (h *PageHandler) Home(c *gin.Context) {
	doc, err := h.siteConfigService.Load(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Home: Error from siteConfigService.Load")
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPublic(&buf, doc); err != nil {
		respondInternalError(c, err, "Home: Error rendering public page")
		return
	}
	c.Data(http.StatusOK, pages.ContentType, buf.Bytes())
}

// Admin serves the admin shell. Authorization happens through the API calls it makes.
func (h *PageHandler) Admin(c *gin.Context) {
	c.Data(http.StatusOK, pages.ContentType, h.renderer.Admin())
}
