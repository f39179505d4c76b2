package router

import (
	"net/http"

	"landing_cms_backend/internal/handlers"
	"landing_cms_backend/internal/middleware"
	"landing_cms_backend/internal/pages"
	"landing_cms_backend/internal/services"
	"landing_cms_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Dependencies are the services the routes dispatch to.
type Dependencies struct {
	SiteConfigService services.SiteConfigService
	AuthService       services.AuthService
	Renderer          *pages.Renderer
}

// NewEngine creates a gin engine that matches paths exactly: no trailing-slash or
// case-fixing redirects, and a wrong method is a plain 404.
// CORS is enabled only when allowedOrigins is non-empty.
func NewEngine(allowedOrigins []string) *gin.Engine {
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false
	engine.HandleMethodNotAllowed = false

	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Internal error.", ""))
	}))

	if len(allowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = allowedOrigins
		config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		engine.Use(cors.New(config))
	}
	return engine
}

// Setup registers the five routes and the 404 fallback.
func Setup(engine *gin.Engine, deps Dependencies) {
	pageHandler := handlers.NewPageHandler(deps.SiteConfigService, deps.Renderer)
	siteConfigHandler := handlers.NewSiteConfigHandler(deps.SiteConfigService)
	authHandler := handlers.NewAuthHandler(deps.AuthService)

	SetupPageRoutes(engine, pageHandler)
	SetupAPIRoutes(engine.Group("/api"), siteConfigHandler, authHandler, deps.AuthService)

	engine.NoRoute(handlers.NotFound)
}
