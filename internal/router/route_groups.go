package router

import (
	"landing_cms_backend/internal/handlers"
	"landing_cms_backend/internal/middleware"
	"landing_cms_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupPageRoutes sets up the public and admin HTML pages.
func SetupPageRoutes(engine *gin.Engine, pageHandler *handlers.PageHandler) {
	engine.GET("/", pageHandler.Home)
	engine.GET("/admin", pageHandler.Admin)
}

// SetupAPIRoutes sets up the config and login endpoints.
// Update reads its credential from the Authorization header, login from the body.
func SetupAPIRoutes(apiGroup *gin.RouterGroup, siteConfigHandler *handlers.SiteConfigHandler, authHandler *handlers.AuthHandler, authService services.AuthService) {
	apiGroup.GET("/config", siteConfigHandler.GetSiteConfig)
	apiGroup.POST("/config", middleware.AdminPasswordMiddleware(authService), siteConfigHandler.UpdateSiteConfig)
	apiGroup.POST("/login", authHandler.Login)
}
