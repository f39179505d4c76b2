package main

import (
	"database/sql"
	"os"

	"landing_cms_backend/internal/config"
	"landing_cms_backend/internal/database"
	"landing_cms_backend/internal/pages"
	"landing_cms_backend/internal/repositories"
	"landing_cms_backend/internal/router"
	"landing_cms_backend/internal/services"
	"landing_cms_backend/pkg/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("info", "console")
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

	kvRepo, db, err := openKVRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.KVBackend).Msg("Failed to open key-value store")
	}
	if db != nil {
		defer db.Close()
	}

	siteConfigService, err := services.NewSiteConfigService(kvRepo, cfg.ConfigKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create site config service")
	}
	renderer, err := pages.NewRenderer(cfg.EscapeHTML)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load pages")
	}

	engine := router.NewEngine(cfg.CORSAllowedOrigins)
	router.Setup(engine, router.Dependencies{
		SiteConfigService: siteConfigService,
		AuthService:       services.NewAuthService(cfg.AdminPassword),
		Renderer:          renderer,
	})

	utils.LogInfo("Server starting", map[string]interface{}{
		"port":        cfg.Port,
		"kv_backend":  cfg.KVBackend,
		"escape_html": cfg.EscapeHTML,
		"cors":        len(cfg.CORSAllowedOrigins) > 0,
	})
	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		os.Exit(1)
	}
}

// openKVRepository picks the storage backend. The returned *sql.DB is nil for the memory backend.
func openKVRepository(cfg *config.Config) (repositories.KVRepository, *sql.DB, error) {
	switch cfg.KVBackend {
	case config.BackendPostgres:
		db, err := database.OpenPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLKVRepository(db, database.DriverPostgres, cfg.KVNamespace), db, nil
	case config.BackendSqlite:
		db, err := database.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLKVRepository(db, database.DriverSqlite, cfg.KVNamespace), db, nil
	default:
		utils.LogInfo("Using in-memory key-value store; content is lost on restart")
		return repositories.NewMemoryKVRepository(cfg.KVNamespace), nil, nil
	}
}
