package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"landing_cms_backend/pkg/utils"
)

// Storage backends understood by KV_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSqlite   = "sqlite"
)

var ErrMissingAdminPassword = errors.New("ADMIN_PASSWORD must be set")

// Config is built once at startup and handed to the components that need it.
// Nothing mutates it afterwards.
type Config struct {
	Port          string `yaml:"port"`
	AdminPassword string `yaml:"admin_password"`

	KVBackend   string `yaml:"kv_backend"`
	KVNamespace string `yaml:"kv_namespace"`
	ConfigKey   string `yaml:"config_key"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_sslmode"`
	SqlitePath string `yaml:"sqlite_path"`

	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	EscapeHTML         bool     `yaml:"render_escape_html"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func defaults() *Config {
	return &Config{
		Port:        "8080",
		KVBackend:   BackendMemory,
		KVNamespace: "IMAGE_CONFIG_KV",
		ConfigKey:   "config",
		DBHost:      "localhost",
		DBPort:      "5432",
		DBUser:      "cms_user",
		DBPassword:  "cms_password",
		DBName:      "landing_cms_db",
		DBSSLMode:   "disable",
		SqlitePath:  "cms.db",
		LogLevel:    "info",
		LogFormat:   "console",
	}
}

// Load reads an optional .env file, then the YAML file named by CONFIG_FILE (if any),
// then environment variables, which win over everything else.
func Load() (*Config, error) {
	// .env is optional in production
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.mergeEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.Port = utils.Getenv("PORT", c.Port)
	c.AdminPassword = utils.Getenv("ADMIN_PASSWORD", c.AdminPassword)
	c.KVBackend = strings.ToLower(utils.Getenv("KV_BACKEND", c.KVBackend))
	c.KVNamespace = utils.Getenv("KV_NAMESPACE", c.KVNamespace)
	c.ConfigKey = utils.Getenv("CONFIG_KEY", c.ConfigKey)
	c.DBHost = utils.Getenv("DB_HOST", c.DBHost)
	c.DBPort = utils.Getenv("DB_PORT", c.DBPort)
	c.DBUser = utils.Getenv("DB_USER", c.DBUser)
	c.DBPassword = utils.Getenv("DB_PASSWORD", c.DBPassword)
	c.DBName = utils.Getenv("DB_NAME", c.DBName)
	c.DBSSLMode = utils.Getenv("DB_SSLMODE", c.DBSSLMode)
	c.SqlitePath = utils.Getenv("SQLITE_PATH", c.SqlitePath)
	c.CORSAllowedOrigins = utils.GetenvList("CORS_ALLOWED_ORIGINS", c.CORSAllowedOrigins)
	c.EscapeHTML = utils.GetenvBool("RENDER_ESCAPE_HTML", c.EscapeHTML)
	c.LogLevel = utils.Getenv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = utils.Getenv("LOG_FORMAT", c.LogFormat)
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.AdminPassword == "" {
		return ErrMissingAdminPassword
	}
	switch c.KVBackend {
	case BackendMemory, BackendPostgres, BackendSqlite:
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", c.KVBackend)
	}
	if c.KVNamespace == "" || c.ConfigKey == "" {
		return errors.New("KV_NAMESPACE and CONFIG_KEY must not be empty")
	}
	return nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}
