package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// HSN master sources.
const (
	HSNSourceNone     = "none"
	HSNSourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	Company CompanyConfig
	HSN     HSNConfig
	CORS    CORSConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CompanyConfig identifies the issuing company. Code prefixes generated
// invoice numbers; StateCode is the default supplier state.
type CompanyConfig struct {
	Code      string `mapstructure:"code"`
	StateCode string `mapstructure:"state_code"`
	GSTIN     string `mapstructure:"gstin"`
}

// HSNConfig selects where the HSN master comes from and how long it is cached.
type HSNConfig struct {
	Source   string        `mapstructure:"source"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Load reads configuration from environment variables with the TAXENGINE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TAXENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "taxengine")
	v.SetDefault("db.password", "taxengine_secret")
	v.SetDefault("db.name", "taxengine_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Company defaults
	v.SetDefault("company.code", "INV")
	v.SetDefault("company.state_code", "")
	v.SetDefault("company.gstin", "")

	// HSN master defaults
	v.SetDefault("hsn.source", HSNSourceNone)
	v.SetDefault("hsn.cache_ttl", "1h")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "TAXENGINE_SERVER_PORT",
		"server.read_timeout":  "TAXENGINE_SERVER_READ_TIMEOUT",
		"server.write_timeout": "TAXENGINE_SERVER_WRITE_TIMEOUT",
		"server.environment":   "TAXENGINE_SERVER_ENVIRONMENT",
		"db.host":              "TAXENGINE_DB_HOST",
		"db.port":              "TAXENGINE_DB_PORT",
		"db.user":              "TAXENGINE_DB_USER",
		"db.password":          "TAXENGINE_DB_PASSWORD",
		"db.name":              "TAXENGINE_DB_NAME",
		"db.sslmode":           "TAXENGINE_DB_SSLMODE",
		"db.max_open":          "TAXENGINE_DB_MAX_OPEN",
		"db.max_idle":          "TAXENGINE_DB_MAX_IDLE",
		"log.level":            "TAXENGINE_LOG_LEVEL",
		"log.format":           "TAXENGINE_LOG_FORMAT",
		"company.code":         "TAXENGINE_COMPANY_CODE",
		"company.state_code":   "TAXENGINE_COMPANY_STATE_CODE",
		"company.gstin":        "TAXENGINE_COMPANY_GSTIN",
		"hsn.source":           "TAXENGINE_HSN_SOURCE",
		"hsn.cache_ttl":        "TAXENGINE_HSN_CACHE_TTL",
		"cors.allowed_origins": "TAXENGINE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TAXENGINE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TAXENGINE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Company = CompanyConfig{
		Code:      v.GetString("company.code"),
		StateCode: v.GetString("company.state_code"),
		GSTIN:     strings.ToUpper(strings.TrimSpace(v.GetString("company.gstin"))),
	}
	// The supplier state defaults to the GSTIN prefix.
	if cfg.Company.StateCode == "" && len(cfg.Company.GSTIN) >= 2 {
		cfg.Company.StateCode = cfg.Company.GSTIN[:2]
	}

	cfg.HSN = HSNConfig{
		Source:   strings.ToLower(v.GetString("hsn.source")),
		CacheTTL: v.GetDuration("hsn.cache_ttl"),
	}
	switch cfg.HSN.Source {
	case HSNSourceNone, HSNSourcePostgres:
	default:
		return nil, fmt.Errorf("config: unknown hsn.source %q (want %q or %q)", cfg.HSN.Source, HSNSourceNone, HSNSourcePostgres)
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
