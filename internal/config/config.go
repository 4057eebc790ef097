package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Store  StoreConfig
	Log    LogConfig
	CORS   CORSConfig
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

// StoreConfig bounds calls to the external dictionary / rate store.
// Every store call times out and falls back to built-in defaults so the
// pipeline stays available when the store is unreachable.
type StoreConfig struct {
	TimeoutSecs      int `mapstructure:"timeout_secs"`
	DictionaryTTLSec int `mapstructure:"dictionary_ttl_secs"`
}

// Timeout returns the store call timeout as a duration.
func (s *StoreConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSecs) * time.Second
}

// DictionaryTTL returns how long the in-memory creditor snapshot stays fresh.
func (s *StoreConfig) DictionaryTTL() time.Duration {
	return time.Duration(s.DictionaryTTLSec) * time.Second
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the CREDISCOPE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CREDISCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "crediscope")
	v.SetDefault("db.password", "crediscope_secret")
	v.SetDefault("db.name", "crediscope_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Store defaults
	v.SetDefault("store.timeout_secs", 3)
	v.SetDefault("store.dictionary_ttl_secs", 300)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "CREDISCOPE_SERVER_PORT",
		"server.read_timeout":       "CREDISCOPE_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "CREDISCOPE_SERVER_WRITE_TIMEOUT",
		"server.environment":        "CREDISCOPE_SERVER_ENVIRONMENT",
		"db.host":                   "CREDISCOPE_DB_HOST",
		"db.port":                   "CREDISCOPE_DB_PORT",
		"db.user":                   "CREDISCOPE_DB_USER",
		"db.password":               "CREDISCOPE_DB_PASSWORD",
		"db.name":                   "CREDISCOPE_DB_NAME",
		"db.sslmode":                "CREDISCOPE_DB_SSLMODE",
		"db.max_open":               "CREDISCOPE_DB_MAX_OPEN",
		"db.max_idle":               "CREDISCOPE_DB_MAX_IDLE",
		"store.timeout_secs":        "CREDISCOPE_STORE_TIMEOUT_SECS",
		"store.dictionary_ttl_secs": "CREDISCOPE_STORE_DICTIONARY_TTL_SECS",
		"log.level":                 "CREDISCOPE_LOG_LEVEL",
		"log.format":                "CREDISCOPE_LOG_FORMAT",
		"cors.allowed_origins":      "CREDISCOPE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CREDISCOPE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CREDISCOPE_SERVER_PORT") == "" {
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
	cfg.Store = StoreConfig{
		TimeoutSecs:      v.GetInt("store.timeout_secs"),
		DictionaryTTLSec: v.GetInt("store.dictionary_ttl_secs"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
