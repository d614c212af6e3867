package config

import (
	"errors"
	"io/fs"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Update modes accepted by CATALOG_UPDATE_MODE
const (
	UpdateModeReplace = "replace"
	UpdateModeMerge   = "merge"
)

// MaxExpiringDays bounds the expiring-soon window to a century
const MaxExpiringDays = 36500

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	Schema          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	MigrationsDir   string
	SeedSampleData  bool
}

type CatalogConfig struct {
	UpdateMode          string
	DefaultExpiringDays int
	Timezone            string
}

// DSN builds the pgx connection string
func (d DatabaseConfig) DSN() string {
	query := url.Values{}
	query.Set("sslmode", d.SSLMode)
	query.Set("search_path", d.Schema)
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// IsDevelopment reports whether the service runs outside production
func (s ServerConfig) IsDevelopment() bool {
	return s.Env != "production"
}

// Location resolves the configured timezone, falling back to the process local zone.
func (c CatalogConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_DATABASE", "barcode_scanner")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DB_QUERY_TIMEOUT", "5s")
	viper.SetDefault("DB_MIGRATIONS_DIR", "migrations")
	viper.SetDefault("DB_SEED_SAMPLE_DATA", true)
	viper.SetDefault("CATALOG_UPDATE_MODE", UpdateModeReplace)
	viper.SetDefault("CATALOG_DEFAULT_EXPIRING_DAYS", 7)
	viper.SetDefault("CATALOG_TIMEZONE", "")
}

// Load reads an optional .env file, then environment variables on top of defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Could not read .env file: %v", err)
	}

	viper.AutomaticEnv()
	setDefaults()

	cfg := &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			LogLevel:       viper.GetString("LOG_LEVEL"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetString("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Database:        viper.GetString("DB_DATABASE"),
			Schema:          viper.GetString("DB_SCHEMA"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			QueryTimeout:    viper.GetDuration("DB_QUERY_TIMEOUT"),
			MigrationsDir:   viper.GetString("DB_MIGRATIONS_DIR"),
			SeedSampleData:  viper.GetBool("DB_SEED_SAMPLE_DATA"),
		},
		Catalog: CatalogConfig{
			UpdateMode:          strings.ToLower(viper.GetString("CATALOG_UPDATE_MODE")),
			DefaultExpiringDays: viper.GetInt("CATALOG_DEFAULT_EXPIRING_DAYS"),
			Timezone:            viper.GetString("CATALOG_TIMEZONE"),
		},
	}

	if cfg.Catalog.UpdateMode != UpdateModeReplace && cfg.Catalog.UpdateMode != UpdateModeMerge {
		log.Printf("Warning: unknown CATALOG_UPDATE_MODE %q, using %q", cfg.Catalog.UpdateMode, UpdateModeReplace)
		cfg.Catalog.UpdateMode = UpdateModeReplace
	}
	if cfg.Catalog.DefaultExpiringDays < 0 || cfg.Catalog.DefaultExpiringDays > MaxExpiringDays {
		cfg.Catalog.DefaultExpiringDays = 7
	}

	return cfg
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
