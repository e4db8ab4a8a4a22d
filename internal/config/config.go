package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the immutable service configuration. It is built once at process
// start and passed explicitly into each component's constructor; nothing
// reads ambient state after Load returns.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Banner   BannerConfig   `yaml:"banner"`
}

// AppConfig holds HTTP server settings
type AppConfig struct {
	Name             string `yaml:"name"`
	Env              string `yaml:"env"`
	Port             int    `yaml:"port"`
	CORSAllowOrigins string `yaml:"cors_allow_origins"`
}

// DatabaseConfig holds MySQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_minutes"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig holds token verification settings
type JWTConfig struct {
	Secret      string `yaml:"secret"`
	ExpiryHours int    `yaml:"expiry_hours"`
}

// BannerConfig holds banner policy knobs
type BannerConfig struct {
	DefaultTimezone  string `yaml:"default_timezone"`
	RequireAltText   bool   `yaml:"require_alt_text"`
	MaxAltTextLength int    `yaml:"max_alt_text_length"`
	RecommendLimit   int    `yaml:"recommend_limit"`
}

// DSN builds the MySQL connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

// ConnMaxLifetimeDuration returns the connection lifetime as a duration
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Minute
}

// JWTExpiry returns the token expiry as a duration
func (j JWTConfig) JWTExpiry() time.Duration {
	return time.Duration(j.ExpiryHours) * time.Hour
}

// Load reads the YAML config file and applies environment overrides.
// A missing file is not fatal; defaults plus env vars then configure
// everything, which keeps containerized deployments file-free.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:             "naebak-banner-backend",
			Env:              "local",
			Port:             8080,
			CORSAllowOrigins: "http://localhost:3000",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            3306,
			User:            "naebak",
			Name:            "naebak_banners",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		JWT: JWTConfig{
			ExpiryHours: 24,
		},
		Banner: BannerConfig{
			DefaultTimezone:  "Africa/Cairo",
			RequireAltText:   true,
			MaxAltTextLength: 125,
			RecommendLimit:   5,
		},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setInt(&cfg.App.Port, "APP_PORT")
	setString(&cfg.App.CORSAllowOrigins, "CORS_ALLOW_ORIGINS")

	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.Banner.DefaultTimezone, "BANNER_DEFAULT_TIMEZONE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
