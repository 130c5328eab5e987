package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// PathEnvVar overrides the config file location.
const PathEnvVar = "CONFIG_PATH"

// DefaultPaths are searched in order when CONFIG_PATH is unset.
var DefaultPaths = []string{"config.yaml", "config.yml"}

// Config holds application configuration.
type Config struct {
	Env             string        `koanf:"env"`
	Port            string        `koanf:"port"`
	CORSAllowOrigin []string      `koanf:"cors_allow_origins"`
	DatabaseURL     string        `koanf:"database_url"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	QueueURL        string        `koanf:"queue_url"`
	AWSRegion       string        `koanf:"aws_region"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Assets          AssetsConfig  `koanf:"assets"`
	Weather         WeatherConfig `koanf:"weather"`
	RateLimit       RateConfig    `koanf:"rate_limit"`
	Log             LogConfig     `koanf:"log"`
}

// AssetsConfig selects where clothing images are served from.
// An empty Dir and S3Bucket means the embedded defaults.
type AssetsConfig struct {
	Dir      string `koanf:"dir"`
	S3Bucket string `koanf:"s3_bucket"`
	S3Prefix string `koanf:"s3_prefix"`
}

// WeatherConfig configures the forecast upstreams.
type WeatherConfig struct {
	ZipBaseURL       string        `koanf:"zip_base_url"`
	PointsBaseURL    string        `koanf:"points_base_url"`
	UserAgent        string        `koanf:"user_agent"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
	OpenTimeout      time.Duration `koanf:"open_timeout"`
}

// RateConfig is a per-client token bucket.
type RateConfig struct {
	RPS   float64 `koanf:"rps"`
	Burst int     `koanf:"burst"`
}

// LogConfig configures telemetry output.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Env:             "dev",
		Port:            "8080",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		AWSRegion:       "us-east-1",
		ShutdownTimeout: 10 * time.Second,
		Weather: WeatherConfig{
			ZipBaseURL:       "https://api.zippopotam.us",
			PointsBaseURL:    "https://api.weather.gov",
			UserAgent:        "runwear (ops@runwear.local)",
			Timeout:          5 * time.Second,
			FailureThreshold: 5,
			OpenTimeout:      30 * time.Second,
		},
		RateLimit: RateConfig{RPS: 5, Burst: 20},
		Log:       LogConfig{Level: "info", Format: "json"},
	}
}

var envKeys = map[string]string{
	"env":                       "env",
	"port":                      "port",
	"cors_allow_origins":        "cors_allow_origins",
	"database_url":              "database_url",
	"auto_migrate":              "auto_migrate",
	"queue_url":                 "queue_url",
	"aws_region":                "aws_region",
	"shutdown_timeout":          "shutdown_timeout",
	"assets_dir":                "assets.dir",
	"assets_s3_bucket":          "assets.s3_bucket",
	"assets_s3_prefix":          "assets.s3_prefix",
	"weather_zip_base_url":      "weather.zip_base_url",
	"weather_points_base_url":   "weather.points_base_url",
	"weather_user_agent":        "weather.user_agent",
	"weather_timeout":           "weather.timeout",
	"weather_failure_threshold": "weather.failure_threshold",
	"weather_open_timeout":      "weather.open_timeout",
	"rate_limit_rps":            "rate_limit.rps",
	"rate_limit_burst":          "rate_limit.burst",
	"log_level":                 "log.level",
	"log_format":                "log.format",
}

// Load layers defaults, an optional YAML file, and environment variables.
// Environment variables use flat names (PORT, DATABASE_URL, WEATHER_TIMEOUT, ...)
// and may carry a RUNWEAR_ prefix.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if raw, ok := k.Get("cors_allow_origins").(string); ok {
		if err := k.Set("cors_allow_origins", splitAndTrim(raw)); err != nil {
			return Config{}, fmt.Errorf("split cors origins: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if c.Env == "production" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.Assets.Dir != "" && c.Assets.S3Bucket != "" {
		return fmt.Errorf("ASSETS_DIR and ASSETS_S3_BUCKET are mutually exclusive")
	}
	return nil
}

// IsDevLike reports whether env tolerates missing infrastructure.
func IsDevLike(env string) bool {
	switch normalizeEnv(env) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func envKey(raw string) string {
	key := strings.ToLower(raw)
	key = strings.TrimPrefix(key, "runwear_")
	return envKeys[key]
}

func findConfigFile() string {
	if p := strings.TrimSpace(os.Getenv(PathEnvVar)); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
