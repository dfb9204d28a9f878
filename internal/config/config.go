package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "GATEWAY_"

type Config struct {
	Primary    Primary          `koanf:"primary"`
	Server     ServerConfig     `koanf:"server"`
	Admin      AdminConfig      `koanf:"admin"`
	Cloudflare CloudflareConfig `koanf:"cloudflare"`
	Access     AccessConfig     `koanf:"access"`
	Logger     LoggerConfig     `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
	MaxUploadBytes int64         `koanf:"max_upload_bytes" validate:"required,min=1"`
}

type AdminConfig struct {
	Port string `koanf:"port" validate:"required"`
}

// CloudflareConfig holds the account credentials. They are read once at
// startup and handed to the vendor client; nothing else reads them.
type CloudflareConfig struct {
	BaseURL          string        `koanf:"base_url" validate:"required,url"`
	AccountID        string        `koanf:"account_id" validate:"required"`
	APIToken         string        `koanf:"api_token" validate:"required"`
	PagesDomain      string        `koanf:"pages_domain" validate:"required"`
	ProductionBranch string        `koanf:"production_branch" validate:"required"`
	Timeout          time.Duration `koanf:"timeout" validate:"required"`
}

type AccessConfig struct {
	SessionDuration string `koanf:"session_duration" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                  "development",
		"server.port":                  "8080",
		"server.read_timeout":          "60s",
		"server.write_timeout":         "120s",
		"server.idle_timeout":          "120s",
		"server.request_timeout":       "110s",
		"server.max_upload_bytes":      100 << 20,
		"admin.port":                   "9090",
		"cloudflare.base_url":          "https://api.cloudflare.com/client/v4",
		"cloudflare.pages_domain":      "pages.dev",
		"cloudflare.production_branch": "main",
		"cloudflare.timeout":           "60s",
		"access.session_duration":      "24h",
		"logger.level":                 "info",
		"logger.format":                "json",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
