package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL  string        `env:"DATABASE_URL,required,notEmpty"`
	DBTimeout    time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	JWTSecretKey string        `env:"JWT_SECRET_KEY,required,notEmpty"`
	JWTTTL       time.Duration `env:"JWT_TTL" envDefault:"12h"`
	ServerPort   int           `env:"SERVER_PORT" envDefault:"8080"`

	// SeasonScoring selects how a tournament result turns into season points: results | placement.
	SeasonScoring string `env:"SEASON_SCORING" envDefault:"results"`
	SeasonBestOf  int    `env:"SEASON_BEST_OF" envDefault:"5"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Cloudflare R2, used to publish standings snapshots. Publishing is off when unset.
	R2AccountID       string `env:"R2_ACCOUNT_ID"`
	R2AccessKeyID     string `env:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `env:"R2_SECRET_ACCESS_KEY"`
	R2BucketName      string `env:"R2_BUCKET_NAME"`
	R2PublicBaseURL   string `env:"R2_PUBLIC_BASE_URL"`
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Загружаем .env файл, если он есть. Ошибку не считаем фатальной.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.ServerPort)
	}
	if c.SeasonBestOf <= 0 {
		return fmt.Errorf("SEASON_BEST_OF must be positive, got %d", c.SeasonBestOf)
	}
	return nil
}

// R2Enabled reports whether every credential needed for the snapshot bucket is present.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" && c.R2BucketName != ""
}
