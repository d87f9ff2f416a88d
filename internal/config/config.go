package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"QuoteForge"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:""`
		Name            string        `envconfig:"DB_NAME" default:"quoteforge"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Portal struct {
		// BaseURL is where client-facing links point, e.g. the SPA host.
		BaseURL       string `envconfig:"PORTAL_BASE_URL" default:"http://localhost:5173/portal"`
		SessionSecret string `envconfig:"PORTAL_SESSION_SECRET" required:"true"`
	}

	Worker struct {
		Size       int `envconfig:"WORKER_POOL_SIZE" default:"4"`
		QueueDepth int `envconfig:"WORKER_QUEUE_DEPTH" default:"64"`
	}

	Deepgram struct {
		APIKey string `envconfig:"DEEPGRAM_API_KEY"`
	}

	OpenAI struct {
		APIKey string `envconfig:"OPENAI_API_KEY"`
	}

	AWS struct {
		Region      string `envconfig:"AWS_REGION" default:"us-east-1"`
		AudioBucket string `envconfig:"AUDIO_BUCKET" default:"quoteforge-audio"`
	}

	Mail struct {
		FromEmail string `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@quoteforge.app"`
	}

	PDF struct {
		GotenbergURL string `envconfig:"GOTENBERG_URL" default:"http://localhost:3000"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
