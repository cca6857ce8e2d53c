package config

import (
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Uploads  UploadsConfig
	Local    LocalStoreConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Mode        string `env:"GIN_MODE" envDefault:"debug"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Name     string `env:"DB_NAME" envDefault:"contentdesk"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type UploadsConfig struct {
	Dir     string `env:"UPLOADS_DIR" envDefault:"./data/uploads"`
	BaseURL string `env:"UPLOADS_BASE_URL" envDefault:"/static/uploads"`
	// MaxBytes bounds a single uploaded file (default 25 MiB).
	MaxBytes int64 `env:"UPLOADS_MAX_BYTES" envDefault:"26214400"`
}

type LocalStoreConfig struct {
	Path string `env:"LOCALSTORE_PATH" envDefault:"./data/localstore.db"`
	// RecentSearchLimit caps how many recent searches are retained per scope.
	RecentSearchLimit int `env:"LOCALSTORE_RECENT_LIMIT" envDefault:"10"`
}

type CORSConfig struct {
	Origins string `env:"CORS_ORIGINS" envDefault:"*"`
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Load reads configuration from the environment, optionally seeded from a
// .env file when one exists in the working directory.
func Load() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("failed to load .env: %v", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse environment: %v", err)
	}
	return cfg
}
