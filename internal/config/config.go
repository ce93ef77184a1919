package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config agrupa toda la configuración del proceso, cargada del entorno.
type Config struct {
	Port      string        `env:"PORT" envDefault:"5000"`
	MongoURI  string        `env:"MONGO_URI" envDefault:"mongodb://127.0.0.1:27017"`
	DBName    string        `env:"DB_NAME" envDefault:"lsa"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"JWT_TTL" envDefault:"720h"` // 30 días
	UploadDir string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	Env       string        `env:"ENV" envDefault:"development"`
}

// Load lee .env si existe y luego el entorno del proceso.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("⚠️ WARNING: Using default JWT secret (development only)")
		cfg.JWTSecret = "dev-secret-change-me"
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be positive")
	}

	return cfg, nil
}
