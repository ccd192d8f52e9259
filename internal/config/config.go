package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the storefront client reads from the environment.
// The API base URL points at the collaborating REST server; everything else
// has a workable default.
type Config struct {
	APIBaseURL  string        `envconfig:"API_BASE_URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	PageSize    int           `envconfig:"PAGE_SIZE"    default:"15"`
	AppEnv      string        `envconfig:"APP_ENV"      default:"development"`
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: error loading .env file: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("environment variables not loaded properly: %v", err)
	}

	return &cfg
}
