package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment.
// Command-line flags in cmd/discscore override these values.
type Config struct {
	Port          int      `env:"DISCSCORE_PORT" envDefault:"8081"`
	DBPath        string   `env:"DISCSCORE_DB" envDefault:"frisbee.db"`
	AdminUsername string   `env:"DISCSCORE_ADMIN_USER" envDefault:"admin"`
	AdminPassword string   `env:"DISCSCORE_ADMIN_PASSWORD" envDefault:""`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string   `env:"LOG_FORMAT" envDefault:"text"`
	BaseURL       string   `env:"DISCSCORE_BASE_URL" envDefault:""`
	CORSOrigins   []string `env:"DISCSCORE_CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads an optional .env file and then parses the environment.
// A missing .env file is not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
