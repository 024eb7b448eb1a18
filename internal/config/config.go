package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration, read from the environment. The
// database DSN has no default: without it the process refuses to start.
type Config struct {
	Port        string   `envconfig:"PORT" default:"8080"`
	DatabaseURL string   `envconfig:"DATABASE_URL" required:"true"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	AppEnv      string   `envconfig:"APP_ENV" default:"development"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

// LoadDotEnv loads the nearest .env file, searching the working directory and
// its parents. Variables already present in the environment win. Returns the
// loaded path, or "" when no .env exists.
func LoadDotEnv() (string, error) {
	path, err := findDotEnv()
	if err != nil || path == "" {
		return "", err
	}
	if err := godotenv.Load(path); err != nil {
		return "", err
	}
	return path, nil
}

func findDotEnv() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for i := 0; i < 6; i++ {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}
