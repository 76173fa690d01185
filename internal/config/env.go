package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names read by Settings
const (
	EnvPort  = "PORT"
	EnvRates = "ESTIMATE_RATES"
	EnvDebug = "ESTIMATE_DEBUG"
)

// DefaultPort is used by the HTTP server when PORT is unset
const DefaultPort = 8080

// Settings are process-level defaults that command-line flags override
type Settings struct {
	Port      int
	RatesPath string
	Debug     bool
}

// LoadSettings reads the given .env files (missing files are ignored) and
// then the process environment. Variables already set in the environment
// win over .env values.
func LoadSettings(envFiles ...string) (Settings, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	s := Settings{Port: DefaultPort, RatesPath: os.Getenv(EnvRates)}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Settings{}, fmt.Errorf("invalid %s %q", EnvPort, v)
		}
		s.Port = port
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s %q: %w", EnvDebug, v, err)
		}
		s.Debug = debug
	}
	return s, nil
}
