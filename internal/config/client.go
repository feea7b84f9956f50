package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// ClientConfig contains parameters of the command-line client.
type ClientConfig struct {
	ServerAddr  string `env:"SERVER_ADDR" envDefault:"localhost:50051"`
	UseTLS      bool   `env:"USE_TLS" envDefault:"false"`
	CAFile      string `env:"CA_FILE"`
	SessionFile string `env:"SESSION_FILE"`
	LogLevel    int    `env:"LOG_LEVEL" envDefault:"4"`
}

// NewClientConfig loads client configuration from GREENGARDEN_* environment variables.
func NewClientConfig() (*ClientConfig, error) {
	cfg := ClientConfig{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "GREENGARDEN_"}); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "greengarden", "session.json")
	}

	return &cfg, nil
}
