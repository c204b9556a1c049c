package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config is the gateway's process configuration, loaded from the
// environment with optional .env support for local runs.
type Config struct {
	// ServerAddr is the HTTP listen address of the gateway.
	ServerAddr string `env:"SERVER_ADDR,default=:8080"`

	// CatalogHost and CatalogPort locate the catalog service.
	CatalogHost string `env:"CATALOG_HOST,default=localhost"`
	CatalogPort int    `env:"CATALOG_PORT,default=50051"`

	LogLevel string `env:"LOG_LEVEL,default=info"`
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// CatalogTarget renders the catalog service address as host:port.
func (c Config) CatalogTarget() string {
	return fmt.Sprintf("%s:%d", c.CatalogHost, c.CatalogPort)
}
