package config

import (
	"errors"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL or host:port of the catalog server.
	// Env: CATALOG_SERVER
	HTTPAddress string `env:"SERVER" envDefault:"localhost:8080"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CATALOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// ClientCredentials holds the privileged identity the client presents on
// mutating calls. Both fields may stay empty for read-only use.
type ClientCredentials struct {
	// Env: CATALOG_EMAIL
	Email string `env:"EMAIL"`
	// Env: CATALOG_PASSWORD
	Password string `env:"PASSWORD"`
}

// ClientConfig is the top-level configuration of the catalogctl client.
type ClientConfig struct {
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter `envPrefix:"CATALOG_"`
	// Credentials contains the optional privileged identity.
	Credentials ClientCredentials `envPrefix:"CATALOG_"`
}

// GetClientConfig loads .env files and CATALOG_* environment variables into a
// [ClientConfig] and validates it. Command-line flags of the client override
// the result afterwards.
func GetClientConfig() (*ClientConfig, error) {
	var errs error
	if err := loadDotEnv(); err != nil {
		errs = errors.Join(errs, err)
	}

	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg); err != nil {
		errs = errors.Join(errs, err)
	}
	if errs != nil {
		return nil, fmt.Errorf("error get client config: %w", errs)
	}

	return clientCfg, clientCfg.validate()
}

// Validate re-checks the config after callers changed it (e.g. applied
// command-line overrides).
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
