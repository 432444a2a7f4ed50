package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig is an intermediate DTO for environment overrides. Variables are
// prefixed with BIOGATE, e.g. BIOGATE_ENDPOINT_ADDR, BIOGATE_DATABASE_DSN.
type envConfig struct {
	EndpointAddr          string        `envconfig:"ENDPOINT_ADDR"`
	DatabaseDSN           string        `envconfig:"DATABASE_DSN"`
	SecretKey             string        `envconfig:"SECRET_KEY"`
	TokenValidityDuration time.Duration `envconfig:"TOKEN_VALIDITY_DURATION"`
	BcryptCost            int           `envconfig:"BCRYPT_COST"`
}

// parseEnv overlays values from the environment onto the provided Config.
// Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	var e envConfig
	if err := envconfig.Process("biogate", &e); err != nil {
		panic(err)
	}

	if e.EndpointAddr != "" {
		config.EndpointAddr = e.EndpointAddr
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.TokenValidityDuration != 0 {
		config.TokenValidityDuration = e.TokenValidityDuration
	}
	if e.BcryptCost != 0 {
		config.BcryptCost = e.BcryptCost
	}
}
