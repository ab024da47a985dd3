package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with env tags; only variables that are actually
// set override the current values.
type envConfig struct {
	EndpointAddrGRPC            string        `env:"USERSVC_GRPC_ADDR"`
	EndpointAddrHTTP            string        `env:"USERSVC_HTTP_ADDR"`
	DatabaseDSN                 string        `env:"USERSVC_DATABASE_DSN"`
	SecretKey                   string        `env:"USERSVC_SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"USERSVC_TOKEN_VALIDITY"`
}

func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration
	}
}
