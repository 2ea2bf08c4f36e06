// Package config handles configuration for the server component,
// including defaults, a JSON or YAML file overlay, and command-line flags.
package config

import (
	"fmt"
	"net"
	"time"
)

// Token issuer names accepted in Config.TokenIssuer.
const (
	IssuerPlaceholder = "placeholder"
	IssuerJWT         = "jwt"
)

// Config holds runtime settings for the credential server.
//
// Fields:
//   - EndpointAddrGRPC: bind address of the gRPC endpoint. Must be loopback.
//   - LogLevel: debug, info, warn or error.
//   - TokenIssuer: "placeholder" (fixed opaque token) or "jwt".
//   - SecretKey: HMAC secret for the jwt issuer.
//   - TokenValidityDuration: lifetime of jwt tokens.
type Config struct {
	EndpointAddrGRPC      string
	LogLevel              string
	TokenIssuer           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with the development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = "127.0.0.1:8080"
	c.LogLevel = "info"
	c.TokenIssuer = IssuerPlaceholder
	c.SecretKey = ""
	c.TokenValidityDuration = 15 * time.Minute
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks the settings the server cannot run without. The gRPC
// endpoint is plaintext and unauthenticated, so it may only bind to a
// loopback address.
func (c *Config) Validate() error {
	host, _, err := net.SplitHostPort(c.EndpointAddrGRPC)
	if err != nil {
		return fmt.Errorf("invalid endpoint address %q: %w", c.EndpointAddrGRPC, err)
	}
	if !isLoopback(host) {
		return fmt.Errorf("endpoint address %q is not a loopback address", c.EndpointAddrGRPC)
	}

	switch c.TokenIssuer {
	case IssuerPlaceholder:
	case IssuerJWT:
		if c.SecretKey == "" {
			return fmt.Errorf("token issuer %q requires a secret key", IssuerJWT)
		}
		if c.TokenValidityDuration <= 0 {
			return fmt.Errorf("token validity duration must be positive, got %s", c.TokenValidityDuration)
		}
	default:
		return fmt.Errorf("unknown token issuer %q", c.TokenIssuer)
	}

	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
