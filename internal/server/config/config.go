// Package config handles configuration for the server component,
// including defaults, command-line flags, and environment overrides.
package config

import (
	"flag"
	"os"
	"time"
)

// Config holds runtime settings for the gophblog server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabasePath: path to the SQLite database file.
//   - SessionSecret: HMAC secret for signing session tokens (HS256).
//     Do not use the development default in prod.
//   - SessionTTL: session token lifetime.
type Config struct {
	Addr          string
	DatabasePath  string
	SessionSecret string
	SessionTTL    time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "gophblog.db"
	c.SessionSecret = "dev"
	c.SessionTTL = 24 * time.Hour
}

// Load builds a Config by applying defaults, then command-line flags,
// then environment variables (environment wins)
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.parseFlags()
	cfg.applyEnv()
	return cfg
}

// parseFlags populates Config fields from command-line flags
//
// Supported flags:
//
//	-a string      HTTP bind address (e.g., ":8080")
//	-d string      path to SQLite database file
//	-s string      session signing secret
//	-t duration    session lifetime (e.g., "24h")
func (c *Config) parseFlags() {
	flag.StringVar(&c.Addr, "a", c.Addr, "address and port to run server")
	flag.StringVar(&c.DatabasePath, "d", c.DatabasePath, "path to SQLite database file")
	flag.StringVar(&c.SessionSecret, "s", c.SessionSecret, "session signing secret")
	flag.DurationVar(&c.SessionTTL, "t", c.SessionTTL, "session lifetime")
	flag.Parse()
}

// applyEnv overrides Config fields from environment variables
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("DATABASE_PATH"); ok {
		c.DatabasePath = v
	}
	if v, ok := os.LookupEnv("SESSION_SECRET"); ok {
		c.SessionSecret = v
	}
	if v, ok := os.LookupEnv("SESSION_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			c.SessionTTL = d
		}
	}
}
