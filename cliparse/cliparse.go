package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default connection-establishment timeout in seconds, applied when the
// database URL does not set one itself.
const DefaultConnectTimeout = 10

type Config struct {
	Port           int
	DatabaseURL    string
	APIKey         string // empty means GET /rsvps is open (dev only)
	ConnectTimeout int    // seconds
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("rsvp-api", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.IntVar(&cfg.ConnectTimeout, "connect-timeout", 0, "Database connect timeout in seconds")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.APIKey, "api-key", "", "API key protecting GET /rsvps (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.ConnectTimeout == 0 {
		if timeoutStr := os.Getenv("DB_CONNECT_TIMEOUT"); timeoutStr != "" {
			timeout, err := strconv.Atoi(timeoutStr)
			if err != nil || timeout <= 0 {
				return Config{}, errors.New("invalid DB_CONNECT_TIMEOUT env variable")
			}
			cfg.ConnectTimeout = timeout
		} else {
			cfg.ConnectTimeout = DefaultConnectTimeout
		}
	}

	// Optional: unset means the list endpoint is open
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}

	return cfg, nil
}

// DSN returns the database URL with the configured connect timeout applied.
// A timeout already present in the URL wins. Both URL-style and key=value
// connection strings are handled, since lib/pq accepts either.
func (c Config) DSN() string {
	if strings.Contains(c.DatabaseURL, "connect_timeout") {
		return c.DatabaseURL
	}

	if strings.Contains(c.DatabaseURL, "://") {
		sep := "?"
		if strings.Contains(c.DatabaseURL, "?") {
			sep = "&"
		}
		return fmt.Sprintf("%s%sconnect_timeout=%d", c.DatabaseURL, sep, c.ConnectTimeout)
	}

	return fmt.Sprintf("%s connect_timeout=%d", c.DatabaseURL, c.ConnectTimeout)
}
