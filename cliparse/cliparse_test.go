// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("API_KEY", "sekrit")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.APIKey != "sekrit" {
		t.Errorf("expected API key from env, got %q", cfg.APIKey)
	}
	if cfg.ConnectTimeout != DefaultConnectTimeout {
		t.Errorf("expected default connect timeout, got %d", cfg.ConnectTimeout)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8081", "-d", "postgres://cli", "-api-key", "k1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://cli" {
		t.Errorf("expected CLI database URL, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_DatabaseURLRequired(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestParseFlags_APIKeyOptional(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.APIKey)
	}
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		timeout  int
		expected string
	}{
		{
			name:     "plain URL",
			url:      "postgres://u:p@host:5432/db",
			timeout:  10,
			expected: "postgres://u:p@host:5432/db?connect_timeout=10",
		},
		{
			name:     "URL with existing query",
			url:      "postgres://u:p@host:5432/db?sslmode=disable",
			timeout:  10,
			expected: "postgres://u:p@host:5432/db?sslmode=disable&connect_timeout=10",
		},
		{
			name:     "URL already has timeout",
			url:      "postgres://u:p@host:5432/db?connect_timeout=5",
			timeout:  10,
			expected: "postgres://u:p@host:5432/db?connect_timeout=5",
		},
		{
			name:     "key-value DSN",
			url:      "host=localhost dbname=rsvp",
			timeout:  7,
			expected: "host=localhost dbname=rsvp connect_timeout=7",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{DatabaseURL: tc.url, ConnectTimeout: tc.timeout}
			if got := cfg.DSN(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
