package config

import (
	"reflect"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestParseServices(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    map[ServiceMode]bool
		expectError bool
	}{
		{
			name:     "single service - terminal",
			input:    "terminal",
			expected: map[ServiceMode]bool{ServiceModeTerminal: true},
		},
		{
			name:     "single service - sweeper",
			input:    "sweeper",
			expected: map[ServiceMode]bool{ServiceModeSweeper: true},
		},
		{
			name:  "both services",
			input: "terminal,sweeper",
			expected: map[ServiceMode]bool{
				ServiceModeTerminal: true,
				ServiceModeSweeper:  true,
			},
		},
		{
			name:  "services with spaces",
			input: " terminal , sweeper ",
			expected: map[ServiceMode]bool{
				ServiceModeTerminal: true,
				ServiceModeSweeper:  true,
			},
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "invalid service",
			input:       "terminal,webscale",
			expectError: true,
		},
		{
			name:        "only separators",
			input:       ", ,",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServices(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseServices(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Services != "terminal" {
		t.Errorf("Services default = %q, want terminal", cfg.Services)
	}
	if cfg.Retention.MaxAge != 72*time.Hour {
		t.Errorf("Retention.MaxAge default = %v, want 72h", cfg.Retention.MaxAge)
	}
	if cfg.Session.HistoryLimit != 200 {
		t.Errorf("Session.HistoryLimit default = %d, want 200", cfg.Session.HistoryLimit)
	}
	if cfg.Postgres.Host != "localhost" {
		t.Errorf("Postgres.Host default = %q, want localhost", cfg.Postgres.Host)
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		isDev   bool
		wantKey string
	}{
		{
			name:    "dev fallback key",
			cfg:     AuthConfig{},
			isDev:   true,
			wantKey: DevAdminSecurityKey,
		},
		{
			name:    "no fallback outside dev",
			cfg:     AuthConfig{},
			isDev:   false,
			wantKey: "",
		},
		{
			name:    "configured key wins",
			cfg:     AuthConfig{AdminSecurityKey: " s3cret "},
			isDev:   true,
			wantKey: "s3cret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Sanitize(tt.isDev)
			if tt.cfg.AdminSecurityKey != tt.wantKey {
				t.Errorf("AdminSecurityKey = %q, want %q", tt.cfg.AdminSecurityKey, tt.wantKey)
			}
		})
	}
}

func TestRetentionConfig_Sanitize(t *testing.T) {
	cfg := RetentionConfig{MaxAge: time.Minute, Interval: time.Second, BatchSize: 0}
	cfg.Sanitize()

	if cfg.MaxAge != 72*time.Hour {
		t.Errorf("MaxAge = %v, want 72h", cfg.MaxAge)
	}
	if cfg.Interval != 24*time.Hour {
		t.Errorf("Interval = %v, want 24h", cfg.Interval)
	}
	if cfg.BatchSize != 500 {
		t.Errorf("BatchSize = %d, want 500", cfg.BatchSize)
	}
}
