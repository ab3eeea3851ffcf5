package config

import (
	"strings"
	"time"
)

// DevAdminSecurityKey is the well-known development fallback used when no
// key is configured and DEV mode is on. Never relied upon in production:
// outside dev mode an empty key disables every privileged command.
const DevAdminSecurityKey = "TCA_ADMIN_KEY_2023"

// AuthConfig groups authentication-related configuration.
type AuthConfig struct {
	// AdminSecurityKey is the shared administrative passphrase checked by the
	// authorization gate in addition to the admin role. It is a second factor
	// independent of the stored role flag, not a per-user credential.
	AdminSecurityKey string `env:"ADMIN_SECURITY_KEY"`

	// SessionTTL is the lifetime of an authenticated session record.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"12h"`

	// BcryptCost is the cost parameter for password hashing.
	BcryptCost int `env:"AUTH_BCRYPT_COST" envDefault:"12"`
}

// Sanitize applies guardrails to authentication configuration values.
func (a *AuthConfig) Sanitize(isDev bool) {
	a.AdminSecurityKey = strings.TrimSpace(a.AdminSecurityKey)
	if a.AdminSecurityKey == "" && isDev {
		a.AdminSecurityKey = DevAdminSecurityKey
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 12 * time.Hour
	}
	if a.BcryptCost < 10 {
		a.BcryptCost = 10
	}
	if a.BcryptCost > 16 {
		a.BcryptCost = 16
	}
}
