package service

import (
	"crypto/subtle"

	"github.com/tcacomm/tca-server/config"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
)

// GateOptions groups dependencies for Gate.
type GateOptions struct {
	Config config.AuthConfig
}

// Gate validates the shared administrative secret and the acting user's role
// before privileged operations. The secret is a second factor independent of
// the stored role flag: a session with role=admin still cannot perform
// privileged mutations without it. There is no lockout or rate limiting on
// failed attempts.
type Gate struct {
	secret string
}

// NewGate constructs a new Gate.
func NewGate(opts GateOptions) *Gate {
	return &Gate{secret: opts.Config.AdminSecurityKey}
}

// ValidateSecret reports whether the candidate matches the configured
// administrative secret. The comparison is constant-time.
func (g *Gate) ValidateSecret(candidate string) bool {
	if g.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.secret), []byte(candidate)) == 1
}

// Authorize checks both factors for a privileged operation: the session role
// must be admin AND the candidate secret must match. Both failure modes
// collapse into the same permission error so a caller cannot distinguish
// which factor was wrong.
func (g *Gate) Authorize(sess domainauth.Session, candidate string) error {
	if !sess.IsAdmin() || !g.ValidateSecret(candidate) {
		return apperrors.PermissionDenied("invalid security key")
	}
	return nil
}
