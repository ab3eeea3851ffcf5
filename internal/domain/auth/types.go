package auth

// Package auth contains domain-level types for authenticated sessions.
// It is pure and free of framework/adapter concerns.

import (
	"time"

	"github.com/tcacomm/tca-server/internal/domain/model"
)

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier (random URL-safe string); the transient
// terminal state (location, history) lives in domain/session, keyed by ID.
type Session struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool { return s.Role == model.RoleAdmin }
