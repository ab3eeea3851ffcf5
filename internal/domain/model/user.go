//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tcacomm/tca-server/internal/errors"
)

const (
	maxUsernameLen = 64
	maxPasswordLen = 255
)

// Role represents a user's authorization role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is supported.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// User represents a provisioned terminal account. The password hash is opaque
// to everything except the credential store.
type User struct {
	Username     string    `json:"username"   db:"username"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	Role         Role      `json:"role"       db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CreateUserRequest carries the inputs for provisioning a user.
type CreateUserRequest struct {
	Username string
	Password string
	Role     Role
}

// Validate checks the request fields.
func (r *CreateUserRequest) Validate() error {
	name := strings.TrimSpace(r.Username)
	if name == "" {
		return errors.ValidationField("username", "username is required")
	}
	if utf8.RuneCountInString(name) > maxUsernameLen {
		return errors.ValidationField("username", "username is too long")
	}
	if strings.ContainsAny(name, " \t") {
		return errors.ValidationField("username", "username cannot contain whitespace")
	}
	if r.Password == "" {
		return errors.ValidationField("password", "password is required")
	}
	if utf8.RuneCountInString(r.Password) > maxPasswordLen {
		return errors.ValidationField("password", "password is too long")
	}
	if r.Role != "" && !r.Role.Valid() {
		return errors.ValidationField("role", "role must be user or admin")
	}
	return nil
}
