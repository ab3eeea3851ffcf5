package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcacomm/tca-server/config"
	domainauth "github.com/tcacomm/tca-server/internal/domain/auth"
	"github.com/tcacomm/tca-server/internal/domain/model"
	apperrors "github.com/tcacomm/tca-server/internal/errors"
)

func newTestGate(secret string) *Gate {
	return NewGate(GateOptions{Config: config.AuthConfig{AdminSecurityKey: secret}})
}

func TestGate_ValidateSecret(t *testing.T) {
	g := newTestGate("hunter2")

	assert.True(t, g.ValidateSecret("hunter2"))
	assert.False(t, g.ValidateSecret("hunter3"))
	assert.False(t, g.ValidateSecret(""))
}

func TestGate_ValidateSecret_EmptyConfiguredKey(t *testing.T) {
	g := newTestGate("")

	// An unset key never matches, not even an empty candidate.
	assert.False(t, g.ValidateSecret(""))
	assert.False(t, g.ValidateSecret("anything"))
}

func TestGate_Authorize(t *testing.T) {
	g := newTestGate("hunter2")
	admin := domainauth.Session{Username: "root", Role: model.RoleAdmin}
	user := domainauth.Session{Username: "alice", Role: model.RoleUser}

	require.NoError(t, g.Authorize(admin, "hunter2"))

	tests := []struct {
		name   string
		sess   domainauth.Session
		secret string
	}{
		{"admin with wrong secret", admin, "wrong"},
		{"admin with empty secret", admin, ""},
		{"user with correct secret", user, "hunter2"},
		{"user with wrong secret", user, "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Authorize(tt.sess, tt.secret)
			require.Error(t, err)
			assert.True(t, apperrors.IsPermissionDenied(err))
		})
	}
}
