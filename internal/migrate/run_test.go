package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingMigrations_NoneApplied(t *testing.T) {
	pending, err := pendingMigrations(map[string]bool{})
	require.NoError(t, err)

	assert.NotEmpty(t, pending)
	assert.Contains(t, pending, "0001_init")
	assert.True(t, sortedAscending(pending), "migrations must apply in version order")
}

func TestPendingMigrations_SkipsApplied(t *testing.T) {
	pending, err := pendingMigrations(map[string]bool{"0001_init": true})
	require.NoError(t, err)

	assert.NotContains(t, pending, "0001_init")
}

func TestNew_NilLoggerFallsBack(t *testing.T) {
	r := New(nil, nil)
	require.NotNil(t, r.logger)
}

func sortedAscending(versions []string) bool {
	for i := 1; i < len(versions); i++ {
		if versions[i-1] > versions[i] {
			return false
		}
	}
	return true
}
