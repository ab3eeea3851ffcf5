package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcacomm/tca-server/config"
)

func TestNewServices_RequiresDeps(t *testing.T) {
	_, err := NewServices(nil)
	require.Error(t, err)

	_, err = NewServices(&ServiceDeps{})
	require.Error(t, err)

	_, err = NewServices(&ServiceDeps{Config: &config.AppConfig{}})
	require.Error(t, err)
}

func TestBuildObservability_Disabled(t *testing.T) {
	obs := buildObservability(nil, config.ObservabilityConfig{})

	// A disabled sink is still constructed; its methods are no-ops.
	require.NotNil(t, obs.MetricsSink)
	assert.False(t, obs.MetricsSink.Enabled())
	assert.NotNil(t, obs.metricsSink())
}

func TestValidateServiceConfig(t *testing.T) {
	require.Error(t, ValidateServiceConfig(nil))

	cfg := &config.AppConfig{Services: "terminal,sweeper"}
	require.NoError(t, ValidateServiceConfig(cfg))

	cfg.Services = "bogus"
	require.Error(t, ValidateServiceConfig(cfg))

	cfg.Services = ""
	require.Error(t, ValidateServiceConfig(cfg))
}

func TestGetEnabledServices(t *testing.T) {
	cfg := &config.AppConfig{Services: "terminal,sweeper"}
	names := GetEnabledServices(cfg)
	assert.ElementsMatch(t, []string{"terminal", "sweeper"}, names)

	assert.Empty(t, GetEnabledServices(nil))
	assert.Empty(t, GetEnabledServices(&config.AppConfig{Services: "bogus"}))
}
