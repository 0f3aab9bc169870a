package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/macexpect/pkg/config"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "model.yaml", `
wake_periods: [4, 6, 12]
listen_cost: 15
finished: [false, false, true]
`)

	m, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, [domain.NodeCount]int{4, 6, 12}, m.WakePeriods)
	assert.Equal(t, 15, m.ListenCost)
	assert.Equal(t, [domain.NodeCount]bool{false, false, true}, m.Finished)
	// Untouched keys keep their defaults.
	assert.Equal(t, domain.DefaultTransmitCost, m.TransmitCost)
	assert.Equal(t, domain.DefaultGatewayPeriod, m.GatewayPeriod)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "model.json", `{"gateway_period": 5, "idle_phase": 2, "transmit_cost": 50}`)

	m, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, m.GatewayPeriod)
	assert.Equal(t, 2, m.IdlePhase)
	assert.Equal(t, 50, m.TransmitCost)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "model.yaml", "preamble_colour: blue\n")
		_, err := config.Load(path)
		assert.ErrorIs(t, err, domain.ErrInvalidModel)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeFile(t, "model.yaml", "idle_phase: 7\n")
		_, err := config.Load(path)
		assert.ErrorIs(t, err, domain.ErrInvalidModel)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "model.yaml", "wake_periods: [4, 6\n")
		_, err := config.Load(path)
		assert.Error(t, err)
	})
}

func TestParseOverrides_Apply(t *testing.T) {
	raw, err := config.ParseOverrides([]string{"listen_cost=20", "wake_periods=4, 6, 10", "finished=true,false,false"})
	require.NoError(t, err)
	assert.Equal(t, "20", raw["listen_cost"])
	assert.Equal(t, []string{"4", "6", "10"}, raw["wake_periods"])

	m, err := config.Apply(config.Default(), raw)
	require.NoError(t, err)
	assert.Equal(t, 20, m.ListenCost)
	assert.Equal(t, [domain.NodeCount]int{4, 6, 10}, m.WakePeriods)
	assert.Equal(t, [domain.NodeCount]bool{true, false, false}, m.Finished)
}

func TestParseOverrides_Invalid(t *testing.T) {
	_, err := config.ParseOverrides([]string{"listen_cost"})
	assert.Error(t, err)

	_, err = config.ParseOverrides([]string{"=3"})
	assert.Error(t, err)
}

func TestApply_Empty(t *testing.T) {
	m, err := config.Apply(config.Default(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultModel(), m)
}

func TestMarshal_RoundTrip(t *testing.T) {
	want := config.Default()
	want.ListenCost = 12
	want.Finished[1] = true

	data, err := config.Marshal(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "listen_cost: 12")

	got, err := config.Load(writeFile(t, "model.yaml", string(data)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
