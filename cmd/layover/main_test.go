package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layover"
	"github.com/katalvlaran/layover/config"
	"github.com/katalvlaran/layover/network"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeNetwork(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRoute_Airports(t *testing.T) {
	out, _, err := execute(t, "route", "Atlanta", "San Francisco")
	require.NoError(t, err)
	assert.Equal(t,
		"Atlanta -> Chicago: 2.6 units\n"+
			"Chicago -> San Francisco: 5.7 units\n"+
			"Total travel time: 8.3 units\n",
		out)
}

func TestRoute_Flags(t *testing.T) {
	out, _, err := execute(t, "route", "--from", "Atlanta", "--to", "Newark")
	require.NoError(t, err)
	assert.Equal(t, "Atlanta -> Newark: 2.6 units\nTotal travel time: 2.6 units\n", out)
}

func TestRoute_NoPath(t *testing.T) {
	out, _, err := execute(t, "route", "San Diego", "Chicago")
	require.NoError(t, err)
	assert.Equal(t, "No valid path found.\n", out)
}

func TestRoute_Errors(t *testing.T) {
	_, _, err := execute(t, "route", "Atlanta")
	require.ErrorIs(t, err, errBothRequired)

	_, _, err = execute(t, "route", "  ", "Newark")
	require.ErrorIs(t, err, errBothRequired)

	_, stderr, err := execute(t, "route", "Atlanta", "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nowhere")
	assert.Contains(t, stderr, "Nowhere")
}

func TestRoute_CustomNetwork(t *testing.T) {
	path := writeNetwork(t, `
edges:
  - {from: A, to: B, travel: 2.1, surcharge: 0.5}
  - {from: B, to: C, travel: 4.7, surcharge: 1.0}
  - {from: A, to: D, travel: 2.3, surcharge: 0.3}
`)
	out, _, err := execute(t, "--network", path, "route", "A", "C")
	require.NoError(t, err)
	assert.Equal(t, "A -> B: 2.6 units\nB -> C: 5.7 units\nTotal travel time: 8.3 units\n", out)
}

func TestRoute_BadNetwork(t *testing.T) {
	path := writeNetwork(t, "edges: []\n")
	_, _, err := execute(t, "--network", path, "route", "A", "B")
	require.ErrorIs(t, err, network.ErrEmptyNetwork)
}

func TestHops(t *testing.T) {
	out, _, err := execute(t, "hops", "Atlanta", "San Francisco")
	require.NoError(t, err)
	assert.Equal(t, "Atlanta -> Chicago -> San Francisco\nFlights: 2\n", out)

	out, _, err = execute(t, "hops", "--max", "1", "Atlanta", "San Francisco")
	require.NoError(t, err)
	assert.Equal(t, "No valid path found.\n", out)

	_, _, err = execute(t, "hops", "Atlanta", "Boston")
	require.ErrorIs(t, err, layover.ErrUnknownNode)

	_, _, err = execute(t, "hops", "--max", "-1", "Atlanta", "Newark")
	require.Error(t, err)
}

func TestNodes(t *testing.T) {
	out, _, err := execute(t, "nodes")
	require.NoError(t, err)
	assert.Equal(t, "Atlanta\nChicago\nSan Francisco\nNewark\nSan Diego\n", out)
}

func TestNetwork_RoundTripsThroughRoute(t *testing.T) {
	out, _, err := execute(t, "network")
	require.NoError(t, err)
	assert.Contains(t, out, "from: San Diego")

	path := writeNetwork(t, out)
	routeOut, _, err := execute(t, "--network", path, "route", "Atlanta", "Newark")
	require.NoError(t, err)
	assert.Contains(t, routeOut, "Total travel time: 2.6 units")
}

func TestLogFlagsOverrideInvalidEnv(t *testing.T) {
	t.Setenv("LAYOVER_LOG_LEVEL", "loud")
	t.Setenv("LAYOVER_LOG_FORMAT", "xml")

	out, _, err := execute(t, "--log-level", "debug", "--log-format", "json", "nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "Atlanta")

	_, _, err = execute(t, "nodes")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "nodes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}
