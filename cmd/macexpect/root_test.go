package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_PrintsSingleLine(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "22.52126200274349 379.2661179698216\n", out)
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestRoot_Overrides(t *testing.T) {
	out, _, err := execute(t, "--set", "finished=true,false,true")
	require.NoError(t, err)
	assert.Equal(t, "6 110\n", out)

	_, _, err = execute(t, "--set", "gateway_period=0")
	assert.ErrorIs(t, err, domain.ErrInvalidModel)
}

func TestRoot_ModelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte("finished: [false, true, true]\n"), 0o644))

	out, _, err := execute(t, "--model", path)
	require.NoError(t, err)
	assert.Equal(t, "8 120\n", out)
}

func TestRoot_JSON(t *testing.T) {
	out, _, err := execute(t, "--json", "--depth-first")
	require.NoError(t, err)

	var res domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 16418.0/729, res.ExpectedTime, 1e-9)
	assert.Equal(t, 31, res.TerminalStates)
}

func TestRoot_DebugLogsGoToStderr(t *testing.T) {
	out, errOut, err := execute(t, "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, errOut, "enumeration finished")

	_, _, err = execute(t, "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRoot_RedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	out, _, err := execute(t, "--redis", mr.Addr())
	require.NoError(t, err)
	assert.Equal(t, "22.52126200274349 379.2661179698216\n", out)
	assert.True(t, mr.Exists("macexpect:result:"+domain.DefaultModel().Fingerprint()))

	// Served from the cache the second time.
	out, errOut, err := execute(t, "--redis", mr.Addr(), "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "22.52126200274349 379.2661179698216\n", out)
	assert.Contains(t, errOut, "result cache hit")
}

func TestModelCmd(t *testing.T) {
	out, _, err := execute(t, "model", "--set", "listen_cost=12")
	require.NoError(t, err)
	assert.Contains(t, out, "listen_cost: 12")
	assert.Contains(t, out, "gateway_period: 3")
}

func TestReportCmd(t *testing.T) {
	out, _, err := execute(t, "report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "macexpect v"))
	assert.Contains(t, out, "| Expected time (slots) | 22.521262 |")
	assert.Contains(t, out, "| 56 |")
}

func TestGraphCmd(t *testing.T) {
	out, _, err := execute(t, "graph", "--until", "6")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	assert.Contains(t, out, "node 2 replies")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "macexpect version 0.1.0\n", out)
}
