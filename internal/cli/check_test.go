package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: passing
cases:
  - name: fused
    type: lquery
    input: ["a.*.*{2}"]
    want: "a.*{2,}"
  - name: bad_label
    type: ltree
    input: ["a-b"]
    error: validation
`

const failingScenario = `name: failing
cases:
  - name: wrong
    type: ltree
    input: ["a.b"]
    want: "a.c"
`

func writeScenario(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestCheckCommand_Pass(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "passing.yaml", passingScenario)

	out, err := execute(t, "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ passing (2 cases)")
	assert.Contains(t, out, "Summary: 1 passed, 0 failed, 1 total")
}

func TestCheckCommand_Fail(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "passing.yaml", passingScenario)
	writeScenario(t, dir, "failing.yaml", failingScenario)

	out, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ failing (1 cases)")
	assert.Contains(t, out, `wrong: want "a.c", got "a.b"`)
	assert.Contains(t, out, "Summary: 1 passed, 1 failed, 2 total")
}

func TestCheckCommand_FailJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "failing.yaml", failingScenario)

	out, err := execute(t, "--format", "json", "check", dir)
	require.Error(t, err)

	var result CheckResult
	resp := CLIResponse{Data: &result}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeFailed, resp.Error.Code)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "failing", result.Scenarios[0].Name)
}

func TestCheckCommand_Filter(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "passing.yaml", passingScenario)
	writeScenario(t, dir, "failing.yaml", failingScenario)

	out, err := execute(t, "check", dir, "--filter", "pass*")
	require.NoError(t, err)
	assert.Contains(t, out, "Summary: 1 passed, 0 failed, 1 total")
}

func TestCheckCommand_EmptyDir(t *testing.T) {
	out, err := execute(t, "--format", "json", "check", t.TempDir())
	require.NoError(t, err)

	var result CheckResult
	resp := CLIResponse{Data: &result}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Scenarios)
}

func TestCheckCommand_MissingDir(t *testing.T) {
	_, err := execute(t, "check", "/nonexistent/scenarios")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "scenarios directory not found")
}

func TestCheckCommand_InvalidScenario(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "bad.yaml", "name: bad\ncases: []\n")

	_, err := execute(t, "check", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "cases list is required")
}
