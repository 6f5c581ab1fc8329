package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jdkConfig = `
tests:
  dimensions:
    - name: Jdk
      versions: ["11", "17"]
`

func init() { color.NoColor = true }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vcmatrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTasks(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	out, err := run(t, "--config", cfg, "tasks")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Verification tasks\n------------------\n"), out)
	assert.Contains(t, out, "testCompatibilityWithJdk11 - ")
	assert.Contains(t, out, "testCompatibilityWithJdk17 - ")
	assert.NotContains(t, out, "compileJava")
}

func TestTasks_all(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	out, err := run(t, "--config", cfg, "tasks", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Build tasks")
	assert.Contains(t, out, "Other tasks")
	assert.Contains(t, out, "compileJava")
}

func TestPlan(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	out, err := run(t, "--config", cfg, "plan", "check")
	require.NoError(t, err)
	assert.Equal(t, `  1 compileJava
  2 processResources
  3 compileTestJava
  4 processTestResources
  5 test
  6 check
`, out)
}

func TestPlan_unknown(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	_, err := run(t, "--config", cfg, "plan", "nope")
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	out, err := run(t, "--config", cfg, "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "testCompatibilityWithJdk11")
}

func TestConfig(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	out, err := run(t, "--config", cfg, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "test_unit: test")
	assert.Contains(t, out, "name: Jdk")
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "tasks")
	assert.Error(t, err)
}

func TestBadTraceFlag(t *testing.T) {
	cfg := writeConfig(t, jdkConfig)
	_, err := run(t, "--config", cfg, "--trace", "loud", "tasks")
	assert.Error(t, err)
}

func TestWatch_cancelled(t *testing.T) {
	opts := &options{configPath: writeConfig(t, jdkConfig), trace: "off"}
	cmd := newWatchCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd.SetContext(ctx)
	require.NoError(t, opts.watch(ctx, cmd))
	assert.Contains(t, out.String(), "✓")
	assert.Contains(t, out.String(), "2 compatibility tests, 0 adapter tests")
}
