package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/c360studio/gorcmap/config"
	"github.com/c360studio/gorcmap/correlation"
	"github.com/c360studio/gorcmap/export"
)

// writeTestConfig writes a config file so tests never read the user's own.
func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	for _, k := range []string{config.EnvPort, config.EnvAddr, config.EnvLogLevel, config.EnvCORSOrigins} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "gorcmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	cmd := rootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "gorcmap version 0.1.0 (build: dev)\n", out)
}

func TestExportCommand_ToDirectory(t *testing.T) {
	cfgPath := writeTestConfig(t, "export:\n  timezone: UTC\n")
	dir := filepath.Join(t.TempDir(), "out")

	out, _, err := execute(t, context.Background(), "export", "--config", cfgPath, "--taxonomy", "revised", "--out", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Regexp(t, regexp.MustCompile(`GORC_MaLDReTH_Revised_Correlation_\d{8}_\d{6}\.xlsx$`), path)
	assert.Equal(t, dir, filepath.Dir(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, export.SheetNames(), f.GetSheetList())
}

func TestExportCommand_ToStdout(t *testing.T) {
	cfgPath := writeTestConfig(t, "export:\n  default_taxonomy: original\n")

	out, _, err := execute(t, context.Background(), "export", "-c", cfgPath, "--kind", "summary-csv", "--out", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+correlation.StageCount)
	assert.Equal(t, "MaLDReTH_Stage,Primary_Services,Secondary_Services", lines[0])
}

func TestExportCommand_InvalidInput(t *testing.T) {
	cfgPath := writeTestConfig(t, "log:\n  level: error\n")

	_, _, err := execute(t, context.Background(), "export", "-c", cfgPath, "--taxonomy", "bogus", "--out", "-")
	assert.ErrorIs(t, err, export.ErrInvalidTaxonomy)

	_, _, err = execute(t, context.Background(), "export", "-c", cfgPath, "--kind", "pdf", "--out", "-")
	assert.ErrorIs(t, err, export.ErrInvalidExportKind)
}

func TestDataCommand(t *testing.T) {
	cfgPath := writeTestConfig(t, "export:\n  default_taxonomy: revised\n")

	out, _, err := execute(t, context.Background(), "data", "-c", cfgPath)
	require.NoError(t, err)

	var view correlation.View
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "revised", view.Taxonomy)
	assert.Len(t, view.Categories, 14)

	_, _, err = execute(t, context.Background(), "data", "-c", cfgPath, "--taxonomy", "nope")
	assert.ErrorIs(t, err, export.ErrInvalidTaxonomy)
}

func TestInvalidFlagOverride(t *testing.T) {
	cfgPath := writeTestConfig(t, "")
	_, _, err := execute(t, context.Background(), "data", "-c", cfgPath, "--log-format", "xml")
	assert.Error(t, err)
}

func TestServeCommand_StopsOnCancel(t *testing.T) {
	cfgPath := writeTestConfig(t, "server:\n  shutdown_timeout: 1s\n")

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, stderr, err := execute(t, ctx, "serve", "-c", cfgPath, "--addr", "127.0.0.1:0", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"Gorcmap ready"`)
	assert.Contains(t, stderr, `"msg":"Received shutdown signal"`)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestConfigInitCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	want := filepath.Join(home, config.UserConfigDir, config.UserConfigFile)

	out, _, err := execute(t, context.Background(), "config", "init")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	cfg, err := config.LoadFromFile(want)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	out, _, err = execute(t, context.Background(), "config", "init")
	require.NoError(t, err)
	assert.Equal(t, want+" already exists\n", out)
}

func TestExportCommand_KindHelp(t *testing.T) {
	out, _, err := execute(t, context.Background(), "export", "--help")
	require.NoError(t, err)

	for _, k := range export.Kinds() {
		info, ok := export.GetKindInfo(k)
		require.True(t, ok)
		assert.Contains(t, out, string(k))
		assert.Contains(t, out, info.Description)
	}
}

func TestWaitForShutdown(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, config.LogConfig{Format: "json"})

	serverDone := make(chan struct{})
	close(serverDone)
	err := waitForShutdown(context.Background(), serverDone, logger)
	assert.ErrorIs(t, err, errServerExited)
	assert.Contains(t, buf.String(), `"msg":"HTTP server exited"`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, waitForShutdown(ctx, make(chan struct{}), logger))
}
