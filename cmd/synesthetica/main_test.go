package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/storage"
)

func resolveArgs(t *testing.T, args ...string) (*session, error) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addSessionFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return resolve(cmd, io.Discard)
}

func TestResolveLayers(t *testing.T) {
	dir := t.TempDir()
	saved := storage.DefaultWorkspace()
	saved.CurrentMode = "crystal"
	saved.FunctionInput = "x * t"
	saved.Parameters = engine.Params{"gridSize": 30}
	require.NoError(t, storage.New(dir).SaveWorkspace(saved))

	tests := []struct {
		name     string
		args     []string
		mode     string
		function string
		params   engine.Params
	}{
		{"workspace", nil, "crystal", "x * t", engine.Params{"gridSize": 30}},
		{"param flag", []string{"-p", "amplitude=60"}, "crystal", "x * t", engine.Params{"gridSize": 30, "amplitude": 60}},
		{"mode flag drops params", []string{"--mode", "zeta"}, "zeta", "x * t", engine.Params{}},
		{"function flag", []string{"-f", "a * x"}, "crystal", "a * x", engine.Params{"gridSize": 30}},
		{"preset", []string{"--preset", "Parabola"}, "crystal", "a * x^2", engine.Params{"gridSize": 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := resolveArgs(t, append([]string{"--data-dir", dir}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, s.ws.CurrentMode)
			assert.Equal(t, tt.function, s.ws.FunctionInput)
			assert.Equal(t, tt.params, s.params)
		})
	}
}

func TestResolveConfigWithoutWorkspace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "synesthetica.toml")
	require.NoError(t, os.WriteFile(path, []byte("mode = \"graph\"\nseed = 7\n"), 0644))

	s, err := resolveArgs(t, "--data-dir", dir, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "graph", s.ws.CurrentMode)
	assert.Equal(t, uint64(7), s.cfg.Seed)
	assert.Equal(t, dir, s.cfg.DataDir)
}

func TestResolveErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "nope"}},
		{"bad param", []string{"-p", "amplitude=loud"}},
		{"bad log level", []string{"--log-level", "chatty"}},
		{"missing config", []string{"--config", filepath.Join(dir, "missing.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveArgs(t, append([]string{"--data-dir", dir}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestLogToConfiguredDataDir(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "from-config")
	path := filepath.Join(root, "synesthetica.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: "+dataDir+"\n"), 0644))

	var early bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	addSessionFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))
	s, err := resolve(cmd, &early)
	require.NoError(t, err)
	early.WriteString("before redirect\n")

	f, err := s.logToFile(&early)
	require.NoError(t, err)
	s.logger.Info("after redirect")
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dataDir, "synesthetica.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "before redirect")
	assert.Contains(t, string(data), "after redirect")
}
