package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, ".tsrg", cfg.Convert.Extension)
	assert.Equal(t, 1, cfg.Convert.Parallel)
	assert.Equal(t, []string{"*.txt"}, cfg.Convert.Include)
	assert.Equal(t, ".mapconv-cache.yaml", cfg.Cache.Manifest)
	assert.False(t, cfg.Cache.Disabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version = 1

[convert]
output_dir = "out"
extension = "srg"
parallel = 4
exclude = ["*server*"]
force = true

[cache]
disabled = true

[log]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Convert.OutputDir)
	assert.Equal(t, ".srg", cfg.Convert.Extension)
	assert.Equal(t, 4, cfg.Convert.Parallel)
	assert.Equal(t, []string{"*.txt"}, cfg.Convert.Include)
	assert.Equal(t, []string{"*server*"}, cfg.Convert.Exclude)
	assert.True(t, cfg.Convert.Force)
	assert.True(t, cfg.Cache.Disabled)
	assert.Equal(t, ".mapconv-cache.yaml", cfg.Cache.Manifest)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		errPart  string
	}{
		{name: "syntax", contents: "version = ", errPart: "failed to parse"},
		{name: "version", contents: "version = 2", errPart: "unsupported version 2"},
		{name: "parallel", contents: "[convert]\nparallel = -1", errPart: "convert.parallel"},
		{name: "extension", contents: "[convert]\nextension = \"a/b\"", errPart: "convert.extension"},
		{name: "level", contents: "[log]\nlevel = \"loud\"", errPart: "log.level"},
		{name: "format", contents: "[log]\nformat = \"xml\"", errPart: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), DefaultFile)

	cfg, err := LoadOrDefault(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadOrDefault(missing, true)
	require.Error(t, err)
}

func TestLoad_ExampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, "build/tsrg", cfg.Convert.OutputDir)
	assert.Equal(t, 4, cfg.Convert.Parallel)
	assert.Equal(t, []string{"*-old.txt"}, cfg.Convert.Exclude)
	assert.False(t, cfg.Cache.Disabled)
}
