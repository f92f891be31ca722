package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"sh> \"\ndebug: true\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "sh> ", cfg.Prompt)
	assert.True(t, cfg.Debug)
}

func TestLoad_AbsentPromptKeepsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
}

func TestLoad_ExplicitEmptyPromptIsHonored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"\"\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Empty(t, cfg.Prompt, "a configured empty prompt means no prompt")
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simplesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
