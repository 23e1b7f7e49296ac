package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/runoshun/lintgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFakeVenv lays out the minimal structure Activate checks for.
func buildFakeVenv(t *testing.T, projectDir, name string) string {
	t.Helper()
	binDir := filepath.Join(projectDir, name, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "python"), []byte("#!/bin/sh\n"), 0o755))
	return filepath.Join(projectDir, name)
}

func TestClient_Activate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("activates an existing venv", func(t *testing.T) {
		projectDir := t.TempDir()
		venvDir := buildFakeVenv(t, projectDir, "venv")

		env, err := client.Activate(projectDir, "venv")
		require.NoError(t, err)
		assert.Equal(t, venvDir, env.VenvDir)
		assert.Equal(t, filepath.Join(venvDir, "bin"), env.BinDir)
	})

	t.Run("environment has venv bin first on PATH", func(t *testing.T) {
		projectDir := t.TempDir()
		venvDir := buildFakeVenv(t, projectDir, "venv")

		env, err := client.Activate(projectDir, "venv")
		require.NoError(t, err)

		var path, virtualEnv string
		for _, kv := range env.Env {
			if strings.HasPrefix(kv, "PATH=") {
				path = strings.TrimPrefix(kv, "PATH=")
			}
			if strings.HasPrefix(kv, "VIRTUAL_ENV=") {
				virtualEnv = strings.TrimPrefix(kv, "VIRTUAL_ENV=")
			}
			assert.False(t, strings.HasPrefix(kv, "PYTHONHOME="), "PYTHONHOME must be dropped")
		}
		assert.True(t, strings.HasPrefix(path, filepath.Join(venvDir, "bin")+string(os.PathListSeparator)),
			"venv bin dir should lead PATH")
		assert.Equal(t, venvDir, virtualEnv)
	})

	t.Run("defaults to the fixed venv path", func(t *testing.T) {
		projectDir := t.TempDir()
		buildFakeVenv(t, projectDir, "venv")

		env, err := client.Activate(projectDir, "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(projectDir, "venv"), env.VenvDir)
	})

	t.Run("missing venv directory", func(t *testing.T) {
		_, err := client.Activate(t.TempDir(), "venv")
		assert.ErrorIs(t, err, domain.ErrVenvNotFound)
	})

	t.Run("venv without python is invalid", func(t *testing.T) {
		projectDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(projectDir, "venv", "bin"), 0o755))

		_, err := client.Activate(projectDir, "venv")
		assert.ErrorIs(t, err, domain.ErrVenvNotFound)
	})
}

func TestActivate_NoBasePath(t *testing.T) {
	env := activate([]string{"HOME=/home/u"}, "/proj/venv", "/proj/venv/bin")

	assert.Contains(t, env, "PATH=/proj/venv/bin")
	assert.Contains(t, env, "VIRTUAL_ENV=/proj/venv")
	assert.Contains(t, env, "HOME=/home/u")
}
