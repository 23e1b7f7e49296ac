package executor

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/runoshun/lintgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Run(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("returns zero for succeeding command", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.ExecCommand{Program: "sh", Args: []string{"-c", "echo hello"}}
		code, err := client.Run(context.Background(), cmd, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "hello\n", stdout.String())
	})

	t.Run("returns the child's exit code without error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.ExecCommand{Program: "sh", Args: []string{"-c", "exit 3"}}
		code, err := client.Run(context.Background(), cmd, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("runs in the specified directory", func(t *testing.T) {
		dir := t.TempDir()
		var stdout, stderr bytes.Buffer
		cmd := domain.ExecCommand{Program: "pwd", Dir: dir}
		code, err := client.Run(context.Background(), cmd, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), filepath.Base(dir))
	})

	t.Run("passes the environment to the child", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.ExecCommand{
			Program: "sh",
			Args:    []string{"-c", "echo $VIRTUAL_ENV"},
			Env:     []string{"PATH=/usr/bin:/bin", "VIRTUAL_ENV=/tmp/venv"},
		}
		code, err := client.Run(context.Background(), cmd, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Equal(t, "/tmp/venv\n", stdout.String())
	})

	t.Run("returns error for non-existent program", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.ExecCommand{Program: "nonexistent-command-xyz"}
		_, err := client.Run(context.Background(), cmd, &stdout, &stderr)
		require.Error(t, err)
	})

	t.Run("streams stderr separately", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cmd := domain.ExecCommand{Program: "sh", Args: []string{"-c", "echo oops >&2"}}
		code, err := client.Run(context.Background(), cmd, &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "oops\n", stderr.String())
	})
}

func TestClient_LookTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("prefers binDir over PATH", func(t *testing.T) {
		binDir := t.TempDir()
		tool := filepath.Join(binDir, "flake8")
		require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\nexit 0\n"), 0o755))

		path, err := client.LookTool(binDir, "flake8")
		require.NoError(t, err)
		assert.Equal(t, tool, path)
	})

	t.Run("falls back to PATH", func(t *testing.T) {
		path, err := client.LookTool(t.TempDir(), "sh")
		require.NoError(t, err)
		assert.NotEmpty(t, path)
	})

	t.Run("missing tool", func(t *testing.T) {
		_, err := client.LookTool(t.TempDir(), "nonexistent-command-xyz")
		assert.ErrorIs(t, err, domain.ErrToolNotInstalled)
	})

	t.Run("non-executable file in binDir is skipped", func(t *testing.T) {
		binDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(binDir, "nonexistent-command-xyz"), []byte("data"), 0o644))

		_, err := client.LookTool(binDir, "nonexistent-command-xyz")
		assert.ErrorIs(t, err, domain.ErrToolNotInstalled)
	})
}

func TestNewClient(t *testing.T) {
	assert.NotNil(t, NewClient())
}
