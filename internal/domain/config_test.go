package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, ".", cfg.Project.Dir)
	assert.Equal(t, "venv", cfg.Project.Venv)
	assert.Equal(t, []string{"flake8"}, cfg.Lint.Tools)
	assert.False(t, cfg.Lint.FailFast)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotNil(t, cfg.Tools)
}

func TestConfigTemplate_IsValidTOML(t *testing.T) {
	var raw map[string]any
	err := toml.Unmarshal([]byte(ConfigTemplate()), &raw)
	require.NoError(t, err)

	assert.Contains(t, raw, "project")
	assert.Contains(t, raw, "lint")
	assert.Contains(t, raw, "log")
}

func TestToolResultPassed(t *testing.T) {
	assert.True(t, ToolResult{ExitCode: 0}.Passed())
	assert.False(t, ToolResult{ExitCode: 1}.Passed())
	assert.True(t, ToolResult{ExitCode: 0, Skipped: true}.Passed())
}
