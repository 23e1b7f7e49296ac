package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTool_Builtin(t *testing.T) {
	cfg := NewDefaultConfig()

	tool, err := cfg.ResolveTool("flake8")
	require.NoError(t, err)
	assert.Equal(t, "flake8", tool.Command)
	assert.Equal(t, ".", tool.Args)
	assert.True(t, tool.Builtin)
	assert.Contains(t, tool.Extensions, ".py")
}

func TestResolveTool_ConfigOverridesBuiltinFieldwise(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Tools["flake8"] = ToolConfig{Args: "--max-line-length 100 ."}

	tool, err := cfg.ResolveTool("flake8")
	require.NoError(t, err)
	assert.Equal(t, "flake8", tool.Command, "command should keep the builtin value")
	assert.Equal(t, "--max-line-length 100 .", tool.Args)
	assert.Equal(t, []string{"--max-line-length", "100", "."}, tool.ArgList())
}

func TestResolveTool_CustomTool(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Tools["bandit"] = ToolConfig{Args: "-r .", Extensions: []string{".py"}}

	tool, err := cfg.ResolveTool("bandit")
	require.NoError(t, err)
	assert.Equal(t, "bandit", tool.Command, "command should default to the tool name")
	assert.Equal(t, "-r .", tool.Args)
	assert.False(t, tool.Builtin)
}

func TestResolveTool_NotDefined(t *testing.T) {
	cfg := NewDefaultConfig()

	_, err := cfg.ResolveTool("nosuchtool")
	assert.ErrorIs(t, err, ErrToolNotDefined)
}

func TestResolveTools_DefaultsToConfiguredSelection(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Lint.Tools = []string{"flake8", "mypy"}

	tools, err := cfg.ResolveTools(nil)
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "flake8", tools[0].Name)
	assert.Equal(t, "mypy", tools[1].Name)
}

func TestResolveTools_EmptySelection(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Lint.Tools = nil

	_, err := cfg.ResolveTools(nil)
	assert.ErrorIs(t, err, ErrNoTools)
}

func TestToolUnderstands(t *testing.T) {
	tool := Tool{Extensions: []string{".py"}}

	assert.True(t, tool.Understands("src/api/main.py"))
	assert.False(t, tool.Understands("README.md"))
}

func TestBuiltinToolNames_Sorted(t *testing.T) {
	names := BuiltinToolNames()

	assert.Equal(t, []string{"flake8", "mypy", "pylint", "ruff"}, names)
}
