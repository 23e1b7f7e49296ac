package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/lintgate/internal/domain"
)

func TestConfigShowCommand_ListsSourcesAndEffectiveConfig(t *testing.T) {
	tc := newTestContainer(t)
	tc.manager.GlobalInfo = domain.ConfigInfo{Path: "/home/ci/.config/lintgate/config.toml"}
	tc.manager.ProjectInfo = domain.ConfigInfo{Path: "/work/.lintgate.toml", Exists: true}

	stdout, _, err := tc.execute("config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[Loaded from]")
	assert.Contains(t, stdout, "- /home/ci/.config/lintgate/config.toml (not found)")
	assert.Contains(t, stdout, "- /work/.lintgate.toml\n")
	assert.Contains(t, stdout, "[Effective Config]")
	assert.Contains(t, stdout, "dir = '.'")
	assert.Contains(t, stdout, "tools = ['flake8']")
	assert.Contains(t, stdout, "level = 'info'")
}

func TestConfigShowCommand_IgnoreFlagsHideSources(t *testing.T) {
	tc := newTestContainer(t)
	tc.manager.GlobalInfo = domain.ConfigInfo{Path: "/home/ci/.config/lintgate/config.toml"}
	tc.manager.ProjectInfo = domain.ConfigInfo{Path: "/work/.lintgate.toml"}

	stdout, _, err := tc.execute("config", "show", "--ignore-global")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "/home/ci/.config/lintgate/config.toml")
	assert.Contains(t, stdout, "/work/.lintgate.toml")
}

func TestConfigShowCommand_IncludesToolOverrides(t *testing.T) {
	tc := newTestContainer(t)
	cfg := domain.NewDefaultConfig()
	cfg.Tools["flake8"] = domain.ToolConfig{Args: "--max-line-length 100 ."}
	tc.loader.Cfg = cfg

	stdout, _, err := tc.execute("config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "[tools.flake8]")
	assert.Contains(t, stdout, "args = '--max-line-length 100 .'")
}

func TestConfigInitCommand_PrintsCreatedPath(t *testing.T) {
	tc := newTestContainer(t)

	stdout, _, err := tc.execute("config", "init")

	require.NoError(t, err)
	assert.True(t, tc.manager.InitCalled)
	assert.Contains(t, stdout, "Created config file: ")
	assert.Contains(t, stdout, ".lintgate.toml")
}

func TestConfigInitCommand_AlreadyExists(t *testing.T) {
	tc := newTestContainer(t)
	tc.manager.InitErr = domain.ErrConfigExists

	_, _, err := tc.execute("config", "init")

	require.ErrorIs(t, err, domain.ErrConfigExists)
}
