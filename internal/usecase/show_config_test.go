package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/lintgate/internal/domain"
	"github.com/runoshun/lintgate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		ProjectInfo: domain.ConfigInfo{Path: "/proj/.lintgate.toml", Exists: true, Content: "[lint]\n"},
		GlobalInfo:  domain.ConfigInfo{Path: "/home/u/.config/lintgate/config.toml", Exists: false},
	}
	cfg := domain.NewDefaultConfig()
	cfg.Project.Dir = "backend"
	uc := NewShowConfig(manager, &testutil.MockConfigLoader{Cfg: cfg})

	out, err := uc.Execute(context.Background(), ShowConfigInput{})
	require.NoError(t, err)
	assert.True(t, out.ProjectConfig.Exists)
	assert.False(t, out.GlobalConfig.Exists)
	assert.Equal(t, "backend", out.EffectiveConfig.Project.Dir)
}

func TestInitConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{InitPath: "/proj/.lintgate.toml"}
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, manager.InitCalled)
	assert.Equal(t, "/proj/.lintgate.toml", out.Path)
}

func TestInitConfig_Execute_AlreadyExists(t *testing.T) {
	manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}
	uc := NewInitConfig(manager)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
