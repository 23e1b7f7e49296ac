package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/lintgate/internal/domain"
	"github.com/runoshun/lintgate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEnv_Execute_AllChecksPass(t *testing.T) {
	workDir := t.TempDir()
	loader := &testutil.MockConfigLoader{Cfg: domain.NewDefaultConfig()}
	uc := NewCheckEnv(loader, &testutil.MockActivator{}, testutil.NewMockExecutor(), workDir)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, out.Passed)
	require.Len(t, out.Checks, 3) // project dir, venv, flake8
	for _, check := range out.Checks {
		assert.True(t, check.OK, check.Name)
	}
}

func TestCheckEnv_Execute_MissingProjectDir(t *testing.T) {
	workDir := t.TempDir()
	cfg := domain.NewDefaultConfig()
	cfg.Project.Dir = "missing"
	loader := &testutil.MockConfigLoader{Cfg: cfg}
	uc := NewCheckEnv(loader, &testutil.MockActivator{}, testutil.NewMockExecutor(), workDir)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Passed)
	assert.False(t, out.Checks[0].OK)
}

func TestCheckEnv_Execute_VenvFailureStillChecksRemainingItems(t *testing.T) {
	workDir := t.TempDir()
	loader := &testutil.MockConfigLoader{Cfg: domain.NewDefaultConfig()}
	activator := &testutil.MockActivator{Err: domain.ErrVenvNotFound}
	uc := NewCheckEnv(loader, activator, testutil.NewMockExecutor(), workDir)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Passed)
	require.Len(t, out.Checks, 3)
	assert.True(t, out.Checks[0].OK, "project dir check still runs")
	assert.False(t, out.Checks[1].OK)
	assert.False(t, out.Checks[2].OK, "tool cannot be verified without an environment")
}

func TestCheckEnv_Execute_MissingTool(t *testing.T) {
	workDir := t.TempDir()
	cfg := domain.NewDefaultConfig()
	cfg.Lint.Tools = []string{"flake8", "mypy"}
	executor := testutil.NewMockExecutor()
	executor.Missing["mypy"] = true
	uc := NewCheckEnv(&testutil.MockConfigLoader{Cfg: cfg}, &testutil.MockActivator{}, executor, workDir)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Passed)
	require.Len(t, out.Checks, 4)
	assert.True(t, out.Checks[2].OK, "flake8 resolves")
	assert.False(t, out.Checks[3].OK, "mypy missing")
}

func TestCheckEnv_Execute_NoToolsConfigured(t *testing.T) {
	workDir := t.TempDir()
	cfg := domain.NewDefaultConfig()
	cfg.Lint.Tools = nil
	uc := NewCheckEnv(&testutil.MockConfigLoader{Cfg: cfg}, &testutil.MockActivator{}, testutil.NewMockExecutor(), workDir)

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, out.Passed)
	last := out.Checks[len(out.Checks)-1]
	assert.Equal(t, "tool selection", last.Name)
	assert.False(t, last.OK)
}
