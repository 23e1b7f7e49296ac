package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/lintgate/internal/domain"
)

// EnvCheck is one doctor check result.
type EnvCheck struct {
	Name   string `yaml:"name"`
	Detail string `yaml:"detail"`
	OK     bool   `yaml:"ok"`
}

// CheckEnvOutput contains the result of the environment check.
type CheckEnvOutput struct {
	ProjectDir string
	Checks     []EnvCheck
	Passed     bool
}

// CheckEnv is the use case for verifying the gate's environment: project
// directory, virtualenv activation, and tool availability. Unlike the gate
// itself it keeps going after the first failure so every problem is listed.
type CheckEnv struct {
	configLoader domain.ConfigLoader
	activator    domain.EnvActivator
	executor     domain.CommandExecutor
	workDir      string
}

// NewCheckEnv creates a new CheckEnv use case.
func NewCheckEnv(
	configLoader domain.ConfigLoader,
	activator domain.EnvActivator,
	executor domain.CommandExecutor,
	workDir string,
) *CheckEnv {
	return &CheckEnv{
		configLoader: configLoader,
		activator:    activator,
		executor:     executor,
		workDir:      workDir,
	}
}

// Execute runs all environment checks.
func (uc *CheckEnv) Execute(_ context.Context) (*CheckEnvOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	out := &CheckEnvOutput{Passed: true}

	projectDir := cfg.Project.Dir
	if projectDir == "" {
		projectDir = "."
	}
	if !filepath.IsAbs(projectDir) {
		projectDir = filepath.Join(uc.workDir, projectDir)
	}
	out.ProjectDir = projectDir

	if info, statErr := os.Stat(projectDir); statErr != nil || !info.IsDir() {
		out.add("project directory", projectDir+" does not exist", false)
	} else {
		out.add("project directory", projectDir, true)
	}

	env, actErr := uc.activator.Activate(projectDir, cfg.Project.Venv)
	if actErr != nil {
		out.add("virtualenv", actErr.Error(), false)
	} else {
		out.add("virtualenv", env.VenvDir, true)
	}

	tools, err := cfg.ResolveTools(nil)
	if err != nil {
		out.add("tool selection", err.Error(), false)
		return out, nil
	}

	for _, tool := range tools {
		if env == nil {
			out.add("tool "+tool.Name, "not checked (no environment)", false)
			continue
		}
		program, lookErr := uc.executor.LookTool(env.BinDir, tool.Command)
		if lookErr != nil {
			out.add("tool "+tool.Name, lookErr.Error(), false)
			continue
		}
		out.add("tool "+tool.Name, program, true)
	}

	return out, nil
}

func (o *CheckEnvOutput) add(name, detail string, ok bool) {
	o.Checks = append(o.Checks, EnvCheck{Name: name, Detail: detail, OK: ok})
	if !ok {
		o.Passed = false
	}
}
