package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/runoshun/lintgate/internal/domain"
)

// RunLintInput contains the parameters for running the gate.
// Fields are ordered to minimize memory padding.
type RunLintInput struct {
	Tools    []string // tool selection override; empty uses the configured selection
	Changed  bool     // lint only files changed in the enclosing git worktree
	FailFast bool     // stop at the first failing tool
}

// RunLintOutput contains the result of a gate run.
type RunLintOutput struct {
	ProjectDir string
	Results    []domain.ToolResult
	Passed     bool
}

// RunLint is the use case for running the lint gate: activate the project's
// pre-built environment, run each selected tool inside it, and report
// whether everything passed.
type RunLint struct {
	configLoader domain.ConfigLoader
	executor     domain.CommandExecutor
	activator    domain.EnvActivator
	changes      domain.ChangeDetector
	history      domain.HistoryStore
	logger       domain.Logger
	clock        domain.Clock
	stdout       io.Writer
	stderr       io.Writer
	workDir      string
}

// NewRunLint creates a new RunLint use case.
// stdout and stderr receive the tools' own streams untouched.
func NewRunLint(
	configLoader domain.ConfigLoader,
	executor domain.CommandExecutor,
	activator domain.EnvActivator,
	changes domain.ChangeDetector,
	history domain.HistoryStore,
	logger domain.Logger,
	clock domain.Clock,
	workDir string,
	stdout io.Writer,
	stderr io.Writer,
) *RunLint {
	return &RunLint{
		configLoader: configLoader,
		executor:     executor,
		activator:    activator,
		changes:      changes,
		history:      history,
		logger:       logger,
		clock:        clock,
		workDir:      workDir,
		stdout:       stdout,
		stderr:       stderr,
	}
}

// Execute runs the gate by:
// 1. Resolving the project directory
// 2. Activating the pre-built virtualenv
// 3. Running each selected tool inside it
// 4. Recording the run in the history store
// A tool exiting non-zero does not produce an error; it is reported through
// Output.Passed so the CLI can map every failure to the same exit code.
func (uc *RunLint) Execute(ctx context.Context, in RunLintInput) (*RunLintOutput, error) {
	startedAt := uc.clock.Now()

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	projectDir, err := uc.resolveProjectDir(cfg)
	if err != nil {
		return nil, err
	}

	env, err := uc.activator.Activate(projectDir, cfg.Project.Venv)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("", "env", "activated "+env.VenvDir)

	tools, err := cfg.ResolveTools(in.Tools)
	if err != nil {
		return nil, err
	}

	var changedFiles []string
	if in.Changed {
		changedFiles, err = uc.changedFilesUnder(projectDir)
		if err != nil {
			return nil, err
		}
	}

	failFast := in.FailFast || cfg.Lint.FailFast
	out := &RunLintOutput{ProjectDir: projectDir, Passed: true}

	for _, tool := range tools {
		args := tool.ArgList()
		if in.Changed {
			targets := filterTargets(changedFiles, tool)
			if len(targets) == 0 {
				uc.logger.Info(tool.Name, "run", "no changed files, skipped")
				out.Results = append(out.Results, domain.ToolResult{Tool: tool.Name, Skipped: true})
				continue
			}
			args = append(stripDirTarget(args), targets...)
		}

		program, err := uc.executor.LookTool(env.BinDir, tool.Command)
		if err != nil {
			return nil, err
		}

		uc.logger.Info(tool.Name, "run", program+" "+strings.Join(args, " "))
		start := uc.clock.Now()
		code, err := uc.executor.Run(ctx, domain.ExecCommand{
			Program: program,
			Dir:     projectDir,
			Args:    args,
			Env:     env.Env,
		}, uc.stdout, uc.stderr)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", tool.Name, err)
		}

		result := domain.ToolResult{
			Tool:     tool.Name,
			ExitCode: code,
			Duration: uc.clock.Now().Sub(start),
		}
		out.Results = append(out.Results, result)

		if code == 0 {
			uc.logger.Info(tool.Name, "result", "exit 0")
			continue
		}
		uc.logger.Warn(tool.Name, "result", fmt.Sprintf("exit %d", code))
		out.Passed = false
		if failFast {
			break
		}
	}

	uc.recordRun(startedAt, projectDir, in.Changed, out)
	return out, nil
}

// resolveProjectDir resolves and validates the configured project directory.
func (uc *RunLint) resolveProjectDir(cfg *domain.Config) (string, error) {
	dir := cfg.Project.Dir
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(uc.workDir, dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrProjectNotFound, dir)
	}
	return dir, nil
}

// changedFilesUnder returns changed files inside the project directory.
func (uc *RunLint) changedFilesUnder(projectDir string) ([]string, error) {
	files, err := uc.changes.ChangedFiles(projectDir)
	if err != nil {
		return nil, err
	}
	prefix := projectDir + string(os.PathSeparator)
	var under []string
	for _, f := range files {
		if strings.HasPrefix(f, prefix) {
			under = append(under, f)
		}
	}
	return under, nil
}

// filterTargets keeps the files a tool understands, relative to the project dir.
func filterTargets(files []string, tool domain.Tool) []string {
	var targets []string
	for _, f := range files {
		if tool.Understands(f) {
			targets = append(targets, f)
		}
	}
	return targets
}

// stripDirTarget removes the trailing "." directory target from a tool's
// default arguments so explicit file targets can replace it.
func stripDirTarget(args []string) []string {
	if len(args) > 0 && args[len(args)-1] == "." {
		return args[:len(args)-1]
	}
	return args
}

// recordRun appends the run to the history store. History failures never
// change the gate outcome; they are logged and ignored.
func (uc *RunLint) recordRun(startedAt time.Time, projectDir string, changed bool, out *RunLintOutput) {
	rec := &domain.RunRecord{
		StartedAt:  startedAt,
		ProjectDir: projectDir,
		Changed:    changed,
		Passed:     out.Passed,
		Results:    out.Results,
	}
	if _, err := uc.history.Append(rec); err != nil {
		uc.logger.Error("", "history", "record run: "+err.Error())
	}
}
