package domain

import (
	"context"
	"io"
	"time"
)

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Run executes the command with the given output writers and returns
	// the command's exit code. A non-nil error means the command could not
	// be started or waited on, not that it exited non-zero.
	Run(ctx context.Context, cmd ExecCommand, stdout, stderr io.Writer) (int, error)

	// LookTool resolves a program name, preferring binDir over the
	// inherited PATH.
	LookTool(binDir, program string) (string, error)
}

// EnvActivator prepares the process environment of a pre-built virtualenv.
type EnvActivator interface {
	// Activate validates the environment under projectDir and returns the
	// activated process environment.
	Activate(projectDir, venvPath string) (*ActivatedEnv, error)
}

// ActivatedEnv is a process environment with a virtualenv switched on.
type ActivatedEnv struct {
	VenvDir string   // absolute path of the virtualenv
	BinDir  string   // its executable directory
	Env     []string // full environment for child processes
}

// ChangeDetector lists files modified in the enclosing git worktree.
type ChangeDetector interface {
	// ChangedFiles returns absolute paths of files with staged, unstaged
	// or untracked changes. Deleted files are not included.
	ChangedFiles(dir string) ([]string, error)
}

// HistoryStore persists gate run records.
type HistoryStore interface {
	// Append stores a record and returns its assigned ID.
	Append(rec *RunRecord) (int, error)

	// List returns up to limit records, newest first. limit <= 0 means all.
	List(limit int) ([]*RunRecord, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (project over global over defaults).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadProject returns only the project configuration.
	LoadProject() (*Config, error)

	// LoadWithOptions returns the merged configuration with options to
	// ignore sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which config sources to ignore.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig creates the project config file from the template.
	InitProjectConfig() (string, error)
}

// ConfigInfo describes one configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Logger is the file logger used across the gate. The tool argument selects
// the per-tool log file; an empty tool logs only to the main log.
type Logger interface {
	Debug(tool, category, msg string)
	Info(tool, category, msg string)
	Warn(tool, category, msg string)
	Error(tool, category, msg string)
	Close() error
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }
