// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/runoshun/lintgate/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
}

// Now returns the configured time, advancing by Step on each call.
func (m *MockClock) Now() time.Time {
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return now
}

// MockExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockExecutor struct {
	ExitCodes map[string]int // exit code per program base name (default 0)
	Missing   map[string]bool
	Commands  []domain.ExecCommand
	LookedUp  []string
	Output    string
	RunErr    error
}

// NewMockExecutor creates a new MockExecutor with initialized maps.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		ExitCodes: make(map[string]int),
		Missing:   make(map[string]bool),
	}
}

// Run records the command and returns the configured exit code.
func (m *MockExecutor) Run(_ context.Context, cmd domain.ExecCommand, stdout, _ io.Writer) (int, error) {
	if m.RunErr != nil {
		return -1, m.RunErr
	}
	m.Commands = append(m.Commands, cmd)
	if m.Output != "" {
		_, _ = io.WriteString(stdout, m.Output)
	}
	return m.ExitCodes[filepath.Base(cmd.Program)], nil
}

// LookTool resolves the program inside the fake bin directory.
func (m *MockExecutor) LookTool(binDir, program string) (string, error) {
	m.LookedUp = append(m.LookedUp, program)
	if m.Missing[program] {
		return "", fmt.Errorf("%w: %s", domain.ErrToolNotInstalled, program)
	}
	return filepath.Join(binDir, program), nil
}

// MockActivator is a test double for domain.EnvActivator.
type MockActivator struct {
	Env        *domain.ActivatedEnv
	Err        error
	ActivateIn []string // project dirs passed to Activate
}

// Activate returns the configured environment or error.
func (m *MockActivator) Activate(projectDir, _ string) (*domain.ActivatedEnv, error) {
	m.ActivateIn = append(m.ActivateIn, projectDir)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Env != nil {
		return m.Env, nil
	}
	venvDir := filepath.Join(projectDir, "venv")
	return &domain.ActivatedEnv{
		VenvDir: venvDir,
		BinDir:  filepath.Join(venvDir, "bin"),
		Env:     []string{"PATH=" + filepath.Join(venvDir, "bin"), "VIRTUAL_ENV=" + venvDir},
	}, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Cfg *domain.Config
	Err error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Cfg == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Cfg, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) { return m.Load() }

// LoadProject returns the configured config.
func (m *MockConfigLoader) LoadProject() (*domain.Config, error) { return m.Load() }

// LoadWithOptions returns the configured config regardless of options.
func (m *MockConfigLoader) LoadWithOptions(_ domain.LoadConfigOptions) (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	ProjectInfo domain.ConfigInfo
	GlobalInfo  domain.ConfigInfo
	InitPath    string
	InitErr     error
	InitCalled  bool
}

// GetProjectConfigInfo returns the configured project info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo { return m.ProjectInfo }

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// InitProjectConfig records the call and returns the configured path.
func (m *MockConfigManager) InitProjectConfig() (string, error) {
	m.InitCalled = true
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.InitPath, nil
}

// MockChangeDetector is a test double for domain.ChangeDetector.
type MockChangeDetector struct {
	Files []string
	Err   error
}

// ChangedFiles returns the configured file list.
func (m *MockChangeDetector) ChangedFiles(_ string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Files, nil
}

// MockHistoryStore is a test double for domain.HistoryStore.
type MockHistoryStore struct {
	Records   []*domain.RunRecord
	AppendErr error
	ListErr   error
}

// Append stores the record in memory.
func (m *MockHistoryStore) Append(rec *domain.RunRecord) (int, error) {
	if m.AppendErr != nil {
		return 0, m.AppendErr
	}
	rec.ID = len(m.Records) + 1
	m.Records = append(m.Records, rec)
	return rec.ID, nil
}

// List returns the stored records, newest first.
func (m *MockHistoryStore) List(limit int) ([]*domain.RunRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var runs []*domain.RunRecord
	for i := len(m.Records) - 1; i >= 0; i-- {
		runs = append(runs, m.Records[i])
		if limit > 0 && len(runs) == limit {
			break
		}
	}
	return runs, nil
}

// LogEntry is one captured log call.
type LogEntry struct {
	Level    string
	Tool     string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that captures entries.
type MockLogger struct {
	Entries []LogEntry
	Closed  bool
}

func (m *MockLogger) record(level, tool, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Tool: tool, Category: category, Msg: msg})
}

// Debug captures a debug entry.
func (m *MockLogger) Debug(tool, category, msg string) { m.record("debug", tool, category, msg) }

// Info captures an info entry.
func (m *MockLogger) Info(tool, category, msg string) { m.record("info", tool, category, msg) }

// Warn captures a warn entry.
func (m *MockLogger) Warn(tool, category, msg string) { m.record("warn", tool, category, msg) }

// Error captures an error entry.
func (m *MockLogger) Error(tool, category, msg string) { m.record("error", tool, category, msg) }

// Close marks the logger closed.
func (m *MockLogger) Close() error {
	m.Closed = true
	return nil
}
