// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"path/filepath"

	"github.com/runoshun/lintgate/internal/domain"
	"github.com/runoshun/lintgate/internal/infra/config"
	"github.com/runoshun/lintgate/internal/infra/executor"
	"github.com/runoshun/lintgate/internal/infra/git"
	"github.com/runoshun/lintgate/internal/infra/jsonstore"
	"github.com/runoshun/lintgate/internal/infra/logging"
	"github.com/runoshun/lintgate/internal/infra/venv"
	"github.com/runoshun/lintgate/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir    string // Directory lintgate was invoked from
	ProjectDir string // Resolved project directory
	GateDir    string // Path to <project>/.lintgate
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	Activator     domain.EnvActivator
	Changes       domain.ChangeDetector
	History       domain.HistoryStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger
	Clock         domain.Clock

	// Configuration
	Config Config
}

// New creates a new Container rooted at the given invocation directory.
// Config load failures fall back to defaults so commands like help and
// config init still work.
func New(workDir string) *Container {
	configLoader := config.NewLoader(workDir)
	appConfig, _ := configLoader.Load() // ignore error, use defaults
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}

	projectDir := appConfig.Project.Dir
	if projectDir == "" {
		projectDir = "."
	}
	if !filepath.IsAbs(projectDir) {
		projectDir = filepath.Join(workDir, projectDir)
	}
	gateDir := domain.GateDir(projectDir)

	cfg := Config{
		WorkDir:    workDir,
		ProjectDir: projectDir,
		GateDir:    gateDir,
	}

	logger := logging.New(gateDir, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Executor:      executor.NewClient(),
		Activator:     venv.NewClient(),
		Changes:       git.NewClient(),
		History:       jsonstore.New(domain.HistoryPath(gateDir)),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		Logger:        logger,
		Clock:         domain.RealClock{},
		Config:        cfg,
	}
}

// UseCase factory methods

// RunLintUseCase returns a new RunLint use case.
// stdout and stderr receive the lint tools' streams.
func (c *Container) RunLintUseCase(stdout, stderr io.Writer) *usecase.RunLint {
	return usecase.NewRunLint(
		c.ConfigLoader,
		c.Executor,
		c.Activator,
		c.Changes,
		c.History,
		c.Logger,
		c.Clock,
		c.Config.WorkDir,
		stdout,
		stderr,
	)
}

// CheckEnvUseCase returns a new CheckEnv use case.
func (c *Container) CheckEnvUseCase() *usecase.CheckEnv {
	return usecase.NewCheckEnv(c.ConfigLoader, c.Activator, c.Executor, c.Config.WorkDir)
}

// ListToolsUseCase returns a new ListTools use case.
func (c *Container) ListToolsUseCase() *usecase.ListTools {
	return usecase.NewListTools(c.ConfigLoader)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.History)
}
