package domain

// Config is the merged lintgate configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Tools    map[string]ToolConfig
	Warnings []string
	Project  ProjectConfig
	Lint     LintConfig
	Log      LogConfig
}

// ProjectConfig locates the project and its dependency environment.
type ProjectConfig struct {
	Dir  string // project directory, relative to the invocation directory
	Venv string // virtualenv path, relative to the project directory
}

// LintConfig selects the tools to run and how.
type LintConfig struct {
	Tools    []string // tools to run, in order
	FailFast bool     // stop at the first failing tool
}

// LogConfig controls file logging.
type LogConfig struct {
	Level string // debug|info|warn|error
}

// ToolConfig overrides (or defines) a tool. Empty fields keep the
// built-in definition.
type ToolConfig struct {
	Command    string
	Args       string
	Extensions []string
}

// DefaultVenvDir is the fixed relative path of the pre-built environment.
const DefaultVenvDir = "venv"

// NewDefaultConfig returns the configuration used when no config file exists:
// lint the current directory's project with flake8 inside ./venv.
func NewDefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{
			Dir:  ".",
			Venv: DefaultVenvDir,
		},
		Lint: LintConfig{
			Tools: []string{"flake8"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Tools: make(map[string]ToolConfig),
	}
}

// ConfigTemplate is the commented template written by `lintgate config init`.
func ConfigTemplate() string {
	return `# lintgate configuration
# Merged on top of the global config ($XDG_CONFIG_HOME/lintgate/config.toml).

[project]
# Project directory, relative to where lintgate is invoked.
dir = "."
# Virtualenv path, relative to the project directory. The environment must be
# pre-built; lintgate activates it but never creates or populates it.
venv = "venv"

[lint]
# Tools to run, in order. Built-ins: flake8, ruff, pylint, mypy.
tools = ["flake8"]
# Stop at the first failing tool.
# fail_fast = true

[log]
# File log level: debug, info, warn, error.
level = "info"

# Override a built-in tool, or define a custom one:
# [tools.flake8]
# args = "--max-line-length 100 ."
#
# [tools.bandit]
# command = "bandit"
# args = "-r ."
# extensions = [".py"]
`
}
