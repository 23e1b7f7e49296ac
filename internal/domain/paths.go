package domain

import "path/filepath"

// Config file names.
const (
	// ConfigFileName is the file name of the global config.
	ConfigFileName = "config.toml"
	// ProjectConfigFileName is the per-project config, found in the
	// invocation directory.
	ProjectConfigFileName = ".lintgate.toml"
)

// gateDirName is the per-project state directory.
const gateDirName = ".lintgate"

// GateDir returns the lintgate state directory for a project.
func GateDir(projectDir string) string {
	return filepath.Join(projectDir, gateDirName)
}

// HistoryPath returns the path of the run history store.
func HistoryPath(gateDir string) string {
	return filepath.Join(gateDir, "history.json")
}

// GlobalLogPath returns the path of the main log file.
func GlobalLogPath(gateDir string) string {
	return filepath.Join(gateDir, "logs", "lintgate.log")
}

// ToolLogPath returns the path of a per-tool log file.
func ToolLogPath(gateDir, tool string) string {
	return filepath.Join(gateDir, "logs", "tool-"+tool+".log")
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, "lintgate")
}

// VenvBinDir returns the executable directory of a virtualenv.
func VenvBinDir(venvDir string) string {
	return filepath.Join(venvDir, "bin")
}
