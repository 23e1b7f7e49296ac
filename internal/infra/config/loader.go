// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/lintgate/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory lintgate was invoked from
	globalConfDir string // Path to global config directory (e.g., ~/.config/lintgate)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global == nil && project == nil {
		return base, nil
	}

	// Merge: default <- global <- project (later takes precedence)
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	return base, nil
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreProject {
		project, err = l.LoadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.workDir, domain.ProjectConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{
		Tools: make(map[string]domain.ToolConfig),
	}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "project":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "dir":
						if s, ok := v.(string); ok {
							res.Project.Dir = s
						}
					case "venv":
						if s, ok := v.(string); ok {
							res.Project.Venv = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [project]: %s", k))
					}
				}
			}
		case "lint":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "tools":
						res.Lint.Tools = toStringSlice(v)
					case "fail_fast":
						if b, ok := v.(bool); ok {
							res.Lint.FailFast = b
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [lint]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "tools":
			if m, ok := value.(map[string]any); ok {
				for name, v := range m {
					subMap, ok := v.(map[string]any)
					if !ok {
						warnings = append(warnings, fmt.Sprintf("unknown key in [tools]: %s", name))
						continue
					}
					var tc domain.ToolConfig
					for k, tv := range subMap {
						switch k {
						case "command":
							if s, ok := tv.(string); ok {
								tc.Command = s
							}
						case "args":
							if s, ok := tv.(string); ok {
								tc.Args = s
							}
						case "extensions":
							tc.Extensions = toStringSlice(tv)
						default:
							warnings = append(warnings, fmt.Sprintf("unknown key in [tools.%s]: %s", name, k))
						}
					}
					res.Tools[name] = tc
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// toStringSlice converts a TOML array value to a string slice.
func toStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Project:  base.Project,
		Lint:     base.Lint,
		Log:      base.Log,
		Tools:    make(map[string]domain.ToolConfig),
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	for name, tc := range base.Tools {
		result.Tools[name] = tc
	}

	if override.Project.Dir != "" {
		result.Project.Dir = override.Project.Dir
	}
	if override.Project.Venv != "" {
		result.Project.Venv = override.Project.Venv
	}
	if len(override.Lint.Tools) > 0 {
		result.Lint.Tools = override.Lint.Tools
	}
	if override.Lint.FailFast {
		result.Lint.FailFast = override.Lint.FailFast
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	// Merge tools: override individual fields, not the entire definition
	for name, overrideTool := range override.Tools {
		baseTool := result.Tools[name]
		if overrideTool.Command != "" {
			baseTool.Command = overrideTool.Command
		}
		if overrideTool.Args != "" {
			baseTool.Args = overrideTool.Args
		}
		if len(overrideTool.Extensions) > 0 {
			baseTool.Extensions = overrideTool.Extensions
		}
		result.Tools[name] = baseTool
	}

	return result
}
