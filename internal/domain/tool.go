package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Tool describes a static-analysis tool runnable inside the project environment.
// Fields are ordered to minimize memory padding.
type Tool struct {
	Name       string
	Command    string   // program name, resolved against the activated environment
	Args       string   // default arguments, space separated
	Extensions []string // file extensions the tool understands (used by --changed)
	Builtin    bool
}

// ArgList splits the space-separated Args string into an argument slice.
func (t Tool) ArgList() []string {
	return strings.Fields(t.Args)
}

// Understands reports whether the tool claims the given file path.
func (t Tool) Understands(path string) bool {
	for _, ext := range t.Extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// builtinTools are the tool definitions shipped with lintgate.
// Config entries under [tools.<name>] override fields individually.
var builtinTools = map[string]Tool{
	"flake8": {
		Name:       "flake8",
		Command:    "flake8",
		Args:       ".",
		Extensions: []string{".py"},
		Builtin:    true,
	},
	"ruff": {
		Name:       "ruff",
		Command:    "ruff",
		Args:       "check .",
		Extensions: []string{".py"},
		Builtin:    true,
	},
	"pylint": {
		Name:       "pylint",
		Command:    "pylint",
		Args:       ".",
		Extensions: []string{".py"},
		Builtin:    true,
	},
	"mypy": {
		Name:       "mypy",
		Command:    "mypy",
		Args:       ".",
		Extensions: []string{".py"},
		Builtin:    true,
	},
}

// BuiltinToolNames returns the names of all built-in tools, sorted.
func BuiltinToolNames() []string {
	names := make([]string, 0, len(builtinTools))
	for name := range builtinTools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTool returns the effective definition for a tool name:
// the built-in definition (if any) overlaid with the [tools.<name>]
// config section, field by field.
func (c *Config) ResolveTool(name string) (Tool, error) {
	tool, builtin := builtinTools[name]
	tc, configured := c.Tools[name]
	if !builtin && !configured {
		return Tool{}, fmt.Errorf("%w: %s", ErrToolNotDefined, name)
	}
	if !builtin {
		tool = Tool{Name: name}
	}
	if tc.Command != "" {
		tool.Command = tc.Command
	}
	if tc.Args != "" {
		tool.Args = tc.Args
	}
	if len(tc.Extensions) > 0 {
		tool.Extensions = tc.Extensions
	}
	if tool.Command == "" {
		tool.Command = name
	}
	return tool, nil
}

// ResolveTools resolves a list of tool names. An empty list falls back to
// the configured [lint].tools selection.
func (c *Config) ResolveTools(names []string) ([]Tool, error) {
	if len(names) == 0 {
		names = c.Lint.Tools
	}
	if len(names) == 0 {
		return nil, ErrNoTools
	}
	tools := make([]Tool, 0, len(names))
	for _, name := range names {
		tool, err := c.ResolveTool(name)
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
