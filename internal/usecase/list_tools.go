package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/runoshun/lintgate/internal/domain"
)

// ToolInfo describes one available tool.
// Fields are ordered to minimize memory padding.
type ToolInfo struct {
	Name     string
	Command  string
	Args     string
	Builtin  bool
	Selected bool // part of the configured [lint].tools selection
}

// ListToolsOutput contains the available tools.
type ListToolsOutput struct {
	Tools []ToolInfo
}

// ListTools is the use case for listing built-in and configured tools.
type ListTools struct {
	configLoader domain.ConfigLoader
}

// NewListTools creates a new ListTools use case.
func NewListTools(configLoader domain.ConfigLoader) *ListTools {
	return &ListTools{configLoader: configLoader}
}

// Execute returns every known tool with its effective definition.
func (uc *ListTools) Execute(_ context.Context) (*ListToolsOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, name := range domain.BuiltinToolNames() {
		seen[name] = true
		names = append(names, name)
	}
	for name := range cfg.Tools {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	selected := make(map[string]bool, len(cfg.Lint.Tools))
	for _, name := range cfg.Lint.Tools {
		selected[name] = true
	}

	out := &ListToolsOutput{}
	for _, name := range names {
		tool, err := cfg.ResolveTool(name)
		if err != nil {
			return nil, err
		}
		out.Tools = append(out.Tools, ToolInfo{
			Name:     tool.Name,
			Command:  tool.Command,
			Args:     tool.Args,
			Builtin:  tool.Builtin,
			Selected: selected[name],
		})
	}
	return out, nil
}
