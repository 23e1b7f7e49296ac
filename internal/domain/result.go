package domain

import "time"

// ToolResult is the outcome of one tool invocation.
// Fields are ordered to minimize memory padding.
type ToolResult struct {
	Tool     string        `json:"tool"`
	Duration time.Duration `json:"duration"`
	ExitCode int           `json:"exitCode"`
	Skipped  bool          `json:"skipped,omitempty"`
}

// Passed reports whether the tool counts as passing. Skipped tools pass.
func (r ToolResult) Passed() bool {
	return r.Skipped || r.ExitCode == 0
}

// RunRecord is one persisted gate run.
type RunRecord struct {
	StartedAt  time.Time    `json:"startedAt"`
	ProjectDir string       `json:"projectDir"`
	Results    []ToolResult `json:"results"`
	ID         int          `json:"id"`
	Changed    bool         `json:"changed,omitempty"`
	Passed     bool         `json:"passed"`
}
