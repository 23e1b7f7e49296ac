package cli

import (
	"fmt"
	"io"

	"github.com/runoshun/lintgate/internal/app"
	"github.com/runoshun/lintgate/internal/domain"
	"github.com/runoshun/lintgate/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// runOptions holds the flags shared by the root command and `run`.
type runOptions struct {
	tools    []string
	format   string
	changed  bool
	failFast bool
}

// addRunFlags registers the gate flags on a flag set.
func addRunFlags(flags *pflag.FlagSet, opts *runOptions) {
	flags.StringArrayVar(&opts.tools, "tool", nil, "Run only the named tool (repeatable)")
	flags.BoolVar(&opts.changed, "changed", false, "Lint only files changed in the enclosing git worktree")
	flags.BoolVar(&opts.failFast, "fail-fast", false, "Stop at the first failing tool")
	flags.StringVar(&opts.format, "format", "text", "Summary format: text or yaml")
}

// newRunCommand creates the run command for running the gate.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the lint gate",
		Long: `Run the configured static-analysis tools inside the project's
pre-built virtualenv.

The gate exits 0 when every tool passes and 1 otherwise, regardless of
the tools' own exit codes. Tool output passes through untouched.

Examples:
  # Run the configured gate
  lintgate run

  # Run a single tool
  lintgate run --tool flake8

  # Lint only changed files, stopping at the first failure
  lintgate run --changed --fail-fast`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGate(cmd, c, opts)
		},
	}

	addRunFlags(cmd.Flags(), &opts)
	return cmd
}

// runGate executes the gate use case and prints the summary.
func runGate(cmd *cobra.Command, c *app.Container, opts runOptions) error {
	uc := c.RunLintUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
	out, err := uc.Execute(cmd.Context(), usecase.RunLintInput{
		Tools:    opts.tools,
		Changed:  opts.changed,
		FailFast: opts.failFast,
	})
	if err != nil {
		return err
	}

	if err := printRunSummary(cmd.OutOrStdout(), out, opts.format); err != nil {
		return err
	}

	if !out.Passed {
		return domain.ErrLintFindings
	}
	return nil
}

// runReport is the machine-readable run summary.
type runReport struct {
	Project string       `yaml:"project"`
	Passed  bool         `yaml:"passed"`
	Tools   []toolReport `yaml:"tools"`
}

type toolReport struct {
	Name     string `yaml:"name"`
	ExitCode int    `yaml:"exit_code"`
	Skipped  bool   `yaml:"skipped,omitempty"`
	Duration string `yaml:"duration"`
}

// printRunSummary writes the per-tool summary in the requested format.
func printRunSummary(w io.Writer, out *usecase.RunLintOutput, format string) error {
	switch format {
	case "yaml":
		report := runReport{
			Project: out.ProjectDir,
			Passed:  out.Passed,
		}
		for _, r := range out.Results {
			report.Tools = append(report.Tools, toolReport{
				Name:     r.Tool,
				ExitCode: r.ExitCode,
				Skipped:  r.Skipped,
				Duration: r.Duration.String(),
			})
		}
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshal summary: %w", err)
		}
		_, _ = w.Write(data)
		return nil
	case "text", "":
		for _, r := range out.Results {
			switch {
			case r.Skipped:
				_, _ = fmt.Fprintf(w, "%s: skipped (no changed files)\n", r.Tool)
			case r.ExitCode == 0:
				_, _ = fmt.Fprintf(w, "%s: ok (%s)\n", r.Tool, r.Duration)
			default:
				_, _ = fmt.Fprintf(w, "%s: failed (exit %d, %s)\n", r.Tool, r.ExitCode, r.Duration)
			}
		}
		if out.Passed {
			_, _ = fmt.Fprintln(w, "lint passed")
		} else {
			_, _ = fmt.Fprintln(w, "lint failed")
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
