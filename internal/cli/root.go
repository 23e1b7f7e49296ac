// Package cli provides the command-line interface for lintgate.
package cli

import (
	"fmt"

	"github.com/runoshun/lintgate/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupGate  = "gate"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for lintgate.
// It receives the container for dependency injection and version for display.
// Running the root command with no arguments runs the gate itself, so a CI
// step can invoke lintgate directly and use its exit code as the signal.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var opts runOptions

	root := &cobra.Command{
		Use:   "lintgate",
		Short: "CI lint gate for Python backend projects",
		Long: `lintgate runs a project's static-analysis tools inside its pre-built
virtualenv and exits 0 only when every tool passes.

The virtualenv is activated, never created: build the environment before
running the gate. Tool diagnostics pass through to the standard streams
untouched; lintgate adds one summary line per tool and collapses every
failure (findings, missing environment, missing tool) to exit code 1.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Ignore error (e.g. no config yet)
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Default: run the gate with configured settings
			return runGate(cmd, c, opts)
		},
	}

	addRunFlags(root.Flags(), &opts)

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupGate, Title: "Gate Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupGate

	doctorCmd := newDoctorCommand(c)
	doctorCmd.GroupID = groupGate

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupGate

	toolsCmd := newToolsCommand(c)
	toolsCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		doctorCmd,
		historyCmd,
		toolsCmd,
		configCmd,
	)

	return root
}
