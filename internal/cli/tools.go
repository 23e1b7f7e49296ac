package cli

import (
	"fmt"

	"github.com/runoshun/lintgate/internal/app"
	"github.com/spf13/cobra"
)

// newToolsCommand creates the tools command for listing available tools.
func newToolsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List available lint tools",
		Long: `List built-in and configured lint tools with their effective
commands. Tools marked with * are part of the configured selection
and run as part of the gate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListToolsUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, tool := range out.Tools {
				marker := " "
				if tool.Selected {
					marker = "*"
				}
				origin := "builtin"
				if !tool.Builtin {
					origin = "config"
				}
				_, _ = fmt.Fprintf(w, "%s %-10s %-8s %s %s\n", marker, tool.Name, origin, tool.Command, tool.Args)
			}
			return nil
		},
	}

	return cmd
}
