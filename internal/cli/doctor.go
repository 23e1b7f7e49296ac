package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/lintgate/internal/app"
	"github.com/runoshun/lintgate/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newDoctorCommand creates the doctor command for checking the environment.
func newDoctorCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the gate's environment",
		Long: `Check that the project directory exists, the virtualenv activates,
and every configured tool resolves inside it.

Unlike the gate itself, doctor keeps going after the first failure so
every problem is listed. Exits 1 if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.CheckEnvUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			if err := printDoctorReport(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}

			if !out.Passed {
				return errors.New("environment check failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Report format: text or yaml")
	return cmd
}

// doctorReport is the machine-readable doctor summary.
type doctorReport struct {
	Project string            `yaml:"project"`
	Passed  bool              `yaml:"passed"`
	Checks  []usecase.EnvCheck `yaml:"checks"`
}

// printDoctorReport writes the check results in the requested format.
func printDoctorReport(w io.Writer, out *usecase.CheckEnvOutput, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(doctorReport{
			Project: out.ProjectDir,
			Passed:  out.Passed,
			Checks:  out.Checks,
		})
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, _ = w.Write(data)
		return nil
	case "text", "":
		for _, check := range out.Checks {
			status := "ok  "
			if !check.OK {
				status = "fail"
			}
			_, _ = fmt.Fprintf(w, "%s  %-20s %s\n", status, check.Name, check.Detail)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
