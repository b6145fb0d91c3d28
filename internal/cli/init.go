package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/timesnake/pkg/chart"
	"github.com/matzehuels/timesnake/pkg/errors"
)

const defaultChartFile = "timeline.toml"

// initCommand creates the init command, which writes the reference chart as a
// starting point for a custom one.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the reference chart to a TOML file",
		Long: `Write the built-in reference chart to a TOML file to use as a template.

Use "-" to print it to stdout instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultChartFile
			if len(args) == 1 {
				path = args[0]
			}
			src := chart.ReferenceSource()

			if path == "-" {
				_, err := c.out.Write(src)
				return err
			}
			if err := errors.ValidatePath(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.WriteFile(path, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			c.printSuccess("Wrote reference chart")
			c.printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
