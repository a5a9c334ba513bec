package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/config"
	"github.com/ordertrack/ordertrack/internal/domain"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var (
		largestBy string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .ordertrack.yaml configuration file",
		Long:  "Create a config file with defaults at the --config path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := opts.configPath

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", dest)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.LargestBy = domain.CompareMode(largestBy)
			if opts.file != "" {
				cfg.DataFile = opts.file
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(config.Render(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&largestBy, "largest-by", string(domain.CompareText), "How largest ranks amounts (text, numeric)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
