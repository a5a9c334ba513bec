package cli

import (
	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/config"
	"github.com/ordertrack/ordertrack/internal/adapters/outbound/generator"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	file       string
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	var seed uint64

	cmd := &cobra.Command{
		Use:   "ordertrack",
		Short: "Track customer orders in a CSV file",
		Long: "ordertrack keeps customer orders in a CSV file and reports statistics and charts over them.\n" +
			"Run without a command to add one generated order and print every report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return runDemo(cmd, sess, generator.New(seed))
		},
	}

	cmd.PersistentFlags().StringVar(&opts.file, "file", "", "Data file (overrides data_file from config)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "Config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the generated demo order (0 = random)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAddCmd(opts))
	cmd.AddCommand(newEditCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newStatsCmd(opts))
	cmd.AddCommand(newLargestCmd(opts))
	cmd.AddCommand(newChartCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
