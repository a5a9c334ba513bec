package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/tui"
)

func newChartCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render order charts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Share of completed and in-progress orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStatusChart(sess.svc.StatusSeries()))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "dates",
		Short: "Number of orders per date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDateChart(sess.svc.DateSeries()))
			return nil
		},
	})
	return cmd
}
