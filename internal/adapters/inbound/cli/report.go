package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/tui"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}

			orders := sess.svc.List()
			if jsonOutput {
				return renderJSON(cmd, orders)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(orders))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output orders as JSON")

	return cmd
}

func newStatsCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show order count, total amount and status counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}

			st := sess.svc.Stats()
			if jsonOutput {
				return renderJSON(cmd, st)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderStats(st))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output statistics as JSON")

	return cmd
}

func newLargestCmd(opts *globalOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "largest",
		Short: "Show the order with the largest amount",
		Long:  "Show the order with the largest amount, ranked according to largest_by in the config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}

			largest, ok := sess.svc.Largest()
			switch {
			case !ok && jsonOutput:
				return renderJSON(cmd, nil)
			case !ok:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderEmpty())
			case jsonOutput:
				return renderJSON(cmd, largest)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLargest(largest))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the order as JSON")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
