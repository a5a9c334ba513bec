package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-number>",
		Short: "Delete every order with the given number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order number %q", args[0])
			}

			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}

			removed, err := sess.svc.Delete(number)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d order(s) with number %d\n", removed, number)
			return nil
		},
	}
}
