package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/application"
	"github.com/ordertrack/ordertrack/internal/domain"
)

func newEditCmd(opts *globalOptions) *cobra.Command {
	var set map[string]string

	cmd := &cobra.Command{
		Use:   "edit <order-number>",
		Short: "Update the first order with the given number",
		Long: "Update fields of the first order with the given number, e.g.\n" +
			"  ordertrack edit 42 --set status=Completed --set amount=99.50\n" +
			"Fields: client_name, order_number, order_date, order_amount, status.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order number %q", args[0])
			}

			update, ignored, err := domain.ParseUpdate(set)
			if err != nil {
				return err
			}

			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			for _, key := range ignored {
				sess.log.WithField("field", key).Warn("ignoring unknown field")
			}

			err = sess.svc.Edit(number, update)
			switch {
			case application.IsNotFound(err):
				fmt.Fprintln(cmd.OutOrStdout(), "Order not found.")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated order %d\n", number)
			return nil
		},
	}

	cmd.Flags().StringToStringVar(&set, "set", nil, "Field to update as field=value (repeatable)")

	return cmd
}
