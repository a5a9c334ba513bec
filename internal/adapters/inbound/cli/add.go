package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/domain"
)

func newAddCmd(opts *globalOptions) *cobra.Command {
	var (
		client string
		number int
		date   string
		amount string
		status string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an order",
		Long:  "Append an order to the data file. Order numbers are not checked for uniqueness.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := buildOrder(client, number, date, amount, status)
			if err != nil {
				return err
			}

			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			if err := sess.svc.Add(order); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added order %d (%s)\n", order.Number, order.AmountText())
			return nil
		},
	}

	cmd.Flags().StringVar(&client, "client", "", "Client name")
	cmd.Flags().IntVar(&number, "number", 0, "Order number")
	cmd.Flags().StringVar(&date, "date", "", "Order date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&amount, "amount", "", "Order amount, e.g. 149.90")
	cmd.Flags().StringVar(&status, "status", string(domain.StatusInProgress), "Order status (Completed, InProgress)")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func buildOrder(client string, number int, date, amount, status string) (domain.Order, error) {
	d := time.Now()
	if date != "" {
		parsed, err := domain.ParseDate(date)
		if err != nil {
			return domain.Order{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", date)
		}
		d = parsed
	}

	a, err := domain.ParseAmount(amount)
	if err != nil {
		return domain.Order{}, fmt.Errorf("invalid --amount %q", amount)
	}

	return domain.Order{
		ClientName: client,
		Number:     number,
		Date:       d,
		Amount:     a,
		Status:     domain.Status(status),
	}.Normalize(), nil
}
