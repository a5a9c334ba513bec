package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/tui"
	"github.com/ordertrack/ordertrack/internal/domain"
)

// runDemo adds one generated order and prints every report. A failing step
// is logged and the rest still run.
func runDemo(cmd *cobra.Command, sess *session, gen domain.OrderGenerator) error {
	out := cmd.OutOrStdout()

	order := gen.Generate()
	if err := sess.svc.Add(order); err != nil {
		sess.log.WithError(err).Error("adding generated order")
	}

	fmt.Fprint(out, tui.RenderOrders(sess.svc.List()))
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.RenderStats(sess.svc.Stats()))
	fmt.Fprintln(out)

	if largest, ok := sess.svc.Largest(); ok {
		fmt.Fprint(out, tui.RenderLargest(largest))
	} else {
		fmt.Fprint(out, tui.RenderEmpty())
	}
	fmt.Fprintln(out)

	fmt.Fprint(out, tui.RenderStatusChart(sess.svc.StatusSeries()))
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.RenderDateChart(sess.svc.DateSeries()))
	return nil
}
