package cli

import (
	mcpadapter "github.com/ordertrack/ordertrack/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the ordertrack MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start ordertrack MCP server (stdio)",
		Long:  "Start the ordertrack MCP server using stdio transport. Assistants can list, add, edit and delete orders and read statistics.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.open(cmd)
			if err != nil {
				return err
			}
			s := mcpadapter.NewOrderTrackMCPServer(sess.svc, sess.log)
			return server.ServeStdio(s)
		},
	}
}
