package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/ordertrack/ordertrack/internal/application"
)

// orderTools serializes access to the order service; the MCP transport may
// dispatch requests concurrently and OrderService is single-threaded.
type orderTools struct {
	mu  sync.Mutex
	svc *application.OrderService
	log *logrus.Entry
}

// NewOrderTrackMCPServer creates a new MCP server with all ordertrack tools
// and resources registered against svc.
func NewOrderTrackMCPServer(svc *application.OrderService, logger *logrus.Entry) *server.MCPServer {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	s := server.NewMCPServer(
		"ordertrack",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	t := &orderTools{svc: svc, log: logger.WithField("component", "mcp")}
	registerTools(s, t)
	registerResources(s, t)

	return s
}
