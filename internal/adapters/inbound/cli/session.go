package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ordertrack/ordertrack/internal/adapters/outbound/config"
	"github.com/ordertrack/ordertrack/internal/adapters/outbound/csvstore"
	"github.com/ordertrack/ordertrack/internal/application"
	"github.com/ordertrack/ordertrack/internal/domain"
)

// session is the wired set of dependencies a command runs against.
type session struct {
	cfg domain.Config
	log *logrus.Entry
	svc *application.OrderService
}

// open loads config, builds the logger and loads the order store.
func (o *globalOptions) open(cmd *cobra.Command) (*session, error) {
	cfg, err := config.New().Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if o.file != "" {
		cfg.DataFile = o.file
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, o.verbose)
	entry := logger.WithField("command", cmd.Name())
	entry.WithFields(logrus.Fields{
		"data_file":  cfg.DataFile,
		"largest_by": cfg.LargestBy,
	}).Debug("opening order store")

	svc := application.NewOrderService(
		csvstore.New(cfg.DataFile),
		entry,
		application.WithLargestBy(cfg.LargestBy),
	)
	return &session{cfg: cfg, log: entry, svc: svc}, nil
}

func newLogger(w io.Writer, level string, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if verbose {
		lvl = logrus.DebugLevel
	}
	logger.SetLevel(lvl)
	return logger
}
