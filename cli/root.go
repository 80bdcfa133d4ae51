// Package cli wires the searchpage commands: the web server, the terminal UI
// and a helper that prints canonical criteria URLs.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"

	"searchpage/config"
)

var configPath string

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "searchpage <command>",
		Short:         "Search criteria page backed by the URL query string",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "searchpage.toml", "path to a TOML config file")

	root.AddCommand(newServeCmd(), newTUICmd(), newURLCmd())
	return root
}

// Execute runs the root command until it returns or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// loadConfig reads the config file and environment, then applies the log level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, serr.Wrap(err, "failed to load config")
	}
	logger.SetLogLevel(cfg.LogLevel)
	return cfg, nil
}
