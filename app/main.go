package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/solar-directory/app/internal/infra/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "solar-directory",
		Short:        "Solar company and product directory",
		Long:         "Serve the directory API or filter an exported catalog from the terminal.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for offline commands (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newFilterCmd(opts))
	cmd.AddCommand(newBrowseCmd(opts))
	return cmd
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	logger, err := logging.New(o.logLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	return logger, nil
}
