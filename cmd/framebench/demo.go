package main

import (
	"github.com/spf13/cobra"

	"github.com/ajitpratap0/colframe/internal/bench"
	"github.com/ajitpratap0/colframe/pkg/logger"
)

func newDemoCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the table API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := logger.DefaultConfig()
			cfg.Level = logLevel
			log, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return bench.RunDemo(cmd.OutOrStdout(), log)
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	return cmd
}
