package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/tloc/internal/config"
)

var (
	cfgFile  string
	logLevel string
	cfg      = &config.Config{
		DBPath:      config.DefaultDBPath,
		Concurrency: config.DefaultConcurrency,
		LogLevel:    config.DefaultLogLevel,
		LogFormat:   config.DefaultLogFormat,
	}
)

var rootCmd = &cobra.Command{
	Use:          "tloc",
	Short:        "Resolve test locations from suite syntax trees",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			v.Set("log.level", logLevel)
		}
		cfg = config.New(v)

		log, err := cfg.Logger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		slog.SetDefault(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./.tloc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
