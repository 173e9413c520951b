// Command marqueed runs the marquee HTTP daemon in the foreground.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/daemonrun"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:           "marqueed",
		Short:         "Marquee metadata daemon",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return daemonrun.Run(cmd.Context(), cfg, daemonrun.Options{LogLevel: logLevel})
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, _, _, err := config.Load(strings.TrimSpace(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
