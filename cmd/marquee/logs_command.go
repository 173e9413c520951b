package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/daemonrun"
	"marquee/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var cli bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the daemon log (or the CLI log with --cli)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			name := daemonrun.LogFileName
			if cli {
				name = cliLogFileName
			}
			path := cfg.LogFilePath(name)
			if path == "" {
				return fmt.Errorf("file logging is disabled (paths.log_dir is empty)")
			}

			out := cmd.OutOrStdout()
			tail, offset, err := logs.Last(path, lines)
			if err != nil {
				return err
			}
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			if !follow {
				return nil
			}
			return logs.Follow(cmd.Context(), path, offset, logs.DefaultPollInterval, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to print")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing lines as they are written")
	cmd.Flags().BoolVar(&cli, "cli", false, "Read the CLI log instead of the daemon log")
	return cmd
}
