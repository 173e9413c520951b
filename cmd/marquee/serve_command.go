package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/daemonrun"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			runCfg := *cfg
			if bind != "" {
				runCfg.API.Bind = bind
			}
			return daemonrun.Run(cmd.Context(), &runCfg, daemonrun.Options{
				LogLevel: ctx.logLevel(),
				Ready: func(addr string) {
					fmt.Fprintf(cmd.ErrOrStderr(), "Marquee API listening on http://%s\n", addr)
				},
			})
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Override the configured bind address")
	return cmd
}
