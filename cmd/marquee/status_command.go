package main

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"marquee/internal/daemonctl"
	"marquee/internal/preflight"
)

const statusTimeout = 3 * time.Second

type statusReport struct {
	Status  string             `json:"status"`
	Bind    string             `json:"bind"`
	Backend string             `json:"backend,omitempty"`
	Entries map[string]int     `json:"entries,omitempty"`
	Checks  []preflight.Result `json:"checks"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report whether marqueed is running and run readiness checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			report := statusReport{Status: "not_running", Bind: cfg.API.Bind}
			status, err := daemonctl.Probe(cmd.Context(), cfg, statusTimeout)
			switch {
			case errors.Is(err, daemonctl.ErrDaemonNotRunning):
			case err != nil:
				return err
			default:
				report.Status = status.Status
				report.Backend = status.Backend
				report.Entries = status.Entries
			}
			report.Checks = preflight.RunAll(cmd.Context(), cfg)

			if wantJSON(cmd) {
				return writeJSON(cmd, report)
			}
			renderStatus(cmd, report)
			return nil
		},
	}
}

func renderStatus(cmd *cobra.Command, report statusReport) {
	out := cmd.OutOrStdout()
	if report.Status == "not_running" {
		fmt.Fprintf(out, "Daemon: not running (%s)\n", report.Bind)
	} else {
		fmt.Fprintf(out, "Daemon: %s (%s)\n", report.Status, report.Bind)
		fmt.Fprintf(out, "Cache backend: %s\n", report.Backend)
		names := lo.Keys(report.Entries)
		slices.Sort(names)
		rows := lo.Map(names, func(name string, _ int) []string {
			return []string{name, strconv.Itoa(report.Entries[name])}
		})
		fmt.Fprintln(out, renderTable([]string{"Collection", "Entries"}, rows, []columnAlignment{alignLeft, alignRight}))
	}

	rows := lo.Map(report.Checks, func(r preflight.Result, _ int) []string {
		return []string{r.Name, lo.Ternary(r.Passed, "ok", "FAIL"), r.Detail}
	})
	fmt.Fprintln(out, renderTable([]string{"Check", "Result", "Detail"}, rows, nil))
}
