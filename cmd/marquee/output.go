package main

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// wantJSON reports whether output should be JSON: an explicit --json flag
// wins, otherwise JSON is used whenever stdout is not a terminal.
func wantJSON(cmd *cobra.Command) bool {
	if flag := cmd.Flags().Lookup("json"); flag != nil && flag.Changed {
		value, err := cmd.Flags().GetBool("json")
		return err == nil && value
	}
	return !isTerminal(cmd.OutOrStdout())
}

func isTerminal(writer any) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
