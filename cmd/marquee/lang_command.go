package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/api"
	"marquee/internal/core"
)

func newLangCommand(ctx *commandContext) *cobra.Command {
	langCmd := &cobra.Command{
		Use:   "lang",
		Short: "Manage per-user language preferences",
	}

	langCmd.AddCommand(&cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user's language",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *core.Services) error {
				language, err := svc.Prefs.Get(cmd.Context(), userID)
				if err != nil {
					return err
				}
				return printLanguage(cmd, api.NewLanguageResponse(userID, language))
			})
		},
	})

	langCmd.AddCommand(&cobra.Command{
		Use:   "set <user-id> <language>",
		Short: "Save a user's language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *core.Services) error {
				language, err := svc.Prefs.Set(cmd.Context(), userID, args[1])
				if err != nil {
					return err
				}
				return printLanguage(cmd, api.NewLanguageResponse(userID, language))
			})
		},
	})

	return langCmd
}

func printLanguage(cmd *cobra.Command, resp api.LanguageResponse) error {
	if wantJSON(cmd) {
		return writeJSON(cmd, resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "User %d: %s (%s)\n", resp.UserID, resp.Language, resp.DisplayName)
	return nil
}
