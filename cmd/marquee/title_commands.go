package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"marquee/internal/api"
	"marquee/internal/core"
	"marquee/internal/language"
	"marquee/internal/media"
)

type languageFlags struct {
	lang string
	user int64
}

func (f *languageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.lang, "lang", "l", "", "Response language (BCP-47, e.g. en-US)")
	cmd.Flags().Int64Var(&f.user, "user", 0, "Use the saved language preference of this user id")
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var langFlags languageFlags
	cmd := &cobra.Command{
		Use:   "search <phrase>",
		Short: "Search movies, series and people and enrich title hits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			return ctx.withServices(func(svc *core.Services) error {
				language := svc.ResolveLanguage(cmd.Context(), langFlags.lang, langFlags.user)
				resp := api.FromHits(phrase, language, svc.Search.Search(cmd.Context(), phrase, language))
				if wantJSON(cmd) {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				if len(resp.Results) == 0 {
					fmt.Fprintf(out, "No results for %q\n", phrase)
					return nil
				}
				rows := lo.Map(resp.Results, func(hit media.Hit, _ int) []string {
					return searchRow(hit)
				})
				fmt.Fprintln(out, renderTable(
					[]string{"Type", "ID", "Title", "Year", "Genres"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}
	langFlags.register(cmd)
	return cmd
}

func searchRow(hit media.Hit) []string {
	id, _ := hit.ID()
	title := lo.CoalesceOrEmpty(hit.String("title"), hit.String("name"))
	year := lo.CoalesceOrEmpty(hit.String("year"), hit.String("year1"))
	var genres []string
	if raw, ok := hit.Get("genres"); ok {
		_ = json.Unmarshal(raw, &genres)
	}
	return []string{
		hit.String("media_type"),
		strconv.FormatInt(id, 10),
		title,
		year,
		strings.Join(genres, ", "),
	}
}

func newDetailCommand(ctx *commandContext) *cobra.Command {
	var langFlags languageFlags
	cmd := &cobra.Command{
		Use:   "detail <movie|tv> <id>",
		Short: "Show the aggregated detail record of a title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTitleArgs(args)
			if err != nil {
				return err
			}
			return ctx.withServices(func(svc *core.Services) error {
				identity := media.NewIdentity(kind, id, svc.ResolveLanguage(cmd.Context(), langFlags.lang, langFlags.user))
				view := api.FromDetail(identity, svc.Details.Detail(cmd.Context(), identity))
				if wantJSON(cmd) {
					return writeJSON(cmd, view)
				}
				if !view.Found {
					return fmt.Errorf("no complete record for %s", identity)
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, detailRows(view), nil))
				return nil
			})
		},
	}
	langFlags.register(cmd)
	return cmd
}

func detailRows(view api.DetailView) [][]string {
	rows := [][]string{
		{"Title", view.Title},
		{"Kind", view.Kind},
		{"ID", strconv.FormatInt(view.ID, 10)},
		{"Language", view.Language + " (" + language.DisplayName(view.Language) + ")"},
	}
	if view.Kind == media.KindTV.String() {
		rows = append(rows, []string{"Years", view.Year1 + "-" + view.Year2})
	} else {
		rows = append(rows, []string{"Year", view.Year}, []string{"IMDb", view.IMDbID})
	}
	rows = append(rows,
		[]string{"Genres", strings.Join(view.Genres, ", ")},
		[]string{"Languages", strings.Join(view.Languages, ", ")},
		[]string{"Cast", strings.Join(view.Casts, ", ")},
		[]string{"Directors", strings.Join(view.Directors, ", ")},
		[]string{"Writers", strings.Join(view.Writers, ", ")},
		[]string{"Page", view.PageURL},
	)
	if view.PosterURL != "" {
		rows = append(rows, []string{"Poster", view.PosterURL})
	}
	return rows
}

func newTrailersCommand(ctx *commandContext) *cobra.Command {
	var langFlags languageFlags
	var limit int
	cmd := &cobra.Command{
		Use:   "trailers <movie|tv> <id>",
		Short: "List the ranked trailers of a title",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTitleArgs(args)
			if err != nil {
				return err
			}
			if limit < 0 {
				return fmt.Errorf("--limit must be non-negative")
			}
			return ctx.withServices(func(svc *core.Services) error {
				if !cmd.Flags().Changed("limit") {
					limit = svc.Config.TMDB.TrailerLimit
				}
				identity := media.NewIdentity(kind, id, svc.ResolveLanguage(cmd.Context(), langFlags.lang, langFlags.user))
				resp := api.FromTrailers(identity, svc.Trailers.Lookup(cmd.Context(), identity, limit))
				if wantJSON(cmd) {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				if len(resp.Trailers) == 0 {
					fmt.Fprintf(out, "No trailers for %s\n", identity)
					return nil
				}
				rows := lo.Map(resp.Trailers, func(t media.Trailer, i int) []string {
					return []string{strconv.Itoa(i + 1), t.Name, t.Type, yesNo(t.Official), t.URL.OrElse("-")}
				})
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Name", "Type", "Official", "URL"},
					rows,
					[]columnAlignment{alignRight},
				))
				return nil
			})
		},
	}
	langFlags.register(cmd)
	cmd.Flags().IntVarP(&limit, "limit", "n", 1, "Maximum number of trailers (defaults to tmdb.trailer_limit)")
	return cmd
}
