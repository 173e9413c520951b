package main

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"marquee/internal/core"
	"marquee/internal/media"
)

const defaultWarmConcurrency = 4

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and pre-populate the aggregation cache",
	}
	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheCountCommand(ctx))
	cacheCmd.AddCommand(newCacheWarmCommand(ctx))
	return cacheCmd
}

func validCollection(name string) error {
	if !slices.Contains(core.Collections, name) {
		return fmt.Errorf("unknown collection %q (expected one of %v)", name, core.Collections)
	}
	return nil
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <collection>",
		Short: "List the keys stored in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection := args[0]
			if err := validCollection(collection); err != nil {
				return err
			}
			return ctx.withServices(func(svc *core.Services) error {
				keys, err := svc.Store.Keys(cmd.Context(), collection)
				if err != nil {
					return err
				}
				if wantJSON(cmd) {
					return writeJSON(cmd, map[string]any{"collection": collection, "keys": keys})
				}
				out := cmd.OutOrStdout()
				if len(keys) == 0 {
					fmt.Fprintf(out, "Collection %s is empty\n", collection)
					return nil
				}
				rows := lo.Map(keys, func(key string, _ int) []string { return []string{key} })
				fmt.Fprintln(out, renderTable([]string{"Key"}, rows, nil))
				return nil
			})
		},
	}
}

func newCacheCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count [collection]",
		Short: "Count entries per collection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := validCollection(args[0]); err != nil {
					return err
				}
			}
			return ctx.withServices(func(svc *core.Services) error {
				counts, err := svc.Counts(cmd.Context())
				if err != nil {
					return err
				}
				if len(args) == 1 {
					counts = lo.PickByKeys(counts, args)
				}
				if wantJSON(cmd) {
					return writeJSON(cmd, counts)
				}
				names := lo.Keys(counts)
				slices.Sort(names)
				rows := lo.Map(names, func(name string, _ int) []string {
					return []string{name, strconv.Itoa(counts[name])}
				})
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Collection", "Entries"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

type warmResult struct {
	Kind     string `json:"kind"`
	ID       int64  `json:"id"`
	Language string `json:"language"`
	Found    bool   `json:"found"`
	Trailers int    `json:"trailers"`
}

func newCacheWarmCommand(ctx *commandContext) *cobra.Command {
	var langFlags languageFlags
	var concurrency int
	cmd := &cobra.Command{
		Use:   "warm <movie|tv> <id>...",
		Short: "Resolve detail records and trailers for titles ahead of time",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := media.ParseKind(args[0])
			if err != nil {
				return err
			}
			ids := make([]int64, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if concurrency <= 0 {
				return fmt.Errorf("--concurrency must be positive")
			}
			return ctx.withServices(func(svc *core.Services) error {
				language := svc.ResolveLanguage(cmd.Context(), langFlags.lang, langFlags.user)
				results, err := warmTitles(cmd.Context(), svc, kind, lo.Uniq(ids), language, concurrency)
				if err != nil {
					return err
				}
				if wantJSON(cmd) {
					return writeJSON(cmd, results)
				}
				rows := lo.Map(results, func(r warmResult, _ int) []string {
					return []string{r.Kind, strconv.FormatInt(r.ID, 10), r.Language, yesNo(r.Found), strconv.Itoa(r.Trailers)}
				})
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Kind", "ID", "Language", "Found", "Trailers"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
	langFlags.register(cmd)
	cmd.Flags().IntVar(&concurrency, "concurrency", defaultWarmConcurrency, "Titles resolved in parallel")
	return cmd
}

// warmTitles resolves the detail record and trailer list of every id with
// at most concurrency titles in flight. Results are ordered by id.
func warmTitles(ctx context.Context, svc *core.Services, kind media.Kind, ids []int64, language string, concurrency int) ([]warmResult, error) {
	var (
		mu      sync.Mutex
		results = make([]warmResult, 0, len(ids))
	)
	p := pool.New().WithMaxGoroutines(concurrency).WithContext(ctx).WithCancelOnError()
	for _, id := range ids {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			identity := media.NewIdentity(kind, id, language)
			detail := svc.Details.Detail(ctx, identity)
			trailers := svc.Trailers.Lookup(ctx, identity, svc.Config.TMDB.TrailerLimit)

			mu.Lock()
			defer mu.Unlock()
			results = append(results, warmResult{
				Kind:     kind.String(),
				ID:       id,
				Language: language,
				Found:    !detail.IsEmpty(),
				Trailers: len(trailers),
			})
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b warmResult) int { return cmp.Compare(a.ID, b.ID) })
	return results, nil
}
