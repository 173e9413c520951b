package search_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"marquee/internal/aggregate"
	"marquee/internal/media"
	"marquee/internal/mediacache"
	"marquee/internal/search"
	"marquee/internal/testsupport"
	"marquee/internal/tmdb"
)

type countingStore struct {
	mediacache.Store
	gets atomic.Int32
	puts atomic.Int32
}

func (c *countingStore) Get(ctx context.Context, collection, key string) (json.RawMessage, bool, error) {
	c.gets.Add(1)
	return c.Store.Get(ctx, collection, key)
}

func (c *countingStore) Put(ctx context.Context, collection, key string, value json.RawMessage) error {
	c.puts.Add(1)
	return c.Store.Put(ctx, collection, key, value)
}

func newOrchestrator(t *testing.T, server *testsupport.CatalogServer) (*search.Orchestrator, *countingStore) {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithCatalog(server))
	client, err := tmdb.New(tmdb.Credentials{ReadAccessToken: cfg.TMDB.ReadAccessToken}, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	require.NoError(t, err)
	store := &countingStore{Store: mediacache.NewMemoryStore()}
	cache := mediacache.New(store, media.CollectionSearchDetail)
	return search.New(client, aggregate.New(client, nil), cache), store
}

func TestSearchEnrichesMovieAndSeriesHits(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	orchestrator, store := newOrchestrator(t, server)

	hits := orchestrator.Search(context.Background(), "inception", "en-US")
	require.Len(t, hits, 3)

	movie := hits[0]
	require.Equal(t, []string{"adult", "id", "media_type", "title", "release_date", "poster_path"}, movie.Keys()[:6])
	require.Equal(t, "tt1375666", movie.String("imdb_id"))
	require.Equal(t, "2010", movie.String("year"))
	casts, ok := movie.Get("casts")
	require.True(t, ok)
	require.JSONEq(t, `["Leonardo DiCaprio","Joseph Gordon-Levitt","Elliot Page","Tom Hardy","Ken Watanabe"]`, string(casts))

	series := hits[1]
	require.Equal(t, "2011", series.String("year1"))
	require.Equal(t, "2019", series.String("year2"))

	person := hits[2]
	require.Equal(t, []string{"adult", "id", "media_type", "name", "known_for_department"}, person.Keys())

	require.EqualValues(t, 2, store.puts.Load())
	keys, err := store.Keys(context.Background(), media.CollectionSearchDetail)
	require.NoError(t, err)
	require.Equal(t, []string{"TMDB---movie---27205---en-US", "TMDB---tv---1399---en-US"}, keys)
}

func TestSearchSecondRunServesFromCache(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	orchestrator, _ := newOrchestrator(t, server)

	first := orchestrator.Search(context.Background(), "inception", "en-US")
	second := orchestrator.Search(context.Background(), "inception", "en-US")

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.JSONEq(t, string(firstJSON), string(secondJSON))
	require.Equal(t, 1, server.Count("/movie/27205"))
	require.Equal(t, 1, server.Count("/tv/1399/credits"))
	require.Equal(t, 2, server.Count("/search/multi"))
}

func TestSearchWithoutHitsDoesNotTouchCache(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.HandleJSON("/search/multi", testsupport.EmptySearch)
	orchestrator, store := newOrchestrator(t, server)

	hits := orchestrator.Search(context.Background(), "zzzz", "en-US")
	require.NotNil(t, hits)
	require.Empty(t, hits)
	require.Zero(t, store.gets.Load())
	require.Zero(t, store.puts.Load())
}

func TestSearchFailureYieldsEmptyList(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.Handle("/search/multi", http.StatusUnauthorized, `{"status_code":7}`)
	orchestrator, store := newOrchestrator(t, server)

	require.Empty(t, orchestrator.Search(context.Background(), "inception", "en-US"))
	require.Zero(t, store.gets.Load())
}

func TestSearchMalformedHitAbortsPage(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	server.HandleJSON("/search/multi", `{"page":1,"results":[
	  {"id": 27205, "media_type": "movie", "title": "Inception"},
	  {"id": 99, "title": "No type"}
	],"total_pages":1,"total_results":2}`)
	orchestrator, store := newOrchestrator(t, server)

	require.Empty(t, orchestrator.Search(context.Background(), "inception", "en-US"))
	require.Zero(t, store.puts.Load())
}

func TestSearchHitFieldsWinOverDetail(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	server.HandleJSON("/search/multi", `{"page":1,"results":[
	  {"id": 27205, "media_type": "movie", "title": "Inception", "year": "hit-year"}
	],"total_pages":1,"total_results":1}`)
	orchestrator, _ := newOrchestrator(t, server)

	hits := orchestrator.Search(context.Background(), "inception", "en-US")
	require.Len(t, hits, 1)
	require.Equal(t, "hit-year", hits[0].String("year"))
	require.Equal(t, "tt1375666", hits[0].String("imdb_id"))
}

func TestSearchCachesEmptyRecordForBrokenTitle(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.HandleJSON("/search/multi", `{"page":1,"results":[
	  {"id": 5, "media_type": "movie", "title": "Gone"}
	],"total_pages":1,"total_results":1}`)
	orchestrator, store := newOrchestrator(t, server)

	hits := orchestrator.Search(context.Background(), "gone", "en-US")
	require.Len(t, hits, 1)
	require.Equal(t, []string{"id", "media_type", "title"}, hits[0].Keys())

	raw, ok, err := store.Get(context.Background(), media.CollectionSearchDetail, "TMDB---movie---5---en-US")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{}`, string(raw))
}
