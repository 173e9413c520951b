package tmdb_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"marquee/internal/media"
	"marquee/internal/testsupport"
	"marquee/internal/tmdb"
)

func newClient(t *testing.T, server *testsupport.CatalogServer, creds tmdb.Credentials) *tmdb.Client {
	t.Helper()
	client, err := tmdb.New(creds, server.URL, "en-US", tmdb.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := tmdb.New(tmdb.Credentials{}, "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when credentials missing")
	}
	if _, err := tmdb.New(tmdb.Credentials{APIKey: "k"}, " ", "en-US"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestGetDetailSendsBearerTokenAndLanguage(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})

	detail, err := client.GetDetail(context.Background(), 27205, media.KindMovie, "fa-IR")
	if err != nil {
		t.Fatalf("GetDetail returned error: %v", err)
	}
	if detail.IMDb() != "tt1375666" {
		t.Fatalf("unexpected imdb id %q", detail.IMDb())
	}
	if got := detail.GenreNames(); len(got) != 3 || got[0] != "Action" {
		t.Fatalf("unexpected genres %v", got)
	}
	if string(detail.Raw["title"]) != `"Inception"` {
		t.Fatalf("expected raw document retained, got %v", detail.Raw["title"])
	}

	reqs := server.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one request, got %d", len(reqs))
	}
	req := reqs[0]
	if req.Header.Get("Authorization") != "Bearer tok" {
		t.Fatalf("expected bearer header, got %q", req.Header.Get("Authorization"))
	}
	if req.Header.Get("Accept") != "application/json" {
		t.Fatalf("expected json accept header, got %q", req.Header.Get("Accept"))
	}
	if req.Query.Get("language") != "fa-IR" {
		t.Fatalf("expected language query, got %q", req.Query.Encode())
	}
	if req.Query.Has("api_key") {
		t.Fatal("api_key must not be sent when a token is configured")
	}
}

func TestAPIKeyFallbackAndDefaultLanguage(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	client := newClient(t, server, tmdb.Credentials{APIKey: "key"})

	if _, err := client.GetCredits(context.Background(), 27205, media.KindMovie, ""); err != nil {
		t.Fatalf("GetCredits returned error: %v", err)
	}
	req := server.Requests()[0]
	if req.Query.Get("api_key") != "key" {
		t.Fatalf("expected api_key query parameter, got %q", req.Query.Encode())
	}
	if req.Query.Get("language") != "en-US" {
		t.Fatalf("expected default language, got %q", req.Query.Get("language"))
	}
	if req.Header.Get("Authorization") != "" {
		t.Fatal("expected no authorization header")
	}
}

func TestNon200IsTransportFailure(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.Handle("/tv/5/videos", http.StatusUnauthorized, `{"status_code":7}`)
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})

	payload, err := client.GetVideos(context.Background(), 5, media.KindTV, "en-US")
	if payload != nil {
		t.Fatal("expected no payload with error")
	}
	if !errors.Is(err, tmdb.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	var statusErr *tmdb.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected StatusError with 401, got %v", err)
	}
}

func TestMissingFieldIsShapeFailure(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.HandleJSON("/movie/42", `{"id":42,"imdb_id":"tt1","release_date":"2010-07-16","spoken_languages":[]}`)
	server.HandleJSON("/movie/42/credits", `{"id":42,"cast":[{"name":"A"}]}`)
	server.HandleJSON("/movie/42/videos", `{"id":42,"results":[{"name":"x","site":"YouTube","key":"k","official":true}]}`)
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})
	ctx := context.Background()

	_, err := client.GetDetail(ctx, 42, media.KindMovie, "")
	var shapeErr *tmdb.ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Field != "genres" {
		t.Fatalf("expected genres shape error, got %v", err)
	}
	if _, err := client.GetCredits(ctx, 42, media.KindMovie, ""); !errors.Is(err, tmdb.ErrShape) {
		t.Fatalf("expected shape error for missing crew, got %v", err)
	}
	if _, err := client.GetVideos(ctx, 42, media.KindMovie, ""); !errors.Is(err, tmdb.ErrShape) {
		t.Fatalf("expected shape error for missing type, got %v", err)
	}
}

func TestSeriesDetailRequiresAirDates(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.HandleJSON("/tv/7", `{"id":7,"genres":[],"spoken_languages":[],"first_air_date":"2020-01-01"}`)
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})

	_, err := client.GetDetail(context.Background(), 7, media.KindTV, "")
	var shapeErr *tmdb.ShapeError
	if !errors.As(err, &shapeErr) || shapeErr.Field != "last_air_date" {
		t.Fatalf("expected last_air_date shape error, got %v", err)
	}
}

func TestInvalidRequestsNeverReachServer(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})

	if _, err := client.GetDetail(context.Background(), 0, media.KindMovie, ""); !errors.Is(err, tmdb.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for id 0, got %v", err)
	}
	if _, err := client.GetCredits(context.Background(), 3, media.KindUnknown, ""); !errors.Is(err, tmdb.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown kind, got %v", err)
	}
	if n := len(server.Requests()); n != 0 {
		t.Fatalf("expected no requests, got %d", n)
	}
}

func TestSearchMultiKeepsHitsVerbatim(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})

	page, err := client.SearchMulti(context.Background(), "", "en-US")
	if err != nil {
		t.Fatalf("SearchMulti returned error: %v", err)
	}
	hits := page.Hits()
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	if got := strings.Join(hits[2].Keys(), ","); got != "adult,id,media_type,name,known_for_department" {
		t.Fatalf("unexpected key order %q", got)
	}
	if !server.Requests()[0].Query.Has("query") {
		t.Fatal("expected empty query parameter to be sent")
	}
}

func TestCanceledContextIsTransportFailure(t *testing.T) {
	server := testsupport.NewCatalogServer(t)
	server.ServeInception()
	client := newClient(t, server, tmdb.Credentials{ReadAccessToken: "tok"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetDetail(ctx, 27205, media.KindMovie, "")
	if !errors.Is(err, tmdb.ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected transport failure wrapping cancellation, got %v", err)
	}
}
