package media_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/mo"

	"marquee/internal/media"
)

func TestParseKind(t *testing.T) {
	cases := map[string]media.Kind{"movie": media.KindMovie, "TV": media.KindTV, " film ": media.KindMovie}
	for input, want := range cases {
		got, err := media.ParseKind(input)
		if err != nil {
			t.Fatalf("ParseKind(%q) error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := media.ParseKind("person"); !errors.Is(err, media.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestCacheKeys(t *testing.T) {
	id := media.Identity{Kind: media.KindMovie, ID: 27205, Language: "en-US"}
	if got := media.CacheKey(media.NamespaceSearch, id); got != "TMDB---movie---27205---en-US" {
		t.Fatalf("unexpected search key %q", got)
	}
	if got := media.CacheKey(media.NamespaceTrailers, id.WithLanguage("fa")); got != "trailers---movie---27205---fa-IR" {
		t.Fatalf("unexpected trailer key %q", got)
	}
	if got := media.DetailKey(media.Identity{Kind: media.KindTV, ID: 1399, Language: "en-US"}); got != "tv---1399---en-US" {
		t.Fatalf("unexpected detail key %q", got)
	}
	if got := media.UserLanguageKey(99); got != "userlang---99" {
		t.Fatalf("unexpected user key %q", got)
	}
}

func TestCollectionNames(t *testing.T) {
	got := []string{
		media.CollectionSearchDetail,
		media.CollectionDetail,
		media.CollectionTrailers,
		media.CollectionUserLanguage,
	}
	want := []string{"TMDB_media_detail", "media_detail", "trailers", "users_lang"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("collection %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIdentityIsComparable(t *testing.T) {
	seen := map[media.Identity]int{}
	seen[media.NewIdentity(media.KindMovie, 1, "en")]++
	seen[media.NewIdentity(media.KindMovie, 1, "en-US")]++
	if len(seen) != 1 {
		t.Fatalf("expected normalized identities to collide, got %v", seen)
	}
	if err := (media.Identity{Kind: media.KindMovie}).Validate(); !errors.Is(err, media.ErrInvalidIdentity) {
		t.Fatalf("expected invalid identity, got %v", err)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"":      "en-US",
		"en":    "en-US",
		"en-us": "en-US",
		"fa":    "fa-IR",
		"fa_IR": "fa-IR",
		"de-AT": "de-AT",
		"!!":    "en-US",
	}
	for input, want := range cases {
		if got := media.NormalizeLanguage(input); got != want {
			t.Fatalf("NormalizeLanguage(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestURLs(t *testing.T) {
	if got := media.PosterURL("/abc.jpg"); got != "https://image.tmdb.org/t/p/w500/abc.jpg" {
		t.Fatalf("poster url %q", got)
	}
	if media.PosterURL("") != "" {
		t.Fatal("expected empty poster url")
	}
	if got := media.PageURL(media.KindTV, 1399); got != "https://www.themoviedb.org/tv/1399" {
		t.Fatalf("page url %q", got)
	}
	if got := media.IMDbURL("tt1375666"); got != "https://www.imdb.com/title/tt1375666/" {
		t.Fatalf("imdb url %q", got)
	}
}

func TestEmptyDetailRendersAsEmptyObject(t *testing.T) {
	data, err := json.Marshal(media.Detail{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected {}, got %s", data)
	}
	var back media.Detail
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsEmpty() {
		t.Fatalf("expected empty record, got %+v", back)
	}
}

func TestDetailJSONNormalizedKeysWinOverRaw(t *testing.T) {
	d := media.Detail{
		Kind:      media.KindMovie,
		IMDbID:    "tt1375666",
		Languages: []string{"English"},
		Genres:    []string{"Action"},
		Casts:     []string{"Leonardo DiCaprio"},
		Directors: []string{"Christopher Nolan"},
		Year:      "2010",
		Raw: map[string]json.RawMessage{
			"genres": json.RawMessage(`[{"id":28,"name":"Action"}]`),
			"title":  json.RawMessage(`"Inception"`),
		},
	}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["title"] != "Inception" {
		t.Fatalf("expected raw title, got %v", doc["title"])
	}
	genres, ok := doc["genres"].([]any)
	if !ok || len(genres) != 1 || genres[0] != "Action" {
		t.Fatalf("expected normalized genres, got %v", doc["genres"])
	}
	if doc["writers"] == nil {
		t.Fatalf("expected writers to be an empty list, got %v", doc["writers"])
	}
	if _, ok := doc["year1"]; ok {
		t.Fatal("movie record must not carry series years")
	}

	var back media.Detail
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Kind != media.KindMovie || back.Year != "2010" || back.IMDbID != "tt1375666" {
		t.Fatalf("unexpected restore: %+v", back)
	}
	if string(back.Raw["title"]) != `"Inception"` {
		t.Fatalf("expected raw title restored, got %v", back.Raw)
	}
}

func TestSeriesDetailRestoresKind(t *testing.T) {
	var d media.Detail
	if err := json.Unmarshal([]byte(`{"genres":[],"languages":[],"casts":[],"directors":[],"writers":[],"year1":"2011","year2":"2019"}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Kind != media.KindTV || d.Year1 != "2011" || d.Year2 != "2019" {
		t.Fatalf("unexpected series record %+v", d)
	}
}

func TestMovieWithoutIMDbIDRendersNull(t *testing.T) {
	d := media.Detail{Kind: media.KindMovie, Year: "2010"}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal doc: %v", err)
	}
	if got := string(doc["imdb_id"]); got != "null" {
		t.Fatalf("imdb_id = %s, want null", got)
	}

	var back media.Detail
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Kind != media.KindMovie || back.IMDbID != "" {
		t.Fatalf("unexpected round trip %+v", back)
	}
}

func TestTrailerURLIsOptional(t *testing.T) {
	data, err := json.Marshal([]media.Trailer{
		{Name: "A", Official: true, Type: "Trailer", URL: mo.Some("https://www.youtube.com/watch?v=k")},
		{Name: "B", Type: "Teaser", URL: mo.None[string]()},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"name":"A","official":true,"type":"Trailer","url":"https://www.youtube.com/watch?v=k"},{"name":"B","official":false,"type":"Teaser","url":null}]`
	if string(data) != want {
		t.Fatalf("got %s want %s", data, want)
	}
}

func TestHitPreservesOrderAndEnrichKeepsHitFields(t *testing.T) {
	var hit media.Hit
	if err := json.Unmarshal([]byte(`{"media_type":"movie","id":27205,"title":"Inception","genres":"hit-value"}`), &hit); err != nil {
		t.Fatalf("unmarshal hit: %v", err)
	}
	kind, err := hit.MediaType()
	if err != nil || kind != "movie" {
		t.Fatalf("media type %q err %v", kind, err)
	}
	id, err := hit.ID()
	if err != nil || id != 27205 {
		t.Fatalf("id %d err %v", id, err)
	}

	enriched, err := hit.Enrich(json.RawMessage(`{"genres":["Action"],"year":"2010"}`))
	if err != nil {
		t.Fatalf("enrich: %v", err)
	}
	data, err := json.Marshal(enriched)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"media_type":"movie","id":27205,"title":"Inception","genres":"hit-value","year":"2010"}`
	if string(data) != want {
		t.Fatalf("got %s want %s", data, want)
	}
	if hit.Len() != 4 {
		t.Fatalf("enrich must not mutate the original hit, len=%d", hit.Len())
	}
}

func TestHitMissingFieldsAreMalformed(t *testing.T) {
	hit, err := media.NewHit("title", "x")
	if err != nil {
		t.Fatalf("NewHit: %v", err)
	}
	if _, err := hit.MediaType(); !errors.Is(err, media.ErrMalformedHit) {
		t.Fatalf("expected malformed media_type, got %v", err)
	}
	if _, err := hit.ID(); !errors.Is(err, media.ErrMalformedHit) {
		t.Fatalf("expected malformed id, got %v", err)
	}
}
