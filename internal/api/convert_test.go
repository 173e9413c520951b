package api

import (
	"encoding/json"
	"testing"

	"marquee/internal/media"
)

func TestFromDetailIncludesLinks(t *testing.T) {
	id := media.NewIdentity(media.KindMovie, 27205, "en-US")
	detail := media.Detail{
		Kind:   media.KindMovie,
		IMDbID: "tt1375666",
		Year:   "2010",
		Genres: []string{"Action"},
		Raw: map[string]json.RawMessage{
			"title":       json.RawMessage(`"Inception"`),
			"poster_path": json.RawMessage(`"/poster.jpg"`),
		},
	}

	view := FromDetail(id, detail)
	if !view.Found || view.Title != "Inception" || view.Year != "2010" {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.PosterURL != "https://image.tmdb.org/t/p/w500/poster.jpg" {
		t.Fatalf("poster url = %q", view.PosterURL)
	}
	if view.PageURL != "https://www.themoviedb.org/movie/27205" {
		t.Fatalf("page url = %q", view.PageURL)
	}
	if view.IMDbURL != "https://www.imdb.com/title/tt1375666/" {
		t.Fatalf("imdb url = %q", view.IMDbURL)
	}
	if view.Casts == nil || view.Writers == nil {
		t.Fatal("list fields must not be nil")
	}
}

func TestFromDetailEmptyRecordIsNotFound(t *testing.T) {
	view := FromDetail(media.NewIdentity(media.KindTV, 9, "en-US"), media.Detail{})
	if view.Found {
		t.Fatal("empty record reported as found")
	}
	if view.IMDbURL != "" || view.PosterURL != "" {
		t.Fatalf("unexpected links on empty record: %+v", view)
	}
	if view.PageURL != "https://www.themoviedb.org/tv/9" {
		t.Fatalf("page url = %q", view.PageURL)
	}
}

func TestDecorateHitAddsLinksOnlyForTitles(t *testing.T) {
	movie, err := media.NewHit("id", 27205, "media_type", "movie", "poster_path", "/p.jpg")
	if err != nil {
		t.Fatalf("NewHit: %v", err)
	}
	person, err := media.NewHit("id", 6193, "media_type", "person")
	if err != nil {
		t.Fatalf("NewHit: %v", err)
	}

	resp := FromHits("inception", "en-US", []media.Hit{movie, person})
	if got := resp.Results[0].String("page_url"); got != "https://www.themoviedb.org/movie/27205" {
		t.Fatalf("page_url = %q", got)
	}
	if got := resp.Results[0].String("poster_url"); got != "https://image.tmdb.org/t/p/w500/p.jpg" {
		t.Fatalf("poster_url = %q", got)
	}
	if resp.Results[1].Len() != 2 {
		t.Fatalf("person hit modified: %v", resp.Results[1].Keys())
	}
}

func TestFromTrailersNeverNil(t *testing.T) {
	resp := FromTrailers(media.NewIdentity(media.KindMovie, 1, ""), nil)
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if list, ok := decoded["trailers"].([]any); !ok || len(list) != 0 {
		t.Fatalf("trailers = %v", decoded["trailers"])
	}
}

func TestNewLanguageResponseNamesLanguage(t *testing.T) {
	resp := NewLanguageResponse(7, "de-DE")
	if resp.UserID != 7 || resp.Language != "de-DE" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.DisplayName == "" || resp.DisplayName == "DE-DE" {
		t.Fatalf("display name not resolved: %q", resp.DisplayName)
	}
}
