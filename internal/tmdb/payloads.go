package tmdb

import (
	"encoding/json"
	"fmt"

	"marquee/internal/media"
)

// NamedEntry is a {id, name} pair such as a genre.
type NamedEntry struct {
	ID   int64   `json:"id"`
	Name *string `json:"name"`
}

// SpokenLanguage is one entry of spoken_languages.
type SpokenLanguage struct {
	ISO639      string  `json:"iso_639_1"`
	EnglishName *string `json:"english_name"`
	Name        string  `json:"name"`
}

// DetailPayload is the response of /movie/{id} or /tv/{id}. Required fields
// are pointers so absence can be told apart from zero values.
type DetailPayload struct {
	Kind            media.Kind        `json:"-"`
	ID              int64             `json:"id"`
	IMDbID          json.RawMessage   `json:"imdb_id"`
	Genres          *[]NamedEntry     `json:"genres"`
	SpokenLanguages *[]SpokenLanguage `json:"spoken_languages"`
	ReleaseDate     *string           `json:"release_date"`
	FirstAirDate    *string           `json:"first_air_date"`
	LastAirDate     *string           `json:"last_air_date"`
	PosterPath      *string           `json:"poster_path"`

	// Raw is the full response document.
	Raw map[string]json.RawMessage `json:"-"`
}

// Validate checks the fields the aggregator reads for the payload's kind.
func (p *DetailPayload) Validate() error {
	const resource = "detail"
	if p.Genres == nil {
		return missing(resource, "genres")
	}
	for i, g := range *p.Genres {
		if g.Name == nil {
			return missing(resource, fmt.Sprintf("genres[%d].name", i))
		}
	}
	if p.SpokenLanguages == nil {
		return missing(resource, "spoken_languages")
	}
	for i, l := range *p.SpokenLanguages {
		if l.EnglishName == nil {
			return missing(resource, fmt.Sprintf("spoken_languages[%d].english_name", i))
		}
	}
	switch p.Kind {
	case media.KindMovie:
		if len(p.IMDbID) == 0 {
			return missing(resource, "imdb_id")
		}
		if p.ReleaseDate == nil {
			return missing(resource, "release_date")
		}
	case media.KindTV:
		if p.FirstAirDate == nil {
			return missing(resource, "first_air_date")
		}
		if p.LastAirDate == nil {
			return missing(resource, "last_air_date")
		}
	default:
		return missing(resource, "media kind")
	}
	return nil
}

// IMDb returns the imdb_id value, "" when null.
func (p *DetailPayload) IMDb() string {
	var value string
	if len(p.IMDbID) == 0 || json.Unmarshal(p.IMDbID, &value) != nil {
		return ""
	}
	return value
}

// GenreNames lists genres[].name in order.
func (p *DetailPayload) GenreNames() []string {
	if p.Genres == nil {
		return nil
	}
	names := make([]string, 0, len(*p.Genres))
	for _, g := range *p.Genres {
		if g.Name != nil {
			names = append(names, *g.Name)
		}
	}
	return names
}

// LanguageNames lists spoken_languages[].english_name in order.
func (p *DetailPayload) LanguageNames() []string {
	if p.SpokenLanguages == nil {
		return nil
	}
	names := make([]string, 0, len(*p.SpokenLanguages))
	for _, l := range *p.SpokenLanguages {
		if l.EnglishName != nil {
			names = append(names, *l.EnglishName)
		}
	}
	return names
}

// CastMember is one entry of credits.cast.
type CastMember struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Character string  `json:"character"`
	Order     int     `json:"order"`
}

// CrewMember is one entry of credits.crew.
type CrewMember struct {
	ID         int64   `json:"id"`
	Name       *string `json:"name"`
	Job        *string `json:"job"`
	Department string  `json:"department"`
}

// CreditsPayload is the response of /{kind}/{id}/credits.
type CreditsPayload struct {
	ID   int64         `json:"id"`
	Cast *[]CastMember `json:"cast"`
	Crew *[]CrewMember `json:"crew"`
}

func (p *CreditsPayload) Validate() error {
	const resource = "credits"
	if p.Cast == nil {
		return missing(resource, "cast")
	}
	for i, c := range *p.Cast {
		if c.Name == nil {
			return missing(resource, fmt.Sprintf("cast[%d].name", i))
		}
	}
	if p.Crew == nil {
		return missing(resource, "crew")
	}
	for i, c := range *p.Crew {
		if c.Name == nil {
			return missing(resource, fmt.Sprintf("crew[%d].name", i))
		}
		if c.Job == nil {
			return missing(resource, fmt.Sprintf("crew[%d].job", i))
		}
	}
	return nil
}

// Video is one entry of videos.results.
type Video struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Key      string  `json:"key"`
	Site     string  `json:"site"`
	Type     *string `json:"type"`
	Official *bool   `json:"official"`
	Language string  `json:"iso_639_1"`
}

// VideosPayload is the response of /{kind}/{id}/videos.
type VideosPayload struct {
	ID      int64    `json:"id"`
	Results *[]Video `json:"results"`
}

func (p *VideosPayload) Validate() error {
	const resource = "videos"
	if p.Results == nil {
		return missing(resource, "results")
	}
	for i, v := range *p.Results {
		if v.Name == nil {
			return missing(resource, fmt.Sprintf("results[%d].name", i))
		}
		if v.Type == nil {
			return missing(resource, fmt.Sprintf("results[%d].type", i))
		}
		if v.Official == nil {
			return missing(resource, fmt.Sprintf("results[%d].official", i))
		}
	}
	return nil
}

// SearchPayload is one page of /search/multi.
type SearchPayload struct {
	Page         int          `json:"page"`
	Results      *[]media.Hit `json:"results"`
	TotalPages   int          `json:"total_pages"`
	TotalResults int          `json:"total_results"`
}

func (p *SearchPayload) Validate() error {
	if p.Results == nil {
		return missing("search", "results")
	}
	return nil
}

// Hits returns the page's hits, never nil after a successful Validate.
func (p *SearchPayload) Hits() []media.Hit {
	if p == nil || p.Results == nil {
		return nil
	}
	return *p.Results
}
