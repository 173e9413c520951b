package media

import (
	"strconv"
	"strings"
)

const (
	posterBaseURL = "https://image.tmdb.org/t/p/w500/"
	pageBaseURL   = "https://www.themoviedb.org/"
	imdbBaseURL   = "https://www.imdb.com/title/"
)

// PosterURL returns the w500 image URL for a catalog poster path, or "".
func PosterURL(path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return ""
	}
	return posterBaseURL + path
}

// PageURL returns the catalog web page of a title.
func PageURL(kind Kind, id int64) string {
	if !kind.Valid() || id <= 0 {
		return ""
	}
	return pageBaseURL + kind.String() + "/" + strconv.FormatInt(id, 10)
}

// IMDbURL returns the IMDb page for an imdb id such as "tt1375666", or "".
func IMDbURL(imdbID string) string {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return ""
	}
	return imdbBaseURL + imdbID + "/"
}
