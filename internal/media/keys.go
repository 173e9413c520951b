package media

import (
	"strconv"
	"strings"
)

// KeySeparator joins the segments of a composite cache key.
const KeySeparator = "---"

// Key namespaces.
const (
	NamespaceSearch       = "TMDB"
	NamespaceTrailers     = "trailers"
	NamespaceUserLanguage = "userlang"
)

// Store collections. The names match the collections of the existing
// document store so records written by earlier deployments stay readable.
const (
	CollectionSearchDetail = "TMDB_media_detail"
	CollectionDetail       = "media_detail"
	CollectionTrailers     = "trailers"
	CollectionUserLanguage = "users_lang"
)

// CacheKey renders "<namespace>---<kind>---<id>---<language>". An empty
// namespace yields the bare "<kind>---<id>---<language>" form.
func CacheKey(namespace string, id Identity) string {
	parts := make([]string, 0, 4)
	if namespace != "" {
		parts = append(parts, namespace)
	}
	parts = append(parts, id.Kind.String(), strconv.FormatInt(id.ID, 10), id.Language)
	return strings.Join(parts, KeySeparator)
}

// DetailKey is the bare key used by the full detail collection.
func DetailKey(id Identity) string {
	return CacheKey("", id)
}

// UserLanguageKey renders "userlang---<userID>".
func UserLanguageKey(userID int64) string {
	return NamespaceUserLanguage + KeySeparator + strconv.FormatInt(userID, 10)
}
