package testsupport

// Canned catalog documents used across package tests.
const (
	InceptionDetail = `{
  "id": 27205,
  "imdb_id": "tt1375666",
  "title": "Inception",
  "original_title": "Inception",
  "overview": "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets.",
  "poster_path": "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg",
  "release_date": "2010-07-15",
  "runtime": 148,
  "genres": [
    {"id": 28, "name": "Action"},
    {"id": 878, "name": "Science Fiction"},
    {"id": 12, "name": "Adventure"}
  ],
  "spoken_languages": [
    {"english_name": "English", "iso_639_1": "en", "name": "English"},
    {"english_name": "French", "iso_639_1": "fr", "name": "Français"},
    {"english_name": "Japanese", "iso_639_1": "ja", "name": "日本語"}
  ],
  "vote_average": 8.369
}`

	InceptionCredits = `{
  "id": 27205,
  "cast": [
    {"id": 6193, "name": "Leonardo DiCaprio", "character": "Cobb", "order": 0},
    {"id": 24045, "name": "Joseph Gordon-Levitt", "character": "Arthur", "order": 1},
    {"id": 27578, "name": "Elliot Page", "character": "Ariadne", "order": 2},
    {"id": 2524, "name": "Tom Hardy", "character": "Eames", "order": 3},
    {"id": 3899, "name": "Ken Watanabe", "character": "Saito", "order": 4},
    {"id": 2037, "name": "Cillian Murphy", "character": "Robert Fischer", "order": 5}
  ],
  "crew": [
    {"id": 525, "name": "Christopher Nolan", "job": "Director", "department": "Directing"},
    {"id": 525, "name": "Christopher Nolan", "job": "Writer", "department": "Writing"},
    {"id": 556, "name": "Emma Thomas", "job": "Producer", "department": "Production"},
    {"id": 947, "name": "Hans Zimmer", "job": "Original Music Composer", "department": "Sound"}
  ]
}`

	InceptionVideos = `{
  "id": 27205,
  "results": [
    {"id": "v1", "name": "Behind the Dream", "key": "bts1", "site": "YouTube", "type": "Featurette", "official": true, "iso_639_1": "en"},
    {"id": "v2", "name": "Fan Trailer", "key": "fan1", "site": "YouTube", "type": "Trailer", "official": false, "iso_639_1": "en"},
    {"id": "v3", "name": "Official Trailer", "key": "YoHD9XEInc0", "site": "YouTube", "type": "Trailer", "official": true, "iso_639_1": "en"},
    {"id": "v4", "name": "Vimeo Trailer", "key": "vm1", "site": "Vimeo", "type": "Trailer", "official": true, "iso_639_1": "en"}
  ]
}`

	ThronesDetail = `{
  "id": 1399,
  "name": "Game of Thrones",
  "first_air_date": "2011-04-17",
  "last_air_date": "2019-05-19",
  "poster_path": "/1XS1oqL89opfnbLl8WnZY1O1uJx.jpg",
  "genres": [
    {"id": 10765, "name": "Sci-Fi & Fantasy"},
    {"id": 18, "name": "Drama"}
  ],
  "spoken_languages": [
    {"english_name": "English", "iso_639_1": "en", "name": "English"}
  ]
}`

	ThronesCredits = `{
  "id": 1399,
  "cast": [
    {"id": 22970, "name": "Peter Dinklage", "character": "Tyrion Lannister", "order": 0},
    {"id": 1223786, "name": "Emilia Clarke", "character": "Daenerys Targaryen", "order": 1}
  ],
  "crew": [
    {"id": 9813, "name": "David Benioff", "job": "Executive Producer", "department": "Production"}
  ]
}`

	InceptionSearch = `{
  "page": 1,
  "results": [
    {"adult": false, "id": 27205, "media_type": "movie", "title": "Inception", "release_date": "2010-07-15", "poster_path": "/oYuLEt3zVCKq57qu2F8dT7NIa6f.jpg"},
    {"adult": false, "id": 1399, "media_type": "tv", "name": "Game of Thrones", "first_air_date": "2011-04-17"},
    {"adult": false, "id": 6193, "media_type": "person", "name": "Leonardo DiCaprio", "known_for_department": "Acting"}
  ],
  "total_pages": 1,
  "total_results": 3
}`

	EmptySearch = `{"page":1,"results":[],"total_pages":0,"total_results":0}`
)
