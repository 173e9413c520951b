package testsupport

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// CatalogRequest records one request received by a CatalogServer.
type CatalogRequest struct {
	Path   string
	Query  url.Values
	Header http.Header
}

type cannedResponse struct {
	status int
	body   string
}

// CatalogServer is an httptest server answering catalog paths with canned
// JSON. Unregistered paths answer 404.
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]cannedResponse
	requests []CatalogRequest
}

// NewCatalogServer starts a fake catalog and closes it when the test ends.
func NewCatalogServer(t testing.TB) *CatalogServer {
	t.Helper()
	s := &CatalogServer{routes: make(map[string]cannedResponse)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers a response for path in any language.
func (s *CatalogServer) Handle(path string, status int, body string) {
	s.HandleLanguage(path, "", status, body)
}

// HandleJSON registers a 200 response for path in any language.
func (s *CatalogServer) HandleJSON(path, body string) {
	s.Handle(path, http.StatusOK, body)
}

// HandleLanguage registers a response used only when the language query
// parameter matches. It takes precedence over a language-less route.
func (s *CatalogServer) HandleLanguage(path, language string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[routeKey(path, language)] = cannedResponse{status: status, body: body}
}

// Requests returns a copy of every request received so far.
func (s *CatalogServer) Requests() []CatalogRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CatalogRequest(nil), s.requests...)
}

// Count returns how many requests hit path.
func (s *CatalogServer) Count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, req := range s.requests {
		if req.Path == path {
			n++
		}
	}
	return n
}

func (s *CatalogServer) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, CatalogRequest{
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
	})
	resp, ok := s.routes[routeKey(r.URL.Path, r.URL.Query().Get("language"))]
	if !ok {
		resp, ok = s.routes[routeKey(r.URL.Path, "")]
	}
	s.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"status_code":34,"status_message":"The resource you requested could not be found."}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

func routeKey(path, language string) string {
	return fmt.Sprintf("%s|%s", path, language)
}

// ServeInception registers detail, credits, videos and a search page for
// the film fixture (id 27205) and the series fixture (id 1399).
func (s *CatalogServer) ServeInception() {
	s.HandleJSON("/movie/27205", InceptionDetail)
	s.HandleJSON("/movie/27205/credits", InceptionCredits)
	s.HandleJSON("/movie/27205/videos", InceptionVideos)
	s.HandleJSON("/tv/1399", ThronesDetail)
	s.HandleJSON("/tv/1399/credits", ThronesCredits)
	s.HandleJSON("/tv/1399/videos", `{"id":1399,"results":[]}`)
	s.HandleJSON("/search/multi", InceptionSearch)
}
