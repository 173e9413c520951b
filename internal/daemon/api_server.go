package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"marquee/internal/api"
	"marquee/internal/config"
	"marquee/internal/core"
	"marquee/internal/logging"
	"marquee/internal/media"
	"marquee/internal/services"
)

type apiServer struct {
	bind     string
	logger   *slog.Logger
	daemon   *Daemon
	services *core.Services
	router   *mux.Router

	mu       sync.Mutex
	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) *apiServer {
	srv := &apiServer{
		bind:     strings.TrimSpace(cfg.API.Bind),
		logger:   logging.NewComponentLogger(logger, "api-server"),
		daemon:   d,
		services: d.services,
	}

	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.writeError(w, r, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srv.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})
	router.HandleFunc("/health", srv.handleHealth).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(authMiddleware(cfg.API.Token))
	v1.HandleFunc("/search", srv.handleSearch).Methods(http.MethodGet)
	v1.HandleFunc("/{kind:movie|tv}/{id:[0-9]+}", srv.handleDetail).Methods(http.MethodGet)
	v1.HandleFunc("/{kind:movie|tv}/{id:[0-9]+}/trailers", srv.handleTrailers).Methods(http.MethodGet)
	v1.HandleFunc("/users/{id:[0-9]+}/language", srv.handleGetLanguage).Methods(http.MethodGet)
	v1.HandleFunc("/users/{id:[0-9]+}/language", srv.handleSetLanguage).Methods(http.MethodPut)

	srv.router = router
	return srv
}

func (s *apiServer) start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.mu.Lock()
	s.listener = listener
	s.server = server
	s.mu.Unlock()

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()
	if server == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.logger.Warn("api server shutdown incomplete", logging.Error(err))
	}
}

func (s *apiServer) addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, err := s.daemon.Health(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, status)
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.writeError(w, r, http.StatusBadRequest, "query parameter q is required")
		return
	}
	ctx, language, ok := s.requestLanguage(w, r)
	if !ok {
		return
	}
	hits := s.services.Search.Search(ctx, query, language)
	s.writeJSON(w, r, http.StatusOK, api.FromHits(query, language, hits))
}

func (s *apiServer) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, id, ok := s.requestIdentity(w, r)
	if !ok {
		return
	}
	view := api.FromDetail(id, s.services.Details.Detail(ctx, id))
	status := http.StatusOK
	if !view.Found {
		status = http.StatusNotFound
	}
	s.writeJSON(w, r, status, view)
}

func (s *apiServer) handleTrailers(w http.ResponseWriter, r *http.Request) {
	limit := s.services.Config.TMDB.TrailerLimit
	if value := strings.TrimSpace(r.URL.Query().Get("limit")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			s.writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}
	ctx, id, ok := s.requestIdentity(w, r)
	if !ok {
		return
	}
	list := s.services.Trailers.Lookup(ctx, id, limit)
	s.writeJSON(w, r, http.StatusOK, api.FromTrailers(id, list))
}

func (s *apiServer) handleGetLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}
	language, err := s.services.Prefs.Get(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, api.NewLanguageResponse(userID, language))
}

func (s *apiServer) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUserID(w, r)
	if !ok {
		return
	}
	var req api.LanguageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Language) == "" {
		s.writeError(w, r, http.StatusBadRequest, "language is required")
		return
	}
	saved, err := s.services.Prefs.Set(r.Context(), userID, req.Language)
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, r, http.StatusOK, api.NewLanguageResponse(userID, saved))
}

// requestLanguage resolves lang= or user= and annotates the context.
func (s *apiServer) requestLanguage(w http.ResponseWriter, r *http.Request) (context.Context, string, bool) {
	ctx := r.Context()
	var userID int64
	if value := strings.TrimSpace(r.URL.Query().Get("user")); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil || parsed <= 0 {
			s.writeError(w, r, http.StatusBadRequest, "user must be a positive integer")
			return nil, "", false
		}
		userID = parsed
		ctx = services.WithUserID(ctx, userID)
	}
	language := s.services.ResolveLanguage(ctx, r.URL.Query().Get("lang"), userID)
	return services.WithLanguage(ctx, language), language, true
}

func (s *apiServer) requestIdentity(w http.ResponseWriter, r *http.Request) (context.Context, media.Identity, bool) {
	vars := mux.Vars(r)
	kind, err := media.ParseKind(vars["kind"])
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return nil, media.Identity{}, false
	}
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		s.writeError(w, r, http.StatusBadRequest, "invalid title id")
		return nil, media.Identity{}, false
	}
	ctx, language, ok := s.requestLanguage(w, r)
	if !ok {
		return nil, media.Identity{}, false
	}
	return ctx, media.NewIdentity(kind, id, language), true
}

func (s *apiServer) pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		s.writeError(w, r, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return id, true
}

func (s *apiServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.WithContext(r.Context(), s.logger).Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, api.ErrorResponse{Error: message})
}
