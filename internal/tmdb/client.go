package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Catalog defines the catalog operations the aggregation layer uses.
type Catalog interface {
	GetDetail(ctx context.Context, id int64, kind media.Kind, language string) (*DetailPayload, error)
	GetCredits(ctx context.Context, id int64, kind media.Kind, language string) (*CreditsPayload, error)
	GetVideos(ctx context.Context, id int64, kind media.Kind, language string) (*VideosPayload, error)
	SearchMulti(ctx context.Context, phrase, language string) (*SearchPayload, error)
}

// Credentials authenticate catalog requests. The read access token is sent
// as a bearer token; the v3 API key is only used when no token is set.
type Credentials struct {
	ReadAccessToken string
	APIKey          string
}

// Client provides access to the TMDB API.
type Client struct {
	credentials Credentials
	baseURL     string
	language    string
	userAgent   string
	httpClient  *http.Client
	logger      *slog.Logger
}

var _ Catalog = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "tmdb")
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(agent)
	}
}

// New creates a TMDB client. language is used when a call passes none.
func New(creds Credentials, baseURL, language string, opts ...Option) (*Client, error) {
	creds.ReadAccessToken = strings.TrimSpace(creds.ReadAccessToken)
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	if creds.ReadAccessToken == "" && creds.APIKey == "" {
		return nil, errors.New("tmdb read access token or api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	language = strings.TrimSpace(language)
	if language == "" {
		language = media.DefaultLanguage
	}
	client := &Client{
		credentials: creds,
		baseURL:     strings.TrimRight(baseURL, "/"),
		language:    language,
		userAgent:   "marquee",
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		logger:      logging.NewComponentLogger(nil, "tmdb"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// GetDetail fetches /movie/{id} or /tv/{id}.
func (c *Client) GetDetail(ctx context.Context, id int64, kind media.Kind, language string) (*DetailPayload, error) {
	path, err := titlePath(id, kind, "")
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, kind.String()+" details", path, c.params(language))
	if err != nil {
		return nil, err
	}
	var payload DetailPayload
	if err := decode(body, "detail", &payload); err != nil {
		return nil, err
	}
	if err := decode(body, "detail", &payload.Raw); err != nil {
		return nil, err
	}
	payload.Kind = kind
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetCredits fetches /movie/{id}/credits or /tv/{id}/credits.
func (c *Client) GetCredits(ctx context.Context, id int64, kind media.Kind, language string) (*CreditsPayload, error) {
	path, err := titlePath(id, kind, "credits")
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, kind.String()+" credits", path, c.params(language))
	if err != nil {
		return nil, err
	}
	var payload CreditsPayload
	if err := decode(body, "credits", &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

// GetVideos fetches /movie/{id}/videos or /tv/{id}/videos.
func (c *Client) GetVideos(ctx context.Context, id int64, kind media.Kind, language string) (*VideosPayload, error) {
	path, err := titlePath(id, kind, "videos")
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, kind.String()+" videos", path, c.params(language))
	if err != nil {
		return nil, err
	}
	var payload VideosPayload
	if err := decode(body, "videos", &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchMulti performs a multi search across movies, series, and people.
// An empty phrase is passed through unchanged.
func (c *Client) SearchMulti(ctx context.Context, phrase, language string) (*SearchPayload, error) {
	params := c.params(language)
	params.Set("query", phrase)
	body, err := c.get(ctx, "multi search", "/search/multi", params)
	if err != nil {
		return nil, err
	}
	var payload SearchPayload
	if err := decode(body, "search", &payload); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return &payload, nil
}

func titlePath(id int64, kind media.Kind, sub string) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("%w: id must be positive, got %d", ErrInvalidRequest, id)
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unsupported kind %s", ErrInvalidRequest, kind)
	}
	path := fmt.Sprintf("/%s/%d", kind, id)
	if sub != "" {
		path += "/" + sub
	}
	return path, nil
}

func (c *Client) params(language string) url.Values {
	params := url.Values{}
	language = strings.TrimSpace(language)
	if language == "" {
		language = c.language
	}
	params.Set("language", language)
	if c.credentials.ReadAccessToken == "" {
		params.Set("api_key", c.credentials.APIKey)
	}
	return params
}

func (c *Client) get(ctx context.Context, operation, path string, params url.Values) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: parse tmdb url: %v", ErrInvalidRequest, err)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token := c.credentials.ReadAccessToken; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: execute request (latency=%v): %w", ErrTransport, operation, latency, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("tmdb request",
		logging.String("operation", operation),
		logging.String("path", path),
		logging.Int("status", resp.StatusCode),
		logging.Duration("latency", latency),
	)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Operation: operation, StatusCode: resp.StatusCode, Latency: latency}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %w", ErrTransport, operation, err)
	}
	return body, nil
}

func decode(body []byte, resource string, out any) error {
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", ErrShape, resource, err)
	}
	return nil
}
