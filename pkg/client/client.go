// Package client wraps every surftrack REST endpoint with a typed function.
// Each call is a direct pass-through: build the request, await the response,
// decode the body or surface the failure. No retries, no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/kainoa/surftrack/pkg/models"
)

const DefaultBaseURL = "http://localhost:8080"

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	token      string
	debug      bool
}

type Option func(*Client)

// WithHTTPClient replaces the default 10s-timeout transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithDebugLogging logs request method/URL and response status. Meant for
// development builds only.
func WithDebugLogging(l *slog.Logger) Option {
	return func(c *Client) {
		c.debug = true
		if l != nil {
			c.logger = l
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HealthResponse mirrors the GET /health body.
type HealthResponse struct {
	Status      string                `json:"status"`
	Timestamp   string                `json:"timestamp"`
	Environment string                `json:"environment"`
	Database    models.DatabaseHealth `json:"database"`
}

// CreateSpotInput carries the POST /api/surf-spots body.
type CreateSpotInput struct {
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	BreakType        string  `json:"breakType"`
	SkillRequirement string  `json:"skillRequirement"`
	Description      string  `json:"description"`
}

// CreateSessionInput carries the POST /api/surf-sessions body. The spot is
// named, not referenced by id; resolution happens server side.
type CreateSessionInput struct {
	SurfSpot         string `json:"surfSpot"`
	Date             string `json:"date"`
	Duration         *int64 `json:"duration,omitempty"`
	WaveCount        *int64 `json:"waveCount,omitempty"`
	Rating           *int64 `json:"rating,omitempty"`
	ConditionsRating *int64 `json:"conditionsRating,omitempty"`
	Notes            string `json:"notes"`
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSpots(ctx context.Context) ([]models.SurfSpot, error) {
	var out []models.SurfSpot
	if err := c.do(ctx, http.MethodGet, "/api/surf-spots", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSpot(ctx context.Context, in CreateSpotInput) (*models.SurfSpot, error) {
	var out models.SurfSpot
	if err := c.do(ctx, http.MethodPost, "/api/surf-spots", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSpot(ctx context.Context, id int64) (*models.SurfSpot, error) {
	var out models.SurfSpot
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/surf-spots/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSpot(ctx context.Context, id int64, fields map[string]any) (*models.SurfSpot, error) {
	var out models.SurfSpot
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/surf-spots/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSpot(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/surf-spots/%d", id), nil, nil)
}

func (c *Client) ListSessions(ctx context.Context) ([]models.SurfSession, error) {
	var out []models.SurfSession
	if err := c.do(ctx, http.MethodGet, "/api/surf-sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSession(ctx context.Context, in CreateSessionInput) (*models.SurfSession, error) {
	var out models.SurfSession
	if err := c.do(ctx, http.MethodPost, "/api/surf-sessions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetSession(ctx context.Context, id int64) (*models.SurfSession, error) {
	var out models.SurfSession
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/surf-sessions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListSessionsBySpot(ctx context.Context, spotID int64) ([]models.SurfSession, error) {
	var out []models.SurfSession
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/surf-sessions/spot/%d", spotID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateSession(ctx context.Context, id int64, fields map[string]any) (*models.SurfSession, error) {
	var out models.SurfSession
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/surf-sessions/%d", id), fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSession(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/surf-sessions/%d", id), nil, nil)
}

func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var out models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signin exchanges credentials for a bearer token and attaches it to
// subsequent requests from this client.
func (c *Client) Signin(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", body, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.debug {
		c.logger.Debug("api request", slog.String("method", method), slog.String("url", c.baseURL+path))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if c.debug {
		c.logger.Debug("api response", slog.Int("status", resp.StatusCode), slog.String("url", c.baseURL+path))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
