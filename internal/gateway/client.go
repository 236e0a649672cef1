package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/salimdiab/pos-console/pkg/apperror"
)

const loginPath = "/login"

// SessionStore is the slice of the session the client needs: the token to
// attach on the way out and the ability to wipe everything on a 401.
type SessionStore interface {
	Token() string
	Clear() error
}

// Config holds the client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Outbound rate limit toward the POS backend. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

// Client is the single outbound entry point to the POS backend. Every screen
// goes through it, so authentication attachment and authentication-failure
// handling live in exactly one place.
type Client struct {
	baseURL string
	http    *http.Client
	session SessionStore
	limiter *rate.Limiter
}

// New creates a gateway client bound to a session store.
func New(cfg Config, session SessionStore) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
		limiter: limiter,
	}
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out, "")
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, "")
}

// PostIdempotent issues a POST carrying a fresh Idempotency-Key header, so a
// resubmitted form cannot create the same record twice on the backend.
func (c *Client) PostIdempotent(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out, uuid.New().String())
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out, "")
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "")
}

// errorBody is the shape the backend uses for error responses.
type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, idempotencyKey string) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	// A missing token is not an error; the request simply goes out anonymous.
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %v: %w", method, path, err, apperror.ErrUpstream)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %v: %w", method, path, err, apperror.ErrUpstream)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized(ctx)
		return c.upstreamError(resp.StatusCode, data)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.upstreamError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}

// handleUnauthorized is the inbound interceptor for authentication failures:
// wipe the session, then send the user to the login screen unless they are
// already there (or on the root screen, which forwards to login itself).
// The original error still reaches the caller so its own handling runs.
func (c *Client) handleUnauthorized(ctx context.Context) {
	if err := c.session.Clear(); err != nil {
		log.Printf("gateway: failed to clear session after 401: %v", err)
	}

	nav := navigatorFrom(ctx)
	if nav == nil {
		return
	}
	if current := nav.CurrentPath(); current == loginPath || current == "/" {
		return
	}
	nav.Redirect(loginPath)
}

func (c *Client) upstreamError(status int, data []byte) error {
	var body errorBody
	// A malformed error body is fine, the generic message covers it.
	_ = json.Unmarshal(data, &body)
	return apperror.NewUpstreamError(status, body.Message)
}
