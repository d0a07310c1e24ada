package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imagezebra/imagezebra-go/internal/logging"
)

const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://imagezebra.com/api"

	// DefaultRequestTimeout bounds every individual HTTP call. The overall
	// polling budget is configured separately (see PollResults).
	DefaultRequestTimeout = 30 * time.Second
)

const appKeyHeader = "X-Application-Key"

// Credentials identify an API account. They are supplied once, to New, and
// never mutated afterwards.
type Credentials struct {
	ApplicationKey string
	Username       string
	Password       string
}

// Client is an authenticated ImageZebra API client. The bearer token obtained
// during construction is attached to every subsequent request. A Client is
// safe for concurrent use after New returns.
type Client struct {
	baseURL string
	appKey  string
	token   string
	httpc   *http.Client
	log     logging.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (e.g. to adjust the
// per-request timeout).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New authenticates against the token endpoint and returns a ready-to-use
// client. Rejected credentials surface immediately as ErrAuthentication;
// there is no retry.
func New(ctx context.Context, baseURL string, creds Credentials, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appKey:  creds.ApplicationKey,
		httpc:   &http.Client{Timeout: DefaultRequestTimeout},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.authenticate(ctx, creds); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) authenticate(ctx context.Context, creds Credentials) error {
	body, err := json.Marshal(map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(appKeyHeader, c.appKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp, ErrAuthentication)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if out.Token == "" {
		return fmt.Errorf("%w: empty token in response", ErrAuthentication)
	}

	c.token = out.Token
	c.log.Info(ctx, "authenticated", "user", creds.Username)
	return nil
}

// Token returns the bearer token obtained at construction time.
func (c *Client) Token() string {
	return c.token
}

// UserData fetches account information such as the remaining upload balance.
func (c *Client) UserData(ctx context.Context) (*UserData, error) {
	var ud UserData
	if err := c.do(ctx, http.MethodGet, "/user-data", nil, nil, &ud); err != nil {
		return nil, err
	}
	return &ud, nil
}

// do issues an authenticated request. A non-nil body is sent as JSON; a
// non-nil out receives the decoded JSON response. Non-2xx responses are
// returned as *APIError wrapping ErrRequest. 204 responses carry no body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set(appKeyHeader, c.appKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp, ErrRequest)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// newAPIError captures status and body of a non-success response. Non-JSON
// bodies are tolerated and leave Body empty.
func newAPIError(resp *http.Response, kind error) *APIError {
	body := map[string]any{}
	if data, err := io.ReadAll(resp.Body); err == nil {
		_ = json.Unmarshal(data, &body)
	}
	return &APIError{StatusCode: resp.StatusCode, Body: body, kind: kind}
}
