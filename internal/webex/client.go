package webex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/collabops/webexctl/internal/logging"
)

// Config holds the configuration for the Webex client.
type Config struct {
	// BaseURL is the base URL of the Webex API.
	BaseURL string

	// Timeout for API requests.
	Timeout time.Duration

	// DefaultHeaders to include in API requests.
	DefaultHeaders map[string]string

	// HTTPClient is a custom HTTP client to use instead of the default one.
	// If nil, a default client will be created with the specified Timeout.
	HTTPClient *http.Client

	// Logger for request logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultConfig returns a default configuration for the Webex client.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://webexapis.com/v1",
		Timeout:        30 * time.Second,
		DefaultHeaders: make(map[string]string),
	}
}

// Client is an authenticated HTTP client for the Webex API. Every request
// carries the bearer token and a JSON content type; responses are decoded
// with ParseResponse. Each call is a single attempt, there is no retry.
type Client struct {
	httpClient  *http.Client
	baseURL     *url.URL
	accessToken string
	headers     map[string]string
	logger      *slog.Logger
}

// NewClient creates a new Webex client with the given access token and
// optional configuration.
func NewClient(accessToken string, config *Config) (*Client, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token cannot be empty")
	}

	if config == nil {
		config = DefaultConfig()
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		accessToken: accessToken,
		headers:     config.DefaultHeaders,
		logger:      logger,
	}, nil
}

// BaseURL returns the base URL requests are made against.
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

// Logger returns the logger used for request logging.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Get performs a GET request to a path relative to the base URL.
// The caller is responsible for closing the response body when done.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	u := strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(path, "/")
	return c.do(ctx, http.MethodGet, u, params, nil)
}

// Post performs a POST request with a JSON body to a path relative to the
// base URL. The caller is responsible for closing the response body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*http.Response, error) {
	u := strings.TrimRight(c.baseURL.String(), "/") + "/" + strings.TrimLeft(path, "/")
	return c.do(ctx, http.MethodPost, u, nil, body)
}

// GetURL performs a GET request to a full URL, not relative to the base URL.
// Report download URLs are absolute, so they go through here. The request
// carries the same authentication and default headers as regular requests.
// The caller is responsible for closing the response body when done.
func (c *Client) GetURL(ctx context.Context, fullURL string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, fullURL, nil, nil)
}

func (c *Client) do(ctx context.Context, method, rawURL string, params url.Values, body interface{}) (*http.Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing request URL: %w", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("api request",
		slog.String("method", method),
		slog.String("url", u.Redacted()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			slog.String("method", method),
			slog.String("url", u.Redacted()),
			logging.Err(err))
		return nil, err
	}
	return resp, nil
}

// ParseResponse decodes an HTTP response into v. Non-2xx responses become
// an *APIError; a body that does not decode becomes a *ProtocolError.
func ParseResponse(resp *http.Response, v interface{}) error {
	body, err := ReadResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &ProtocolError{Op: "decode response", Err: err}
	}
	return nil
}

// ReadResponse reads and closes the response body, returning the raw bytes.
// Non-2xx responses become an *APIError carrying the body.
func ReadResponse(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, NewAPIError(resp, body)
	}
	return body, nil
}
