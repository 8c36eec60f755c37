package nacos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muurk/nacos-tui/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultGroup is the group used when a config call does not name one
	DefaultGroup = "DEFAULT_GROUP"

	// maxBodySize bounds how much of a response is read into memory
	maxBodySize = 8 << 20
)

const (
	loginPath      = "/nacos/v1/auth/login"
	namespacesPath = "/nacos/v1/console/namespaces"
	configsPath    = "/nacos/v1/cs/configs"
	configListPath = "/nacos/v2/cs/history/configs"
)

// Client talks to a configuration service over its HTTP API.
// It holds no session state: the access token is passed to every call.
type Client struct {
	// BaseURL is the server root (e.g., "http://127.0.0.1:8848")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a new client for the server at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// request describes one call to the server
type request struct {
	op     string
	method string
	path   string
	token  string
	query  url.Values
	form   url.Values
}

// do performs a single attempt of r and returns the raw body of a 2xx response
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	query := r.query
	if query == nil {
		query = url.Values{}
	}
	if r.token != "" {
		query.Set("accessToken", r.token)
	}

	target := c.BaseURL + r.path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, NewNetworkError(r.op, err)
	}
	if r.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json, text/plain")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.LogRequest(r.method, target, 0, time.Since(start), err)
		return nil, NewNetworkError(r.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	logging.LogRequest(r.method, target, resp.StatusCode, time.Since(start), err)
	if err != nil {
		return nil, NewNetworkError(r.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewRequestError(r.op, resp.StatusCode, string(data))
	}

	return data, nil
}

// decodeEnvelope unmarshals a {code, message, data} body into its data part
func decodeEnvelope[T any](op string, data []byte) (T, error) {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		var zero T
		return zero, NewDecodeError(op, err)
	}
	if env.Code != 0 && env.Code != http.StatusOK {
		var zero T
		return zero, &Error{
			Type:       ErrTypeRequest,
			Op:         op,
			Message:    fmt.Sprintf("code %d", env.Code),
			StatusCode: http.StatusOK,
			Body:       env.Message,
		}
	}
	return env.Data, nil
}

// parseBool interprets a plain "true"/"false" body.
// Some endpoints wrap the flag in an envelope; both shapes are accepted.
// An empty 2xx body counts as success.
func parseBool(op string, data []byte) (bool, error) {
	text := strings.TrimSpace(string(data))
	switch text {
	case "", "true":
		return true, nil
	case "false":
		return false, nil
	}

	var env envelope[bool]
	if err := json.Unmarshal(data, &env); err != nil {
		return false, NewDecodeError(op, fmt.Errorf("want true or false, got %q", truncate(text, 64)))
	}
	if env.Code != 0 && env.Code != http.StatusOK {
		return false, nil
	}
	return env.Data, nil
}

// MustSucceed turns a false success flag into a request error. A non-nil err wins.
func MustSucceed(op string, ok bool, err error) error {
	if err != nil {
		return err
	}
	if !ok {
		return NewRejectedError(op)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
