// Package pocketsmith provides a client for the PocketSmith REST API.
package pocketsmith

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production PocketSmith API endpoint.
const DefaultBaseURL = "https://api.pocketsmith.com/v2"

// ClientConfig represents the configuration for the PocketSmith API client.
type ClientConfig struct {
	BaseURL      string // Default: DefaultBaseURL
	DeveloperKey string
	Timeout      time.Duration // Default: 30 seconds
}

// Client is a PocketSmith API client. Every operation issues a single
// blocking HTTP call; results are returned as raw JSON exactly as the
// remote API sent them.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	developerKey string
}

// NewClient creates a new PocketSmith API client. It fails fast with a
// *ConfigError if the developer key is empty, before any network activity.
func NewClient(config ClientConfig) (*Client, error) {
	if config.DeveloperKey == "" {
		return nil, &ConfigError{
			Reason: "missing developer key: set POCKETSMITH_DEVELOPER_KEY",
		}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		developerKey: config.DeveloperKey,
	}, nil
}

// get issues a GET request. params may be nil.
func (c *Client) get(path string, params url.Values) (json.RawMessage, error) {
	return c.do(http.MethodGet, path, params, nil)
}

// post issues a POST request with a JSON body.
func (c *Client) post(path string, body any) (json.RawMessage, error) {
	return c.do(http.MethodPost, path, nil, body)
}

// put issues a PUT request with a JSON body.
func (c *Client) put(path string, body any) (json.RawMessage, error) {
	return c.do(http.MethodPut, path, nil, body)
}

// delete issues a DELETE request.
func (c *Client) delete(path string) (json.RawMessage, error) {
	return c.do(http.MethodDelete, path, nil, nil)
}

// do executes a single request against the API. A 204 response yields a nil
// message; any other 2xx response yields the body verbatim. Non-2xx statuses
// become *APIError, connection-level failures become *TransportError.
func (c *Client) do(method, path string, params url.Values, body any) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Developer-Key", c.developerKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return json.RawMessage(data), nil
}

// parseError builds an *APIError from a non-2xx response. The message is the
// JSON "error" field when the body parses as such, the raw body text
// otherwise, or the generic status description when the body is empty.
func parseError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: text}
}
