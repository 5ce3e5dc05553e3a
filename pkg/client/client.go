// Package client is the typed API client for the admin console service.
// Every call is one request/response round trip: no retries, no backoff,
// no caching. Application-level failures arrive inside the transport-level
// success envelope and surface as *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	clientKey  string
	token      func() string

	Org    *OrgService
	App    *AppService
	Types  *TypesService
	Upload *UploadService
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClientKey attaches the static client-identifying header to every
// request. An empty key means the header is simply omitted.
func WithClientKey(key string) Option {
	return func(c *Client) { c.clientKey = key }
}

// WithTokenSource installs the ambient auth token lookup. The source may
// return an empty string; a missing token is tolerated, not fatal.
func WithTokenSource(src func() string) Option {
	return func(c *Client) { c.token = src }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Org = &OrgService{client: c}
	c.App = &AppService{client: c}
	c.Types = &TypesService{client: c}
	c.Upload = &UploadService{client: c}
	return c
}

// Envelope is the uniform response wrapper.
type Envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// APIError is an application-level failure reported inside a successfully
// transported envelope.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Msg)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	c.setAmbientHeaders(req)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		// The server still wraps auth failures in an envelope; prefer its
		// message when one is decodable.
		var env Envelope
		if decErr := json.NewDecoder(res.Body).Decode(&env); decErr == nil && env.Code != 0 {
			return &APIError{Code: env.Code, Msg: env.Msg}
		}
		return fmt.Errorf("HTTP bad response: %d", res.StatusCode)
	}

	var env Envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return err
	}
	if env.Code != 0 {
		return &APIError{Code: env.Code, Msg: env.Msg}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// setAmbientHeaders merges whatever ambient credentials are available.
// Nothing here is mandatory; absent values leave the request untouched.
func (c *Client) setAmbientHeaders(req *http.Request) {
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	if c.clientKey != "" {
		req.Header.Set("X-Client-Key", c.clientKey)
	}
}
