package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"sort"
)

// ErrNoToken is returned by the transport when a request is attempted
// without a configured API token.
var ErrNoToken = errors.New("monday: token is not configured")

// API is the surface the resource wrappers depend on: build-and-send for
// queries, scalar mutations, and file uploads. Client is the HTTP
// implementation; tests substitute fakes.
type API interface {
	Execute(ctx context.Context, op Op, fieldName string, args Args, selection []Field) (map[string]any, error)
	ExecuteScalar(ctx context.Context, op Op, fieldName string, args Args) (map[string]any, error)
	ExecuteUpload(ctx context.Context, query string, files map[string]File) (map[string]any, error)
}

// File is one upload part: the filename reported to the API and the
// content reader.
type File struct {
	Name   string
	Reader io.Reader
}

// Client sends GraphQL operations to the configured endpoint over HTTP.
// It is stateless between calls and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	cfg        Config
}

// Compile-time interface check.
var _ API = (*Client)(nil)

// NewClient constructs a Client, filling unset Config fields from the
// process-wide defaults. An empty token is accepted at construction time
// but causes Post to fail, matching the library's use in tools that are
// wired up before credentials are known.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.Host == "" {
		return nil, fmt.Errorf("monday: host is required")
	}

	dialer := &net.Dialer{Timeout: cfg.OpenTimeout}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: cfg.OpenTimeout,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.ReadTimeout,
			Transport: transport,
		},
		cfg: cfg,
	}, nil
}

// Post sends query as the "query" field of a JSON body and returns the
// parsed response. Transport faults (dial, TLS, timeout, body read) come
// back as plain wrapped errors, distinct from the classified *Error
// taxonomy; they are never swallowed.
func (c *Client) Post(ctx context.Context, query string) (*Response, error) {
	if c.cfg.Token == "" {
		return nil, ErrNoToken
	}

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("monday: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("monday: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	return c.do(req)
}

// PostMultipart sends query and the given files as a multipart form body,
// for file-upload mutations. Each file is attached as a part named after
// its variable placeholder in the query text (for example "variables[file]"
// matching $file).
func (c *Client) PostMultipart(ctx context.Context, query string, files map[string]File) (*Response, error) {
	if c.cfg.Token == "" {
		return nil, ErrNoToken
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("query", query); err != nil {
		return nil, fmt.Errorf("monday: write query part: %w", err)
	}

	// Deterministic part order.
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := files[name]
		part, err := writer.CreateFormFile(name, f.Name)
		if err != nil {
			return nil, fmt.Errorf("monday: create file part %q: %w", name, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, fmt.Errorf("monday: copy file part %q: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("monday: finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host, &buf)
	if err != nil {
		return nil, fmt.Errorf("monday: create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setAuthHeaders(req)

	return c.do(req)
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.cfg.Token)
	if c.cfg.Version != "" {
		req.Header.Set("API-Version", c.cfg.Version)
	}
}

// do performs the request and decodes the body into a Response. Status
// handling is deliberately absent here; classification is the caller's
// step so the original exchange stays available on classified errors.
func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("monday: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("monday: read response: %w", err)
	}

	body := map[string]any{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, fmt.Errorf("monday: decode response (HTTP %d): %w", resp.StatusCode, err)
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}, nil
}

// Execute builds the operation, posts it, and classifies the response,
// returning the parsed body on success.
func (c *Client) Execute(ctx context.Context, op Op, fieldName string, args Args, selection []Field) (map[string]any, error) {
	query, err := Build(op, fieldName, args, selection)
	if err != nil {
		return nil, err
	}
	resp, err := c.Post(ctx, query)
	if err != nil {
		return nil, err
	}
	return Classify(resp)
}

// ExecuteScalar is Execute for selection-less operations.
func (c *Client) ExecuteScalar(ctx context.Context, op Op, fieldName string, args Args) (map[string]any, error) {
	query, err := BuildScalar(op, fieldName, args)
	if err != nil {
		return nil, err
	}
	resp, err := c.Post(ctx, query)
	if err != nil {
		return nil, err
	}
	return Classify(resp)
}

// ExecuteUpload posts a pre-built query with file parts and classifies the
// response. The query is taken as text because upload operations use
// variable placeholders rather than inline arguments.
func (c *Client) ExecuteUpload(ctx context.Context, query string, files map[string]File) (map[string]any, error) {
	resp, err := c.PostMultipart(ctx, query, files)
	if err != nil {
		return nil, err
	}
	return Classify(resp)
}
