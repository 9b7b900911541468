// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport executes request descriptors built by pkg/wire
// against a remote WebDriver server over HTTP.
package transport

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

	"github.com/drayke/webwire/pkg/wire"
)

// DriverError is an error document returned by the server.
type DriverError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Code is the W3C error code, e.g. "no such element".
	Code       string
	Message    string
	Stacktrace string
}

func (e *DriverError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("webdriver: HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("webdriver: %s: %s", e.Code, e.Message)
}

// Client issues WebDriver requests against a single server. It holds
// the prebuilt connection headers and is safe for concurrent use.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// NewClient builds a client for the given server URL. Userinfo in the
// URL becomes a Basic-Auth header and is stripped from the base URL.
func NewClient(serverURL string) (*Client, error) {
	return NewClientWithHTTP(serverURL, &http.Client{Timeout: 120 * time.Second})
}

// NewClientWithHTTP is NewClient with a caller-supplied http.Client,
// for custom timeouts or transports.
func NewClientWithHTTP(serverURL string, httpClient *http.Client) (*Client, error) {
	headers, err := BuildHeaders(serverURL)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("webwire: parse server url: %w", err)
	}
	u.User = nil
	return &Client{
		baseURL:    strings.TrimRight(u.String(), "/"),
		headers:    headers,
		httpClient: httpClient,
	}, nil
}

// BaseURL returns the server base URL with credentials stripped.
func (c *Client) BaseURL() string { return c.baseURL }

// Do executes one request descriptor and returns the raw contents of
// the response's "value" field. Server-reported failures come back as
// a *DriverError.
func (c *Client) Do(ctx context.Context, req wire.RequestData) (json.RawMessage, error) {
	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("webwire: marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("webwire: build request: %w", err)
	}
	httpReq.Header = c.headers.Clone()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("webwire: %s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webwire: read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseDriverError(resp.StatusCode, respBody)
	}

	var envelope struct {
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("webwire: response is not a JSON object: %w", err)
	}
	return envelope.Value, nil
}

func parseDriverError(status int, body []byte) error {
	var envelope struct {
		Value struct {
			Error      string `json:"error"`
			Message    string `json:"message"`
			Stacktrace string `json:"stacktrace"`
		} `json:"value"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Value.Error != "" {
		return &DriverError{
			Status:     status,
			Code:       envelope.Value.Error,
			Message:    envelope.Value.Message,
			Stacktrace: envelope.Value.Stacktrace,
		}
	}
	// Some servers answer errors with plain text or a bare message.
	return &DriverError{Status: status, Message: strings.TrimSpace(string(body))}
}
