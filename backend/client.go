package backend

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
)

// DefaultTimeout is the per-call budget against the backend.
const DefaultTimeout = 8 * time.Second

// Error classifies a failed backend call. Connection refused, timeout,
// a non-2xx status and an unreadable body all surface as this one kind;
// callers are not expected to distinguish causes beyond the description.
type Error struct {
	Op     string // e.g. "GET /api/invoices"
	Status int    // Zero when the call never produced a response.
	Cause  string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend %s: status %d: %s", e.Op, e.Status, e.Cause)
	}
	return fmt.Sprintf("backend %s: %s", e.Op, e.Cause)
}

// Client talks to the invoicing backend over HTTP. The base URL and
// per-call timeout are injected at construction; there is no ambient
// configuration state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Client against baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL reports the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	op := "GET " + path
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &Error{Op: op, Cause: err.Error()}
	}
	return c.do(req, op, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	op := "POST " + path
	payload, err := json.Marshal(body)
	if err != nil {
		return &Error{Op: op, Cause: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &Error{Op: op, Cause: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, op, out)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Cause: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &Error{Op: op, Status: resp.StatusCode, Cause: strings.TrimSpace(string(snippet))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Cause: "decode response: " + err.Error()}
	}
	return nil
}
