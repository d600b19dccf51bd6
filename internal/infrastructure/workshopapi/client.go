package workshopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// DefaultTimeout is the fixed network budget for backend calls.
const DefaultTimeout = 10 * time.Second

// NetworkError wraps transport-level failures (connection refused, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("workshop api: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BackendError carries a non-2xx backend response. Message is the backend's
// own message field when one was present.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("workshop api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("workshop api: status %d", e.StatusCode)
}

// BackendMessage exposes the backend-provided message for error banners.
func (e *BackendError) BackendMessage() string {
	return e.Message
}

// Client talks to the external workshop REST API. It is the only place that
// touches the backend's wire format; everything past it works with entities.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// NewClientFromEnv creates a client using environment variables.
//
// Supported env vars:
//   - WORKSHOP_API_URL (default: http://localhost:3000/api)
//   - WORKSHOP_API_TIMEOUT (optional; Go duration, e.g. 10s)
func NewClientFromEnv() *Client {
	baseURL := getenvDefault("WORKSHOP_API_URL", "http://localhost:3000/api")

	timeout := DefaultTimeout
	if raw := os.Getenv("WORKSHOP_API_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("[workshop][client] invalid WORKSHOP_API_TIMEOUT=%q, using default", raw)
		} else {
			timeout = parsed
		}
	}

	return NewClient(baseURL, timeout)
}

// do issues a JSON request and decodes the response body into out when it is
// non-nil. Non-2xx responses become *BackendError, transport failures become
// *NetworkError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("workshop api: encoding %s: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("workshop api: building %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[workshop][client] %s failed err=%v", op, err)
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[workshop][client] %s read failed err=%v", op, err)
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		backendErr := &BackendError{StatusCode: resp.StatusCode, Message: backendMessage(raw)}
		log.Printf("[workshop][client] %s rejected status=%d message=%q", op, resp.StatusCode, backendErr.Message)
		return backendErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[workshop][client] %s decode failed err=%v", op, err)
		return &NetworkError{Op: op, Err: err}
	}
	return nil
}

// backendMessage extracts the backend's message field from an error body,
// tolerating bodies that are not JSON at all.
func backendMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
