// Package httpclient defines the Client contract for a connection-oriented
// HTTP client and Fetch, a consumer written against it. Nothing in this
// package opens a socket; implementations are injected by callers.
package httpclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrUnreachable is returned by Fetch when Connect reports failure.
	ErrUnreachable = errors.New("host unreachable")

	// ErrConnectionRefused is the error a refused connection reports from Do.
	ErrConnectionRefused = errors.New("connection refused")
)

// Client is a pooled HTTP client.
type Client interface {
	// MaxConnections is the connection pool size. Writable.
	MaxConnections() int
	SetMaxConnections(n int)

	// Connect opens a connection to url and reports whether it succeeded.
	Connect(url string) bool

	// Do sends req over the open connection.
	Do(req *http.Request) (*http.Response, error)

	// Close releases the connection.
	Close()
}

// StatusError is returned by Fetch for responses with status >= 400.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Fetch connects to url, issues a GET and returns the response body. The
// client is closed once a connection has been made.
func Fetch(c Client, url string) ([]byte, error) {
	if !c.Connect(url) {
		return nil, fmt.Errorf("connect %s: %w", url, ErrUnreachable)
	}
	defer c.Close()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
