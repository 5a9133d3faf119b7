// Package fetch retrieves raw HTML pages over plain HTTP(S) GET.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchError reports a failed page retrieval: either a transport failure
// (StatusCode zero, Err set) or a non-success HTTP status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: http status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client issues one GET per Fetch call over a shared connection pool.
type Client struct {
	http *resty.Client
}

// NewClient builds a client with the conventional user-agent header and a
// hard request timeout. Retries are disabled; the caller decides whether a
// failed URL is fatal or skippable.
func NewClient(userAgent string, timeout time.Duration) *Client {
	c := resty.New()
	c.SetHeader("User-Agent", userAgent)
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	return &Client{http: c}
}

// HTTPClient exposes the underlying transport, used by tests to install
// mock responders.
func (c *Client) HTTPClient() *http.Client {
	return c.http.GetClient()
}

// Fetch performs one GET for url and returns the response body as text.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if !res.IsSuccess() {
		return "", &FetchError{URL: url, StatusCode: res.StatusCode()}
	}
	return res.String(), nil
}
