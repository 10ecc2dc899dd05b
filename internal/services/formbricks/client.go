package formbricks

import (
	"net/http"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// HTTPDoer describes the HTTP client used by the Formbricks client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Formbricks Management API.
type Client struct {
	baseURL string
	apiKey  string
	client  HTTPDoer
}

// NewClient constructs a Formbricks client. A nil httpClient falls back to a
// default client with the fixed per-request timeout.
func NewClient(baseURL, apiKey string, httpClient HTTPDoer) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  httpClient,
	}
}
