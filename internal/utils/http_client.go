package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-invoice-client"

// HTTPClient embeds *resty.Client preconfigured for the JSON API of the
// invoice server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that resolves relative request paths
// against baseURL. A zero timeout leaves requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
