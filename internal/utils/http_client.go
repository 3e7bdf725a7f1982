package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const userAgent = "go-conf-keeper-client"

// HTTPClient embeds *resty.Client so callers get the whole resty API on a
// client that is already pointed at the settings server.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that resolves relative request paths
// against baseURL, gives up on a request after timeout and asks for JSON
// unless a request overrides the Accept header. A zero timeout disables the
// limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
