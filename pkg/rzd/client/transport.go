package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/rzdrail/rzdrail/pkg/rzd"
)

const (
	defaultUserAgent   = "rzdrail 0.1.0"
	defaultHTTPTimeout = 30 * time.Second
	defaultMaxRetries  = 3

	refererValue = "rzd.ru"
)

// Response is a raw upstream reply. Cookies carry the upstream session
// that two-phase queries must quote when polling for their data.
type Response struct {
	Body    []byte
	Cookies []*http.Cookie
}

// Transport fetches one URL from the upstream. The production
// implementation is HTTPTransport.
type Transport interface {
	Get(ctx context.Context, requestURL string, header http.Header) (*Response, error)
}

// HTTPTransport talks to the upstream over HTTP with retries on
// transient failures.
type HTTPTransport struct {
	Client     *http.Client
	UserAgent  string
	MaxRetries uint64
}

func NewHTTPTransport(timeout time.Duration, maxRetries uint64, userAgent string) *HTTPTransport {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &HTTPTransport{
		Client:     &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
		MaxRetries: maxRetries,
	}
}

func (t *HTTPTransport) Get(ctx context.Context, requestURL string, header http.Header) (*Response, error) {
	var response *Response

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(&rzd.TransportError{Err: err})
		}

		for name, values := range header {
			req.Header[name] = values
		}
		// The upstream answers HTML instead of JSON without these
		req.Header.Set("User-Agent", t.UserAgent)
		req.Header.Set("Referer", refererValue)

		resp, err := t.Client.Do(req)
		if err != nil {
			return &rzd.TransportError{Err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			statusErr := &rzd.TransportError{Err: fmt.Errorf("server returned %s", resp.Status)}

			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				log.Debug().Str("status", resp.Status).Msg("Retrying upstream request")
				return statusErr
			}

			return backoff.Permanent(statusErr)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &rzd.TransportError{Err: err}
		}

		response = &Response{Body: body, Cookies: resp.Cookies()}

		return nil
	}

	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), t.MaxRetries), ctx)
	if err := backoff.Retry(operation, retryPolicy); err != nil {
		return nil, err
	}

	return response, nil
}
