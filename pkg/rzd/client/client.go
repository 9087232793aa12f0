package client

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/rzdrail/rzdrail/pkg/rzd"
	"github.com/rzdrail/rzdrail/pkg/rzd/decode"
	"github.com/rzdrail/rzdrail/pkg/rzd/query"
)

const (
	// DefaultPollInterval is how long the upstream usually needs to
	// prepare an answer for a two-phase query.
	DefaultPollInterval = 1500 * time.Millisecond
	// DefaultPollAttempts is how many times the data is asked for
	// before the upstream is declared overloaded.
	DefaultPollAttempts = 3
)

// Query is a search the client can run: it renders its request URLs
// and decodes the reply into its result type.
type Query[T any] interface {
	Kind() query.Kind
	RequestURL() string
	DataRequestURL(id rzd.RequestID) string
	Decode(data []byte) (decode.Outcome[T], error)
}

// Client runs queries against the upstream through a Transport.
type Client struct {
	Transport    Transport
	PollInterval time.Duration
	PollAttempts uint64
}

func New(transport Transport) *Client {
	return &Client{
		Transport:    transport,
		PollInterval: DefaultPollInterval,
		PollAttempts: DefaultPollAttempts,
	}
}

// Get runs a query and returns its result. A nil result with a nil
// error means the upstream answered and found nothing.
func Get[T any](ctx context.Context, c *Client, q Query[T]) (*T, error) {
	if q.Kind() == query.Simple {
		return simpleRequest(ctx, c, q)
	}

	return twoPhaseRequest(ctx, c, q)
}

func simpleRequest[T any](ctx context.Context, c *Client, q Query[T]) (*T, error) {
	requestURL := q.DataRequestURL(0)
	log.Debug().Str("url", requestURL).Msg("Requesting data")

	resp, err := c.Transport.Get(ctx, requestURL, nil)
	if err != nil {
		return nil, err
	}

	if len(resp.Body) == 0 {
		log.Warn().Msg("Reply body is empty")
		return nil, nil
	}

	outcome, err := q.Decode(resp.Body)
	if err != nil {
		return nil, err
	}

	if outcome.Empty() {
		return nil, nil
	}

	return outcome.Value, nil
}

func twoPhaseRequest[T any](ctx context.Context, c *Client, q Query[T]) (*T, error) {
	requestURL := q.RequestURL()
	log.Debug().Str("url", requestURL).Msg("Requesting reply id")

	resp, err := c.Transport.Get(ctx, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, &rzd.DecodeError{Reason: "id reply body is empty"}
	}

	id, err := decode.ReplyID(resp.Body)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if cookies := cookieHeader(resp.Cookies); cookies != "" {
		header.Set("Cookie", cookies)
	}

	dataURL := q.DataRequestURL(id)
	log.Debug().Str("url", dataURL).Msg("Polling for data")

	interval := c.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	attempts := c.PollAttempts
	if attempts == 0 {
		attempts = DefaultPollAttempts
	}

	// The upstream needs a moment to prepare the answer, so each
	// attempt waits first.
	if err := waitInterval(ctx, interval); err != nil {
		return nil, err
	}

	var (
		found *T
		empty bool
	)

	operation := func() error {
		resp, err := c.Transport.Get(ctx, dataURL, header)
		if err != nil {
			return backoff.Permanent(err)
		}

		if len(resp.Body) == 0 {
			log.Warn().Msg("Reply body is empty")
			empty = true
			return nil
		}

		outcome, err := q.Decode(resp.Body)
		if err != nil {
			if errors.Is(err, rzd.ErrReplyNotReady) {
				log.Debug().Msg("Reply is not ready yet")
				return err
			}

			return backoff.Permanent(err)
		}

		if outcome.Empty() {
			empty = true
			return nil
		}

		found = outcome.Value

		return nil
	}

	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), attempts-1), ctx)
	if err := backoff.Retry(operation, retryPolicy); err != nil {
		if errors.Is(err, rzd.ErrReplyNotReady) {
			return nil, rzd.ErrServerOverloaded
		}

		return nil, err
	}

	if empty {
		return nil, nil
	}

	return found, nil
}

// cookieHeader renders the session cookies of an id reply as a Cookie
// header value: sorted, deduplicated and joined with "; ".
func cookieHeader(cookies []*http.Cookie) string {
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}

	sort.Strings(pairs)
	pairs = slices.Compact(pairs)

	return strings.Join(pairs, "; ")
}

func waitInterval(ctx context.Context, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
