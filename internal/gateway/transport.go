package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
)

// errRetryBlocked is returned when the rate limit waiter tries to send a request a second time.
var errRetryBlocked = errors.New("request was not retried after a secondary rate limit response")

type attemptsKey struct{}

// attemptCounter tags each outgoing request with a counter shared by every attempt to send it.
type attemptCounter struct {
	base http.RoundTripper
}

func (t attemptCounter) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := context.WithValue(req.Context(), attemptsKey{}, new(atomic.Int32))
	return t.base.RoundTrip(req.WithContext(ctx))
}

// singleAttempt sits below the rate limit waiter and refuses any attempt after the first.
// The waiter re-sends a request immediately when a secondary limit has already lifted.
type singleAttempt struct {
	base http.RoundTripper
}

func (t singleAttempt) RoundTrip(req *http.Request) (*http.Response, error) {
	if n, ok := req.Context().Value(attemptsKey{}).(*atomic.Int32); ok && n.Add(1) > 1 {
		return nil, errRetryBlocked
	}
	return t.base.RoundTrip(req)
}

// statusError carries a non-200 GraphQL response, whose body has already been closed.
type statusError struct {
	resp *http.Response
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GraphQL endpoint returned %s", e.resp.Status)
}

// statusTransport turns non-200 responses into a statusError so the GraphQL client
// reports them with their status code and headers intact.
type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp.StatusCode == http.StatusOK {
		return resp, err
	}
	resp.Body.Close()
	return nil, &statusError{resp: resp}
}

// withStatusErrors returns a copy of client whose transport reports non-200 responses as errors.
func withStatusErrors(client *http.Client) *http.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *client
	wrapped.Transport = statusTransport{base: base}
	return &wrapped
}
