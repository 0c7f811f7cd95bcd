package platform

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/superfly/herokuctl/internal/logger"
)

type contextKey struct {
	name string
}

var (
	contextKeyRequestStart = &contextKey{"RequestStart"}
	contextKeyAccept       = &contextKey{"Accept"}
)

// LoggingTransport logs every request and response it sees at debug level.
type LoggingTransport struct {
	InnerTransport http.RoundTripper
	Logger         *logger.Logger
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := context.WithValue(req.Context(), contextKeyRequestStart, time.Now())
	req = req.WithContext(ctx)

	t.logRequest(req)

	resp, err := t.InnerTransport.RoundTrip(req)
	if err != nil {
		t.Logger.Debugf("<-- %s %s failed: %v", req.Method, req.URL, err)
		return resp, err
	}

	t.logResponse(resp)

	return resp, err
}

func (t *LoggingTransport) logRequest(req *http.Request) {
	t.Logger.Debugf("--> %s %s", req.Method, req.URL)
}

func (t *LoggingTransport) logResponse(resp *http.Response) {
	ctx := resp.Request.Context()
	if start, ok := ctx.Value(contextKeyRequestStart).(time.Time); ok {
		t.Logger.Debugf("<-- %d %s (%s)", resp.StatusCode, resp.Request.URL, time.Since(start).Round(time.Millisecond))
	} else {
		t.Logger.Debugf("<-- %d %s", resp.StatusCode, resp.Request.URL)
	}
}

// statusTransport turns non-2xx responses into *Error values so callers can
// tell failure classes apart by status code. It also restores the Accept
// header the request was created with, which heroku.Transport overwrites.
type statusTransport struct {
	inner http.RoundTripper
}

const maxErrorBody = 64 << 10

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if accept, ok := req.Context().Value(contextKeyAccept).(string); ok {
		req = req.Clone(req.Context())
		req.Header.Set("Accept", accept)
	}

	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode/100 == 2 {
		return resp, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	return nil, errorFromResponse(resp, body)
}
