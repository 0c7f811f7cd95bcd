// Package platform implements a client for the parts of the Heroku platform
// API the CLI consumes.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/rehttp"
	heroku "github.com/heroku/heroku-go/v5"
	"github.com/superfly/tokenizer"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/superfly/herokuctl/internal/httptracing"
	"github.com/superfly/herokuctl/internal/logger"
)

const (
	acceptHeroku = "application/vnd.heroku+json; version=3"
	acceptJSON   = "application/json"
)

// Client is a platform API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Options are the settings New builds a Client from.
type Options struct {
	// BaseURL is the base URL of the platform API. Defaults to the public API.
	BaseURL string

	// Auth sets up authentication. Required.
	Auth Auth

	// UserAgent is sent with every request.
	UserAgent string

	// MaxRetries denotes how many times a request failing with a temporary
	// network error is retried. HTTP error statuses are never retried.
	MaxRetries int

	// Transport is the innermost RoundTripper. Defaults to a clone of
	// http.DefaultTransport.
	Transport http.RoundTripper

	// Logger receives request and response lines at debug level.
	Logger *logger.Logger
}

// Auth configures credentials on ht. It may replace base, the RoundTripper
// requests are eventually sent through, and returns the one to use.
type Auth func(ht *heroku.Transport, base http.RoundTripper) (http.RoundTripper, error)

// BearerTokenAuth authenticates requests with the given API key.
func BearerTokenAuth(token string) Auth {
	return func(ht *heroku.Transport, base http.RoundTripper) (http.RoundTripper, error) {
		ht.BearerToken = token
		return base, nil
	}
}

// TokenizerAuth routes requests through the tokenizer proxy at url, which
// unseals sealedToken and injects it as the request's credential.
func TokenizerAuth(url, sealedToken, auth string) Auth {
	return func(ht *heroku.Transport, base http.RoundTripper) (http.RoundTripper, error) {
		t, ok := base.(*http.Transport)
		if !ok {
			return nil, errors.New("can't use non *http.Transport")
		}
		t = t.Clone()

		tkzt, err := tokenizer.Transport(
			url,
			tokenizer.WithTransport(t),
			tokenizer.WithSecret(sealedToken, nil),
			tokenizer.WithAuth(auth),
		)
		if err != nil {
			return nil, err
		}

		return tkzt, nil
	}
}

// New returns a Client configured per opts.
func New(opts Options) (*Client, error) {
	if opts.Auth == nil {
		return nil, errors.New("platform: no authentication configured")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = heroku.DefaultURL
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	log := opts.Logger
	if log == nil {
		log = logger.MaybeFromContext(context.Background())
	}

	ht := &heroku.Transport{
		UserAgent: opts.UserAgent,
	}

	base, err := opts.Auth(ht, base)
	if err != nil {
		return nil, fmt.Errorf("platform: failed setting up authentication: %w", err)
	}

	ht.Transport = &statusTransport{
		inner: &LoggingTransport{
			InnerTransport: httptracing.NewTransport(base),
			Logger:         log,
		},
	}

	retry := rehttp.NewTransport(ht,
		rehttp.RetryAll(
			rehttp.RetryMaxRetries(opts.MaxRetries),
			rehttp.RetryTemporaryErr(),
		),
		rehttp.ExpJitterDelay(100*time.Millisecond, 1*time.Second),
	)

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(retry),
		},
	}, nil
}

func (c *Client) get(ctx context.Context, path, accept string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, accept)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return err
	}
	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path, accept string) (*http.Request, error) {
	ctx = context.WithValue(ctx, contextKeyAccept, accept)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create new request, %w", err)
	}

	req.Header.Set("Accept", accept)

	return req, nil
}
