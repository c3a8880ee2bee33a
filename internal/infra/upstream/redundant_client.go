// Package upstream holds the HTTP clients of the external routing and weather services.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"fleetroute/config"
	"fleetroute/internal/domain/lifecycle"
	"fleetroute/internal/infra/metrics"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response body ends up in the error
const maxErrorBody = 512

// StatusError is returned for non-2xx upstream responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.StatusCode) + ": " + e.Body
}

// Request describes one call to an upstream; Path and Query are appended to
// the tier's base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Option configures a RedundantClient
type Option func(*RedundantClient)

// WithAPIKeyQuery sends the API key as the named query parameter instead of
// the Authorization header.
func WithAPIKeyQuery(param string) Option {
	return func(c *RedundantClient) {
		c.apiKeyQuery = param
	}
}

// WithHTTPClients replaces the primary and mirror transports.
func WithHTTPClients(primary, mirror *http.Client) Option {
	return func(c *RedundantClient) {
		c.primary = primary
		c.mirror = mirror
	}
}

// RedundantClient calls a primary endpoint with a bounded timeout and, on any
// failure, a public mirror without a client timeout. There are no further
// retries. The API key is only sent to the mirror.
type RedundantClient struct {
	service     string
	primaryURL  string
	mirrorURL   string
	apiKey      string
	apiKeyQuery string
	primary     *http.Client
	mirror      *http.Client
	limiter     *rate.Limiter
	logger      *slog.Logger
}

// NewRedundantClient creates a client for the named upstream service.
func NewRedundantClient(service string, cfg config.EndpointConfig, logger *slog.Logger, opts ...Option) *RedundantClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = lifecycle.DefaultTimeout
	}

	c := &RedundantClient{
		service:    service,
		primaryURL: strings.TrimRight(cfg.PrimaryURL, "/"),
		mirrorURL:  strings.TrimRight(cfg.MirrorURL, "/"),
		apiKey:     cfg.APIKey,
		primary:    &http.Client{Timeout: timeout},
		mirror:     &http.Client{},
		logger:     logger,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Service returns the upstream name used in logs and metrics.
func (c *RedundantClient) Service() string {
	return c.service
}

// Do performs the request against the primary, then the mirror, decoding the
// first successful JSON response into out.
func (c *RedundantClient) Do(ctx context.Context, req *Request, out any) error {
	if c.primaryURL == "" && c.mirrorURL == "" {
		return errors.Errorf("%s: no endpoint configured", c.service)
	}

	var primaryErr error
	if c.primaryURL != "" {
		primaryErr = c.attempt(ctx, metrics.TierPrimary, c.primary, c.primaryURL, false, req, out)
		if primaryErr == nil {
			return nil
		}
		if c.mirrorURL == "" {
			return errors.Wrapf(primaryErr, "%s primary", c.service)
		}
		c.logger.Warn("Upstream primary failed, trying mirror",
			slog.String("service", c.service),
			slog.Any("error", primaryErr),
		)
	}

	if err := c.attempt(ctx, metrics.TierMirror, c.mirror, c.mirrorURL, true, req, out); err != nil {
		if primaryErr != nil {
			return errors.Wrapf(err, "%s mirror (primary: %v)", c.service, primaryErr)
		}

		return errors.Wrapf(err, "%s mirror", c.service)
	}

	return nil
}

func (c *RedundantClient) attempt(ctx context.Context, tier string, client *http.Client, base string, withKey bool, req *Request, out any) error {
	started := time.Now()
	err := c.send(ctx, client, base, withKey, req, out)
	metrics.UpstreamDuration.WithLabelValues(c.service, tier).Observe(time.Since(started).Seconds())

	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	metrics.UpstreamRequests.WithLabelValues(c.service, tier, outcome).Inc()

	return err
}

func (c *RedundantClient) send(ctx context.Context, client *http.Client, base string, withKey bool, req *Request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "rate limiter")
		}
	}

	target, err := url.Parse(base + req.Path)
	if err != nil {
		return errors.WithStack(err)
	}
	query := target.Query()
	for key, values := range req.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	if withKey && c.apiKey != "" && c.apiKeyQuery != "" {
		query.Set(c.apiKeyQuery, c.apiKey)
	}
	target.RawQuery = query.Encode()

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if withKey && c.apiKey != "" && c.apiKeyQuery == "" {
		httpReq.Header.Set("Authorization", c.apiKey)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	return decodeInto(payload, out)
}

// decodeInto unmarshals payload into a fresh value and only then replaces
// *out, so a body rejected halfway leaves out untouched.
func decodeInto(payload []byte, out any) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return errors.Errorf("decode response: non-nil pointer required, got %T", out)
	}

	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(payload, fresh.Interface()); err != nil {
		return errors.Wrap(err, "decode response")
	}
	target.Elem().Set(fresh.Elem())

	return nil
}
