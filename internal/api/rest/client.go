package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tigerrentals-client/internal/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const maxErrorBody = 64 << 10

// TokenSource supplies the bearer token attached to outgoing requests. An
// empty token means no one is signed in.
type TokenSource interface {
	Token() string
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

// Client is a thin JSON wrapper over the marketplace REST API. It never
// retries; a failed call is returned to the caller as is.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	limiter *rate.Limiter
	tracer  trace.Tracer
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource sets where bearer tokens come from
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithRateLimit throttles outgoing requests; rps <= 0 disables throttling
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  staticToken(""),
		tracer:  otel.Tracer("tigerrentals-client/rest"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource swaps the token source after construction. The session
// manager needs the client before it can act as the source.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

type call struct {
	route Route
	path  string
	query url.Values
	body  any
	out   any
	token *string // overrides the token source when set
}

func (c *Client) do(ctx context.Context, cl call) error {
	token := c.tokens.Token()
	if cl.token != nil {
		token = *cl.token
	}
	if cl.route.Level == SecurityAccess && token == "" {
		return fmt.Errorf("%s: %w", cl.route.Name, ErrUnauthorized)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", cl.route.Name, err)
		}
	}

	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, cl.route.Name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", cl.route.Method),
			attribute.String("http.route", cl.route.Path),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	status, err := c.send(ctx, cl, token, requestID)
	span.SetAttributes(attribute.Int("http.status_code", status))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	logger.APIResult(cl.route.Method, cl.path, status, err, "request_id", requestID)
	return err
}

func (c *Client) send(ctx context.Context, cl call, token, requestID string) (int, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return 0, fmt.Errorf("%s: failed to encode request: %w", cl.route.Name, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.route.Method, target, body)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cl.route.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.APICall(cl.route.Method, cl.path, "request_id", requestID)
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cl.route.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, fmt.Errorf("%s: %w", cl.route.Name, &APIError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(data),
		})
	}

	if cl.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil && err != io.EOF {
			return resp.StatusCode, fmt.Errorf("%s: failed to decode response: %w", cl.route.Name, err)
		}
	}
	return resp.StatusCode, nil
}
