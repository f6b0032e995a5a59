// Package api is the client of the Petopia REST API.
// Every exported method issues exactly one HTTP request. There are no retries and no caching.
package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/schema"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
	"github.com/hnh-zeal/petopia-frontend-sub000/middleware"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Transport is optional and mostly useful in tests.
	Transport http.RoundTripper
}

// Client talks to the API on behalf of one actor. The zero token means anonymous calls.
type Client struct {
	baseURL string
	http    *http.Client
	query   *schema.Encoder
	token   string
}

// New creates a Client for cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := cfg.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	enc := schema.NewEncoder()
	enc.SetAliasTag("schema")
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout, Transport: tr},
		query:   enc,
	}, nil
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// envelope is the failure shape `{ error: true, message }`.
type envelope struct {
	Error   any    `json:"error"`
	Message string `json:"message"`
}

func (e envelope) failed() bool {
	b, ok := e.Error.(bool)
	return ok && b
}

func (c *Client) do(ctx context.Context, method, path string, params *ListParams, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := sonic.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: marshal request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	target := c.baseURL + path
	if params != nil {
		q, err := c.encodeQuery(*params)
		if err != nil {
			return err
		}
		if q != "" {
			target += "?" + q
		}
	}

	resp, raw, err := c.roundTrip(ctx, method, target, contentType, body)
	if err != nil {
		return err
	}
	return decode(resp.StatusCode, raw, out)
}

func (c *Client) roundTrip(ctx context.Context, method, target, contentType string, body io.Reader) (*http.Response, []byte, error) {
	route := routeOf(strings.TrimPrefix(strings.SplitN(target, "?", 2)[0], c.baseURL))
	ctx, span := middleware.StartSpan(ctx, "api "+method+" "+route, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, nil, fmt.Errorf("api: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		middleware.ObserveAPICall(method, route, 0, time.Since(start))
		middleware.RecordError(ctx, err)
		return nil, nil, fmt.Errorf("%w: %s %s: %w", domain.ErrUpstream, method, route, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	middleware.ObserveAPICall(method, route, resp.StatusCode, time.Since(start))
	middleware.AddSpanAttributes(ctx,
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.response.status_code", resp.StatusCode),
	)
	if err != nil {
		middleware.RecordError(ctx, err)
		return nil, nil, fmt.Errorf("%w: read response: %w", domain.ErrUpstream, err)
	}
	return resp, raw, nil
}

// decode turns a raw response into out, or into *domain.APIError / domain.ErrUpstream.
func decode(status int, raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	isJSON := len(raw) > 0 && sonic.Valid(raw)

	if status < 200 || status >= 300 {
		if !isJSON {
			return fmt.Errorf("%w: status=%d", domain.ErrUpstream, status)
		}
		var env envelope
		_ = sonic.Unmarshal(raw, &env)
		return &domain.APIError{Status: status, Message: env.Message}
	}

	if len(raw) == 0 {
		return nil
	}
	if !isJSON {
		return fmt.Errorf("%w: response is not json", domain.ErrUpstream)
	}
	if raw[0] == '{' {
		var env envelope
		if err := sonic.Unmarshal(raw, &env); err == nil && env.failed() {
			return &domain.APIError{Status: status, Message: env.Message}
		}
	}
	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrUpstream, err)
	}
	return nil
}

// routeOf replaces numeric path segments so metrics and spans keep a low cardinality.
func routeOf(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s != "" && strings.Trim(s, "0123456789") == "" {
			segs[i] = ":id"
		}
	}
	return strings.Join(segs, "/")
}

func list[T any](ctx context.Context, c *Client, path string, p ListParams) (*domain.Page[T], error) {
	var page domain.Page[T]
	if err := c.do(ctx, http.MethodGet, path, &p, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func send[T any](ctx context.Context, c *Client, method, path string, in any) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsAPIError reports whether err came back from the API as a failure envelope.
func IsAPIError(err error) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr)
}
