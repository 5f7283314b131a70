// Package client is the storefront's remote action client. It wraps every
// mutating call in the same JSON envelope with the anti-forgery token taken
// from the session cookie jar, and exposes the read calls the UI needs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/publicsuffix"

	"github.com/donaldgifford/storefront-sync/internal/metrics"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

const (
	tracerName = "github.com/donaldgifford/storefront-sync/internal/api/client"

	// HeaderRequestedWith marks a request as an in-page call.
	HeaderRequestedWith = "X-Requested-With"
	// RequestedWithXHR is the value sent in HeaderRequestedWith.
	RequestedWithXHR = "XMLHttpRequest"
	// HeaderRequestID carries a per-call identifier.
	HeaderRequestID = "X-Request-ID"

	// DefaultCSRFCookie is the cookie holding the anti-forgery token.
	DefaultCSRFCookie = "csrftoken"
	// DefaultCSRFHeader is the header the token is echoed in.
	DefaultCSRFHeader = "X-CSRFToken"

	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20
)

// Client talks to a storefront over HTTP. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        http.CookieJar
	endpoints  Endpoints
	csrfCookie string
	csrfHeader string
	timeout    time.Duration
	limiter    *Pacer
	breaker    *gobreaker.CircuitBreaker[*response]
	tracer     trace.Tracer
	log        *slog.Logger
	seed       string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. A client without a cookie jar
// gets the session jar attached.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.log = logger.Component(l, "client")
	}
}

// WithTimeout bounds each call. Zero disables the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithEndpoints overrides the endpoint paths.
func WithEndpoints(e Endpoints) Option {
	return func(c *Client) {
		c.endpoints = e.withDefaults()
	}
}

// WithCSRF overrides the anti-forgery cookie and header names.
func WithCSRF(cookieName, headerName string) Option {
	return func(c *Client) {
		if cookieName != "" {
			c.csrfCookie = cookieName
		}
		if headerName != "" {
			c.csrfHeader = headerName
		}
	}
}

// WithCookies seeds the session jar from a Cookie header value such as
// "sessionid=abc; csrftoken=xyz".
func WithCookies(header string) Option {
	return func(c *Client) {
		c.seed = header
	}
}

// WithRateLimit paces outgoing calls with a token bucket.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		if perSecond > 0 {
			c.limiter = NewPacer(perSecond, burst)
		}
	}
}

// WithBreaker guards calls with a circuit breaker that opens after repeated
// transport failures.
func WithBreaker(cfg BreakerConfig) Option {
	return func(c *Client) {
		c.breaker = newBreaker(cfg, c)
	}
}

// WithTracerProvider sets the tracer provider used for call spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a client targeting baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		endpoints:  DefaultEndpoints(),
		csrfCookie: DefaultCSRFCookie,
		csrfHeader: DefaultCSRFHeader,
		timeout:    defaultTimeout,
		tracer:     otel.GetTracerProvider().Tracer(tracerName),
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		hc := *c.httpClient
		hc.Jar = jar
		c.httpClient = &hc
	}
	c.jar = c.httpClient.Jar

	if c.seed != "" {
		cookies, err := http.ParseCookie(c.seed)
		if err != nil {
			return nil, fmt.Errorf("parsing cookies: %w", err)
		}
		c.jar.SetCookies(c.baseURL, cookies)
	}

	return c, nil
}

// BaseURL returns a copy of the storefront base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Endpoints returns the configured endpoint paths.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// CSRFToken returns the decoded anti-forgery token from the session jar.
func (c *Client) CSRFToken() (string, bool) {
	for _, ck := range c.jar.Cookies(c.baseURL) {
		if ck.Name == c.csrfCookie {
			return decodeCookieValue(ck.Value), true
		}
	}
	return "", false
}

// PerformAction POSTs payload as JSON to endpoint and decodes the JSON reply
// into dst. Any completed HTTP response is decoded whatever its status;
// application failures are reported in the body. The returned error wraps
// ErrTransport when no response arrived, and ErrMalformedResponse when the
// body is not JSON.
func (c *Client) PerformAction(ctx context.Context, endpoint string, payload, dst any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}
	_, err = c.doJSON(ctx, http.MethodPost, endpoint, "", data, dst)
	return err
}

// Fetch GETs path with the given raw query and decodes the JSON reply into
// dst. Unlike PerformAction, a status of 400 or above is returned as a
// *StatusError and dst is left untouched; reads carry no failure envelope.
func (c *Client) Fetch(ctx context.Context, path, rawQuery string, dst any) error {
	resp, err := c.send(ctx, http.MethodGet, path, rawQuery, nil, "application/json")
	if err != nil {
		return err
	}
	if resp.status >= http.StatusBadRequest {
		record(path, metrics.OutcomeAppFailure)
		return &StatusError{StatusCode: resp.status, Path: path}
	}
	return decode(path, resp, dst)
}

// LoadPage GETs a full HTML page. Unlike the JSON calls it treats a non-2xx
// status as an error.
func (c *Client) LoadPage(ctx context.Context, path string) (string, error) {
	resp, err := c.send(ctx, http.MethodGet, path, "", nil, "text/html")
	if err != nil {
		return "", err
	}
	if resp.status >= http.StatusBadRequest {
		record(path, metrics.OutcomeAppFailure)
		return "", &StatusError{StatusCode: resp.status, Path: path}
	}
	record(path, metrics.OutcomeOK)
	return string(resp.body), nil
}

// Resolve resolves a page-relative reference against the base URL.
func (c *Client) Resolve(ref string) (*url.URL, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("parsing reference %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(r), nil
}

type response struct {
	status int
	body   []byte
}

func (c *Client) doJSON(
	ctx context.Context,
	method, path, rawQuery string,
	body []byte,
	dst any,
) (int, error) {
	resp, err := c.send(ctx, method, path, rawQuery, body, "application/json")
	if err != nil {
		return 0, err
	}
	return resp.status, decode(path, resp, dst)
}

// decode unmarshals a JSON reply and records the call's outcome.
func decode(path string, resp *response, dst any) error {
	if err := json.Unmarshal(resp.body, dst); err != nil {
		record(path, metrics.OutcomeMalformed)
		return fmt.Errorf("%w: decoding %s (HTTP %d): %w",
			ErrMalformedResponse, path, resp.status, err)
	}
	if resp.status >= http.StatusBadRequest {
		record(path, metrics.OutcomeAppFailure)
	} else {
		record(path, metrics.OutcomeOK)
	}
	return nil
}

func record(path, outcome string) {
	metrics.RemoteActionsTotal.WithLabelValues(path, outcome).Inc()
}

// send performs one request. Only the absence of a response is an error.
func (c *Client) send(
	ctx context.Context,
	method, path, rawQuery string,
	body []byte,
	accept string,
) (*response, error) {
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "storefront "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.execute(ctx, method, path, rawQuery, body, accept)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		metrics.RemoteActionDuration.WithLabelValues(path, metrics.OutcomeTransportFailure).Observe(elapsed)
		record(path, metrics.OutcomeTransportFailure)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.log.Warn("storefront call failed", "method", method, "path", path, "error", err)
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if resp.status >= http.StatusBadRequest {
		outcome = metrics.OutcomeAppFailure
		span.SetStatus(codes.Error, http.StatusText(resp.status))
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.status))
	metrics.RemoteActionDuration.WithLabelValues(path, outcome).Observe(elapsed)

	c.log.Debug("storefront call",
		"method", method,
		"path", path,
		"status", resp.status,
		"duration", time.Since(start),
	)
	return resp, nil
}

func (c *Client) execute(
	ctx context.Context,
	method, path, rawQuery string,
	body []byte,
	accept string,
) (*response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransport, err)
		}
	}

	req, err := c.newRequest(ctx, method, path, rawQuery, body, accept)
	if err != nil {
		return nil, err
	}

	if c.breaker == nil {
		return c.roundTrip(req)
	}
	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.roundTrip(req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s: %w", ErrTransport, c.baseURL.Host, err)
	}
	return resp, err
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path, rawQuery string,
	body []byte,
	accept string,
) (*http.Request, error) {
	u, err := c.Resolve(path)
	if err != nil {
		return nil, err
	}
	u.RawQuery = rawQuery

	var bodyReader io.Reader = http.NoBody
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set(HeaderRequestedWith, RequestedWithXHR)
	req.Header.Set(HeaderRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		if token, ok := c.CSRFToken(); ok {
			req.Header.Set(c.csrfHeader, token)
		}
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return req, nil
}

func (c *Client) roundTrip(req *http.Request) (*response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: sending request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", ErrTransport, err)
	}
	return &response{status: resp.StatusCode, body: data}, nil
}
