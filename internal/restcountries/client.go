// Package restcountries is a read-only client for the REST Countries v3.1
// service, plus the composed directory and detail loaders built on it.
package restcountries

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"countryexplorer/internal/country"
	"countryexplorer/internal/logging"
	"countryexplorer/internal/trace"
)

// DefaultBaseURL is the public REST Countries v3.1 endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// DefaultTimeout bounds a single HTTP request.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps response bodies; /all is roughly 100 KiB with field
// selection, so this leaves ample room.
const maxBodyBytes = 8 << 20

// directoryFields selects the fields /all returns. The service rejects
// /all requests without a field list.
var directoryFields = []string{"name", "cca3", "population", "region", "subregion", "capital", "flags", "flag"}

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

// Client issues requests against one REST Countries base URL.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	tracer  oteltrace.Tracer
	log     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracing records spans through p.
func WithTracing(p *trace.Provider) Option {
	return func(c *Client) { c.tracer = p.Tracer("countryexplorer/restcountries") }
}

// WithLogger sets the logger used for skipped records and failures.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: DefaultTimeout},
		tracer:  trace.Disabled().Tracer("countryexplorer/restcountries"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ByName fetches the single country whose name matches name exactly.
func (c *Client) ByName(ctx context.Context, name string) (country.Country, error) {
	ctx, span := c.tracer.Start(ctx, "restcountries.lookup_name",
		oteltrace.WithAttributes(attribute.String("country.name", name)))
	defer span.End()

	u := c.namePath(name)
	u.RawQuery = "fullText=true"
	body, err := c.get(ctx, span, u)
	if err != nil {
		return country.Country{}, err
	}
	records, err := decodeArray[apiCountry](body, "decode name lookup", false)
	if err != nil {
		recordError(span, err)
		return country.Country{}, err
	}
	got, err := records[0].toCountry()
	if err != nil {
		recordError(span, err)
		return country.Country{}, fmt.Errorf("decode name lookup: %w", err)
	}
	if got.CommonName == "" {
		recordError(span, errMissingName)
		return country.Country{}, fmt.Errorf("decode name lookup: %w", errMissingName)
	}
	return got, nil
}

// namePath appends /name/<name> to the base URL verbatim. JoinPath would
// clean dot segments and turn a lookup of ".." into a request for the root.
func (c *Client) namePath(name string) *url.URL {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/name/" + name
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/name/" + url.PathEscape(name)
	return &u
}

// ByCodes fetches the countries for the given alpha codes in one request.
// The response may omit codes the service does not know.
func (c *Client) ByCodes(ctx context.Context, codes []string) ([]country.Country, error) {
	ctx, span := c.tracer.Start(ctx, "restcountries.lookup_codes",
		oteltrace.WithAttributes(attribute.Int("country.code_count", len(codes))))
	defer span.End()

	escaped := make([]string, len(codes))
	for i, code := range codes {
		escaped[i] = url.QueryEscape(code)
	}
	u := c.baseURL.JoinPath("alpha")
	u.RawQuery = "codes=" + strings.Join(escaped, ",")
	body, err := c.get(ctx, span, u)
	if err != nil {
		return nil, err
	}
	out, err := decodeCountries(body, "decode code lookup", true, c.skipped)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("country.result_count", len(out)))
	return out, nil
}

// All fetches the full country collection.
func (c *Client) All(ctx context.Context) ([]country.Country, error) {
	ctx, span := c.tracer.Start(ctx, "restcountries.all")
	defer span.End()

	u := c.baseURL.JoinPath("all")
	u.RawQuery = "fields=" + strings.Join(directoryFields, ",")
	body, err := c.get(ctx, span, u)
	if err != nil {
		return nil, err
	}
	out, err := decodeCountries(body, "decode directory", true, c.skipped)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("country.result_count", len(out)))
	return out, nil
}

func (c *Client) get(ctx context.Context, span oteltrace.Span, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("GET %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		err := &StatusError{Code: resp.StatusCode, URL: u.Redacted()}
		recordError(span, err)
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("read %s: %w", u.Redacted(), err)
	}
	return body, nil
}

func (c *Client) skipped(err error) {
	c.log.Warn(err, "skipping undecodable country record")
}

func recordError(span oteltrace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
