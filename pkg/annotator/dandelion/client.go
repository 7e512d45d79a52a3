// Package dandelion provides an annotator.Client implementation backed by the
// Dandelion entity extraction API.
package dandelion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"portal/pkg/annotator"
	"portal/pkg/domain"
	"portal/pkg/serrors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultEndpoint is the public entity extraction endpoint.
const DefaultEndpoint = "https://api.dandelion.eu/datatxt/nex/v1/"

// MaxResponseBytes caps how much of a provider response is read.
const MaxResponseBytes = 4 << 20

// quotaResetLayout is the layout of the X-DL-units-reset header.
const quotaResetLayout = "2006-01-02 15:04:05 -0700"

// Client talks to the Dandelion REST API and fulfills the annotator.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the provider
	token      string       // token is the API token
	endpoint   string
	language   string
	now        func() time.Time

	mu    sync.Mutex
	quota annotator.Quota // quota is the last quota reported by the provider
}

// Option customizes a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithLanguage sets the lang parameter. Defaults to "en".
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// ParseQuota extracts Dandelion quota information from the HTTP response
// headers. Responses without quota headers yield a zero Quota.
func ParseQuota(h http.Header) (annotator.Quota, error) {
	var q annotator.Quota
	left := h.Get("X-DL-units-left")
	if left == "" {
		return q, nil
	}

	var err error
	if q.Remaining, err = strconv.ParseFloat(left, 64); err != nil {
		return annotator.Quota{}, fmt.Errorf("could not parse units left: %w", err)
	}
	if units := h.Get("X-DL-units"); units != "" {
		if q.Units, err = strconv.ParseFloat(units, 64); err != nil {
			return annotator.Quota{}, fmt.Errorf("could not parse units: %w", err)
		}
	}
	if reset := h.Get("X-DL-units-reset"); reset != "" {
		if q.ResetAt, err = time.Parse(quotaResetLayout, reset); err != nil {
			return annotator.Quota{}, fmt.Errorf("could not parse reset at: %w", err)
		}
	}

	return q, nil
}

// Quota returns the last quota reported by the provider.
func (c *Client) Quota() annotator.Quota {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.quota
}

func (c *Client) setQuota(q annotator.Quota) {
	if q.ResetAt.IsZero() && q.Remaining == 0 {
		return
	}
	c.mu.Lock()
	c.quota = q
	c.mu.Unlock()
}

// Annotate sends text to the entity extraction endpoint. It fails fast with
// serrors.ErrRateLimited while the last known quota is exhausted, and with
// serrors.ErrUnauthorized when no token is configured.
func (c *Client) Annotate(ctx context.Context,
	text string,
	minConfidence float64) ([]domain.Annotation, annotator.Quota, error) {
	if c.token == "" {
		return nil, annotator.Quota{}, serrors.With(serrors.ErrUnauthorized, "annotation token is not configured")
	}
	if q := c.Quota(); q.Exhausted(c.now()) {
		return nil, q, serrors.With(serrors.ErrRateLimited, "annotation quota exhausted until %s",
			q.ResetAt.Format(time.RFC3339))
	}
	if strings.TrimSpace(text) == "" {
		return nil, c.Quota(), nil
	}

	// https://dandelion.eu/docs/api/datatxt/nex/v1/
	form := url.Values{}
	form.Set("text", text)
	form.Set("token", c.token)
	form.Set("lang", c.language)
	form.Set("min_confidence", strconv.FormatFloat(minConfidence, 'f', -1, 64))
	form.Set("include", "types,categories,abstract")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, annotator.Quota{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, annotator.Quota{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	q, err := ParseQuota(resp.Header)
	if err != nil {
		return nil, q, fmt.Errorf("could not parse quota: %w", err)
	}
	c.setQuota(q)

	b, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, q, fmt.Errorf("could not read response body: %w", err)
	}
	if len(b) > MaxResponseBytes {
		return nil, q, fmt.Errorf("response exceeds %d bytes", MaxResponseBytes)
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, q, serrors.With(serrors.ErrUnauthorized, "annotation rejected: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, q, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, q, fmt.Errorf("annotate failed: %s", strings.TrimSpace(string(b)))
	}

	annotations, err := DecodeAnnotations(b)
	if err != nil {
		return nil, q, fmt.Errorf("could not decode response: %w", err)
	}

	return annotations, q, nil
}

// DecodeAnnotations decodes the annotations array of an entity extraction
// response. Unknown fields are skipped.
func DecodeAnnotations(b []byte) ([]domain.Annotation, error) {
	var out []domain.Annotation
	d := jx.DecodeBytes(b)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "annotations" {
			return d.Skip()
		}
		if d.Next() == jx.Null {
			return d.Null()
		}

		return d.Arr(func(d *jx.Decoder) error {
			a, err := decodeAnnotation(d)
			if err != nil {
				return err
			}
			out = append(out, a)

			return nil
		})
	}); err != nil {
		return nil, errors.Wrap(err, "annotations")
	}

	return out, nil
}

func decodeAnnotation(d *jx.Decoder) (domain.Annotation, error) {
	var a domain.Annotation
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "spot":
			a.Spot, err = decodeString(d)
		case "label":
			a.Label, err = decodeString(d)
		case "title":
			a.Title, err = decodeString(d)
		case "uri":
			a.URI, err = decodeString(d)
		case "abstract":
			a.Abstract, err = decodeString(d)
		case "start":
			a.Start, err = d.Int()
		case "end":
			a.End, err = d.Int()
		case "confidence":
			a.Confidence, err = d.Float64()
		case "types":
			a.Types, err = decodeStrings(d)
		case "categories":
			a.Categories, err = decodeStrings(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}

		return nil
	})
	if err != nil {
		return domain.Annotation{}, errors.Wrap(err, "annotation")
	}

	return a, nil
}

func decodeString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	var out []string
	err := d.Arr(func(d *jx.Decoder) error {
		s, err := decodeString(d)
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	})

	return out, err
}

// Ensure Client conforms to the annotator.Client interface at compile time.
var _ annotator.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API token
// to interact with the Dandelion API.
func New(httpClient *http.Client, token string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		token:      token,
		endpoint:   DefaultEndpoint,
		language:   "en",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
