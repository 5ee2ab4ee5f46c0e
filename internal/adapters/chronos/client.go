// Package chronos implements the TimetableSource port against the Chronos
// timetable export site.
package chronos

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/cenkalti/backoff/v4"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/chronos/internal/build"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/zerr"
	resty "gopkg.in/resty.v1"
)

var gzipMagic = []byte{0x1f, 0x8b}

var errTooManyRedirects = errors.New("stopped after too many redirects")

// retryableStatus lists the upstream statuses worth another attempt.
var retryableStatus = map[int]struct{}{
	http.StatusTooManyRequests:     {},
	http.StatusInternalServerError: {},
	http.StatusBadGateway:          {},
	http.StatusServiceUnavailable:  {},
	http.StatusGatewayTimeout:      {},
}

// Client implements ports.TimetableSource over HTTP.
type Client struct {
	http   *resty.Client
	cfg    domain.UpstreamConfig
	logger ports.Logger
}

var _ ports.TimetableSource = (*Client)(nil)

// NewClient creates a Client for the upstream described by cfg.
func NewClient(cfg domain.UpstreamConfig, logger ports.Logger) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "chronos/" + build.Version
	}

	maxRedirects := cfg.MaxRedirects
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errTooManyRedirects
			}
			return nil
		})).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept-Encoding", "br, gzip")

	return &Client{
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
	}
}

// FetchTimetable downloads the export document of groupID.
func (c *Client) FetchTimetable(ctx context.Context, groupID string) (string, error) {
	url := c.cfg.TimetableURLFor(groupID)

	body, err := c.get(ctx, url)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			fetchErr.GroupID = groupID
		}
		if fetchErr != nil && fetchErr.Kind == domain.KindNotFound {
			c.logger.Warn(fmt.Sprintf("group %s not found upstream (%s)", groupID, url))
			return "", err
		}
		logged := zerr.With(zerr.Wrap(err, "failed to fetch timetable"), "group_id", groupID)
		if fetchErr != nil {
			logged = zerr.With(logged, "kind", fetchErr.Kind.String())
		}
		c.logger.Error(zerr.With(logged, "url", url))
		return "", err
	}

	return body, nil
}

// get performs a GET with retries and returns the decoded body text.
// Every failure is a *domain.FetchError.
func (c *Client) get(ctx context.Context, url string) (string, error) {
	resp, err := backoff.RetryNotifyWithData(
		func() (*resty.Response, error) {
			return c.attempt(ctx, url)
		},
		backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(max(c.cfg.Retries, 0))), ctx),
		func(err error, d time.Duration) {
			c.logger.Warn(fmt.Sprintf("retrying %s in %s: %v", url, d, err))
		},
	)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return "", fetchErr
		}
		return "", classify(url, err)
	}

	raw, err := decodeBody(resp)
	if err != nil {
		return "", &domain.FetchError{Kind: domain.KindNetworkUnavailable, URL: url, StatusCode: resp.StatusCode(), Err: err}
	}

	c.logger.Info(fmt.Sprintf("fetched %s: %d bytes, xxhash64 %016x", url, len(raw), xxhash.Sum64(raw)))

	return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
}

// attempt runs one request. Non-retryable outcomes are marked permanent.
func (c *Client) attempt(ctx context.Context, url string) (*resty.Response, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, backoff.Permanent(classify(url, err))
	}

	status := resp.StatusCode()
	switch {
	case status == http.StatusNotFound:
		return nil, backoff.Permanent(&domain.FetchError{Kind: domain.KindNotFound, URL: url, StatusCode: status})
	case status >= 200 && status < 300:
		return resp, nil
	}

	fetchErr := &domain.FetchError{Kind: domain.KindUpstreamHTTP, URL: url, StatusCode: status}
	if _, ok := retryableStatus[status]; ok {
		return nil, fetchErr
	}
	return nil, backoff.Permanent(fetchErr)
}

func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.BackoffFactor
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// classify maps a transport error to its FetchError kind.
func classify(url string, err error) *domain.FetchError {
	kind := domain.KindNetworkUnavailable

	var netErr net.Error
	switch {
	case errors.Is(err, errTooManyRedirects):
		kind = domain.KindTooManyRedirects
	case errors.Is(err, context.DeadlineExceeded):
		kind = domain.KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = domain.KindTimeout
	}

	return &domain.FetchError{Kind: kind, URL: url, Err: err}
}

// decodeBody returns the response body with its content encoding undone.
// A gzip body may already be inflated by the client, so the magic bytes decide.
func decodeBody(resp *resty.Response) ([]byte, error) {
	body := resp.Body()

	switch strings.ToLower(strings.TrimSpace(resp.Header().Get("Content-Encoding"))) {
	case "br":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
	case "gzip":
		if !bytes.HasPrefix(body, gzipMagic) {
			return body, nil
		}
		zr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer func() { _ = zr.Close() }()
		return io.ReadAll(zr)
	default:
		return body, nil
	}
}
