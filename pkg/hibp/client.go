// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"bufio"
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://api.pwnedpasswords.com"
	DefaultUserAgent = "pwd-strength-checker/1.0"
	DefaultTimeout   = 5 * time.Second
)

// LookupClient fetches the candidate lines (SUFFIX:COUNT) of every hash sharing a prefix.
type LookupClient interface {
	Range(ctx context.Context, prefix string) ([]string, error)
}

type HTTPClient struct {
	baseURL   string
	userAgent string
	padding   bool
	timeout   time.Duration
	http      *retryablehttp.Client
	log       zerolog.Logger
}

type Option func(*HTTPClient)

func WithBaseURL(url string) Option {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) {
		c.userAgent = ua
	}
}

// WithPadding asks the API to pad responses with fake zero count entries, so the response size
// gives nothing away about the prefix.
func WithPadding(padding bool) Option {
	return func(c *HTTPClient) {
		c.padding = padding
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.timeout = timeout
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *HTTPClient) {
		c.log = logger
	}
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
		log:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.http = initHttpClient(c.timeout)
	return c
}

func initHttpClient(timeout time.Duration) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.Logger = nil

	// A breach check is best effort, one attempt only. Failures are reported to the caller as is.
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DialContext: (&net.Dialer{
				Timeout:   timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       30 * time.Second,
			TLSHandshakeTimeout:   timeout,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return client
}

func (c *HTTPClient) rangeHttpRequest(ctx context.Context, prefix string) (*retryablehttp.Request, error) {
	req, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodGet,
		fmt.Sprintf("%s/range/%s", c.baseURL, prefix),
		nil,
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	if c.padding {
		req.Header.Set("Add-Padding", "true")
	}

	return req, nil
}

// Range only the prefix goes over the wire.
func (c *HTTPClient) Range(ctx context.Context, prefix string) ([]string, error) {
	if !validPrefix(prefix) {
		return nil, errors.Wrapf(ErrInvalidPrefix, "got %q", prefix)
	}

	timer := time.Now()
	req, err := c.rangeHttpRequest(ctx, prefix)
	if err != nil {
		return nil, errors.Wrap(err, "build range request")
	}

	res, err := c.http.Do(req)
	if err != nil {
		if res != nil {
			_ = res.Body.Close()
		}
		return nil, &TransportError{Prefix: prefix, Err: err}
	}

	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn().Err(err).Msgf("error closing body for range %s", prefix)
		}
	}(res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &TransportError{Prefix: prefix, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Prefix: prefix, Err: err}
	}

	c.log.Debug().
		Str("prefix", prefix).
		Str("cf_cache_status", res.Header.Get("CF-Cache-Status")).
		Int64("millis", time.Since(timer).Milliseconds()).
		Msg("range downloaded")

	return splitLines(body), nil
}

func splitLines(body []byte) []string {
	lines := make([]string, 0, bytes.Count(body, []byte("\n"))+1)
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines
}
