// Package exchange signs and sends requests to the Bittrex v3 REST API.
package exchange

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/coinledger/internal/application"
	"github.com/DanielPopoola/coinledger/internal/config"
	json "github.com/goccy/go-json"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL    string
	signer     *Signer
	httpClient Doer
	logger     *slog.Logger
}

var _ application.ExchangeClient = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the transport used to reach the exchange.
func WithHTTPClient(d Doer) ClientOption {
	return func(c *Client) {
		c.httpClient = d
	}
}

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient builds a client for cfg.BaseURL. A zero cfg.Timeout leaves the transport default in place.
func NewClient(cfg config.ExchangeConfig, signer *Signer, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		signer:  signer,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// MarketTicker returns the exchange's ticker for market with status and body untouched.
func (c *Client) MarketTicker(ctx context.Context, market string) (*application.ExchangeResponse, error) {
	fullURL := c.baseURL + "/markets/" + url.PathEscape(market) + "/ticker"

	status, body, err := c.send(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	return &application.ExchangeResponse{StatusCode: status, Body: body}, nil
}

// ListMarkets returns the symbols of every exchange market in the order the exchange lists them.
// A non-200 reply is passed through without being parsed.
func (c *Client) ListMarkets(ctx context.Context) (*application.ExchangeResponse, error) {
	fullURL := c.baseURL + "/markets"

	status, body, err := c.send(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	resp := &application.ExchangeResponse{StatusCode: status, Body: body}
	if !resp.OK() {
		return resp, nil
	}

	var markets []*Market
	if err := json.Unmarshal(body, &markets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	resp.Symbols = make([]string, 0, len(markets))
	for i, m := range markets {
		if m == nil || m.Symbol == nil {
			return nil, fmt.Errorf("%w: market %d has no symbol", ErrMalformedResponse, i)
		}
		resp.Symbols = append(resp.Symbols, *m.Symbol)
	}

	return resp, nil
}

// send signs and performs one request. There are no retries: a transport
// failure is returned to the caller as is.
func (c *Client) send(ctx context.Context, method, fullURL string, body any) (int, []byte, error) {
	signed, err := c.signer.Sign(method, fullURL, body)
	if err != nil {
		return 0, nil, fmt.Errorf("sign request: %w", err)
	}

	var bodyReader io.Reader
	if signed.Body != nil {
		bodyReader = bytes.NewReader(signed.Body)
	}

	req, err := http.NewRequestWithContext(ctx, signed.Method, signed.URL, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if signed.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	signed.Headers.Apply(req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: signed.Method, URL: signed.URL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Method: signed.Method, URL: signed.URL, Err: err}
	}

	c.logger.Debug("exchange request completed",
		"method", signed.Method,
		"url", signed.URL,
		"status", resp.StatusCode,
	)

	return resp.StatusCode, respBody, nil
}
