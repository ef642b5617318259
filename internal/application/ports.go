package application

import (
	"context"
	"net/http"
)

// ExchangeResponse is a normalized reply from the exchange.
// Body is the raw response body. Symbols is populated only for a successful market listing.
type ExchangeResponse struct {
	StatusCode int
	Body       []byte
	Symbols    []string
}

// OK reports whether the exchange answered 200.
func (r *ExchangeResponse) OK() bool {
	return r.StatusCode == http.StatusOK
}

// ExchangeClient is the port for the external exchange API.
type ExchangeClient interface {
	MarketTicker(ctx context.Context, market string) (*ExchangeResponse, error)
	ListMarkets(ctx context.Context) (*ExchangeResponse, error)
}
