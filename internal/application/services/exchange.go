package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/coinledger/internal/application"
)

// LegacyTickerMarket is the market served by the legacy bitcoin endpoint.
const LegacyTickerMarket = "BTC-USD"

// ExchangeService forwards read-only market queries to the exchange.
// Non-200 exchange replies are returned as-is for the caller to relay.
type ExchangeService struct {
	client application.ExchangeClient
	logger *slog.Logger
}

func NewExchangeService(client application.ExchangeClient, logger *slog.Logger) *ExchangeService {
	return &ExchangeService{
		client: client,
		logger: logger,
	}
}

func (s *ExchangeService) Ticker(ctx context.Context, market string) (*application.ExchangeResponse, error) {
	market = strings.TrimSpace(market)
	if market == "" {
		return nil, application.NewInvalidInputError(ErrEmptyMarket)
	}

	resp, err := s.client.MarketTicker(ctx, market)
	if err != nil {
		s.logger.Error("exchange ticker request failed", "market", market, "error", err)
		return nil, application.NewInternalError(err)
	}

	if !resp.OK() {
		s.logger.Warn("exchange rejected ticker request", "market", market, "status", resp.StatusCode)
	}
	return resp, nil
}

func (s *ExchangeService) Markets(ctx context.Context) (*application.ExchangeResponse, error) {
	resp, err := s.client.ListMarkets(ctx)
	if err != nil {
		s.logger.Error("exchange market listing failed", "error", err)
		return nil, application.NewInternalError(err)
	}

	if !resp.OK() {
		s.logger.Warn("exchange rejected market listing", "status", resp.StatusCode)
	}
	return resp, nil
}
