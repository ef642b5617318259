package handlers

import (
	"log/slog"

	"github.com/DanielPopoola/coinledger/internal/application/services"
	"github.com/DanielPopoola/coinledger/internal/domain"
)

type Handlers struct {
	purchaseService *services.PurchaseService
	exchangeService *services.ExchangeService
	logger          *slog.Logger
}

func NewHandlers(
	purchaseService *services.PurchaseService,
	exchangeService *services.ExchangeService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		purchaseService: purchaseService,
		exchangeService: exchangeService,
		logger:          logger,
	}
}

func toDocuments(purchases []*domain.Purchase) []map[string]any {
	docs := make([]map[string]any, 0, len(purchases))
	for _, p := range purchases {
		docs = append(docs, p.Document())
	}
	return docs
}
