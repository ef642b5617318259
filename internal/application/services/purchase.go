package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/coinledger/internal/application"
	"github.com/DanielPopoola/coinledger/internal/domain"
	"github.com/DanielPopoola/coinledger/internal/validation"
)

var (
	ErrInvalidPurchase = errors.New("purchase body does not match schema")
	ErrEmptyMarket     = errors.New("market is required")
)

// PurchaseSchema is the closed set of client-writable purchase fields.
var PurchaseSchema = validation.Schema{
	domain.FieldDollarValue: validation.Numeric,
	domain.FieldEuroValue:   validation.Numeric,
	domain.FieldBTCPrice:    validation.Numeric,
	domain.FieldBTCVolume:   validation.Numeric,
}

type PurchaseService struct {
	purchaseRepo domain.PurchaseRepository
	logger       *slog.Logger
}

func NewPurchaseService(purchaseRepo domain.PurchaseRepository, logger *slog.Logger) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// Create stores a purchase under market. Every schema field must be present.
func (s *PurchaseService) Create(ctx context.Context, market string, body any) (*domain.Purchase, error) {
	market = strings.TrimSpace(market)
	if market == "" {
		return nil, application.NewInvalidInputError(ErrEmptyMarket)
	}

	if !validation.Validate(body, PurchaseSchema, true) {
		return nil, application.NewInvalidInputError(ErrInvalidPurchase)
	}

	purchase, err := s.purchaseRepo.Create(ctx, market, body.(map[string]any))
	if err != nil {
		s.logger.Error("failed to create purchase", "market", market, "error", err)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("purchase created", "id", purchase.ID, "market", market)
	return purchase, nil
}

func (s *PurchaseService) Get(ctx context.Context, id string) (*domain.Purchase, error) {
	if !validation.IsValidID(id) {
		return nil, application.NewInvalidInputError(domain.ErrInvalidID)
	}

	purchase, err := s.purchaseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrPurchaseNotFound) {
			return nil, application.NewNotFoundError(err)
		}
		return nil, application.NewInternalError(err)
	}
	return purchase, nil
}

func (s *PurchaseService) List(ctx context.Context) ([]*domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return purchases, nil
}

func (s *PurchaseService) ListByMarket(ctx context.Context, market string) ([]*domain.Purchase, error) {
	purchases, err := s.purchaseRepo.FindByMarket(ctx, market)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return purchases, nil
}

func (s *PurchaseService) Markets(ctx context.Context) ([]string, error) {
	markets, err := s.purchaseRepo.Markets(ctx)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return markets, nil
}

// Update merges the supplied fields into an existing purchase. Fields may be
// omitted but unknown or mistyped ones are rejected. It reports whether a
// document was modified.
func (s *PurchaseService) Update(ctx context.Context, id string, body any) (bool, error) {
	if !validation.IsValidID(id) {
		return false, application.NewInvalidInputError(domain.ErrInvalidID)
	}

	if !validation.Validate(body, PurchaseSchema, false) {
		return false, application.NewInvalidInputError(ErrInvalidPurchase)
	}

	modified, err := s.purchaseRepo.Update(ctx, id, body.(map[string]any))
	if err != nil {
		s.logger.Error("failed to update purchase", "id", id, "error", err)
		return false, application.NewInternalError(err)
	}

	return modified > 0, nil
}

// Delete reports whether a document was removed.
func (s *PurchaseService) Delete(ctx context.Context, id string) (bool, error) {
	if !validation.IsValidID(id) {
		return false, application.NewInvalidInputError(domain.ErrInvalidID)
	}

	deleted, err := s.purchaseRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete purchase", "id", id, "error", err)
		return false, application.NewInternalError(err)
	}

	if deleted > 0 {
		s.logger.Info("purchase deleted", "id", id)
	}
	return deleted > 0, nil
}
