package domain

import "context"

// PurchaseRepository is the persistence contract for purchase documents.
type PurchaseRepository interface {
	// Create inserts fields as a new purchase under market and returns the stored document.
	Create(ctx context.Context, market string, fields map[string]any) (*Purchase, error)
	FindByID(ctx context.Context, id string) (*Purchase, error)
	// FindAll and FindByMarket return documents newest first.
	FindAll(ctx context.Context) ([]*Purchase, error)
	FindByMarket(ctx context.Context, market string) ([]*Purchase, error)
	// Update merges fields into the purchase and reports how many documents changed.
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	// Delete reports how many documents were removed.
	Delete(ctx context.Context, id string) (int64, error)
	// Markets lists the distinct markets that have at least one purchase.
	Markets(ctx context.Context) ([]string, error)
}
