package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/coinledger/internal/clock"
	"github.com/DanielPopoola/coinledger/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const purchaseColumns = `id, market, data, created_at, updated_at`

type PurchaseRepository struct {
	q     Executor
	clock clock.Clock
}

var _ domain.PurchaseRepository = (*PurchaseRepository)(nil)

func NewPurchaseRepository(db *DB, clk clock.Clock) *PurchaseRepository {
	if clk == nil {
		clk = clock.System
	}
	return &PurchaseRepository{q: db.Pool, clock: clk}
}

// Create stores fields under market with a fresh time-ordered id and reads the row back.
func (r *PurchaseRepository) Create(ctx context.Context, market string, fields map[string]any) (*domain.Purchase, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate purchase id: %w", err)
	}

	data, err := encodeFields(fields)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO purchases (id, market, data, created_at)
		VALUES ($1, $2, $3::jsonb, $4)
		RETURNING ` + purchaseColumns

	row := r.q.QueryRow(ctx, query, id, market, data, r.clock.NowMillis())
	p, err := scanPurchase(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase: %w", err)
	}
	return p, nil
}

// FindByID retrieves a purchase
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	parsed, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`

	return scanPurchase(r.q.QueryRow(ctx, query, parsed))
}

func (r *PurchaseRepository) FindAll(ctx context.Context) ([]*domain.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	return collectPurchases(rows)
}

func (r *PurchaseRepository) FindByMarket(ctx context.Context, market string) ([]*domain.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE market = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.q.Query(ctx, query, market)
	if err != nil {
		return nil, fmt.Errorf("query purchases by market: %w", err)
	}
	return collectPurchases(rows)
}

// Update merges fields into the stored document. The creation time is left alone;
// updated_at records the change.
func (r *PurchaseRepository) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	parsed, err := parseID(id)
	if err != nil {
		return 0, err
	}

	data, err := encodeFields(fields)
	if err != nil {
		return 0, err
	}

	query := `
		UPDATE purchases
		SET data = data || $2::jsonb,
			updated_at = $3
		WHERE id = $1
	`

	tag, err := r.q.Exec(ctx, query, parsed, data, r.clock.NowMillis())
	if err != nil {
		return 0, fmt.Errorf("failed to update purchase: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PurchaseRepository) Delete(ctx context.Context, id string) (int64, error) {
	parsed, err := parseID(id)
	if err != nil {
		return 0, err
	}

	tag, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, parsed)
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchase: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PurchaseRepository) Markets(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT market FROM purchases ORDER BY market`)
	if err != nil {
		return nil, fmt.Errorf("query markets: %w", err)
	}

	markets, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan markets: %w", err)
	}
	return markets, nil
}

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var m PurchaseModel
	err := row.Scan(&m.ID, &m.Market, &m.Data, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, err
	}
	return toDomainModel(m)
}

func collectPurchases(rows pgx.Rows) ([]*domain.Purchase, error) {
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Purchase, error) {
		var m PurchaseModel
		if err := row.Scan(&m.ID, &m.Market, &m.Data, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		return toDomainModel(m)
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning rows: %w", err)
	}
	return results, nil
}
