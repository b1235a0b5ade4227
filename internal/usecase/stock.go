package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/domain/repository"
)

// StockLedger validates requested quantities against available inventory.
// The availability check here is advisory: the stock decrement itself is a
// conditional update inside the order transaction, so concurrent placements
// can never drive stock negative even when both pass this check.
type StockLedger struct {
	products repository.ProductRepository
}

// NewStockLedger constructs StockLedger.
func NewStockLedger(products repository.ProductRepository) *StockLedger {
	return &StockLedger{products: products}
}

// CheckAvailability batch-loads every referenced product in one lookup and
// verifies each request against it. A missing or soft-deleted product fails
// with ErrNotFound; a quantity above the available stock fails with
// InsufficientStockError. On success the loaded products are returned keyed
// by ID for price snapshotting.
func (l *StockLedger) CheckAvailability(ctx context.Context, requests []model.OrderLineRequest) (map[int64]*model.Product, error) {
	ids := make([]int64, 0, len(requests))
	seen := make(map[int64]struct{}, len(requests))
	for _, req := range requests {
		if _, ok := seen[req.ProductID]; ok {
			continue
		}
		seen[req.ProductID] = struct{}{}
		ids = append(ids, req.ProductID)
	}

	loaded, err := l.products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	products := make(map[int64]*model.Product, len(loaded))
	for i := range loaded {
		products[loaded[i].ID] = &loaded[i]
	}

	for _, req := range requests {
		product, ok := products[req.ProductID]
		if !ok || product.Deleted {
			return nil, fmt.Errorf("product %d: %w", req.ProductID, domainErrors.ErrNotFound)
		}
		if req.Quantity > product.Quantity {
			return nil, &domainErrors.InsufficientStockError{
				ProductID: req.ProductID,
				Requested: req.Quantity,
				Available: product.Quantity,
			}
		}
	}

	return products, nil
}
