package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	testhelpers "github.com/AbhishekM14/order-management-api/internal/test"
)

func seedProduct(repo *testhelpers.ProductRepositoryStub, id int64, quantity int, deleted bool) {
	repo.Put(&model.Product{
		ID:       id,
		Name:     "Widget",
		Price:    decimal.RequireFromString("19.99"),
		Quantity: quantity,
		Deleted:  deleted,
	})
}

func TestStockLedgerCheckAvailability(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	seedProduct(products, 1, 10, false)
	seedProduct(products, 2, 3, false)
	ledger := NewStockLedger(products)

	loaded, err := ledger.CheckAvailability(context.Background(), []model.OrderLineRequest{
		{ProductID: 1, Quantity: 5},
		{ProductID: 2, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 products, got %d", len(loaded))
	}
	if loaded[1] == nil || loaded[1].Quantity != 10 {
		t.Fatalf("expected product 1 with quantity 10, got %+v", loaded[1])
	}
}

func TestStockLedgerDeduplicatesLookups(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	seedProduct(products, 1, 10, false)

	var captured []int64
	products.ListByIDsFn = func(ctx context.Context, ids []int64) ([]model.Product, error) {
		captured = ids
		return []model.Product{{ID: 1, Quantity: 10}}, nil
	}

	ledger := NewStockLedger(products)
	_, err := ledger.CheckAvailability(context.Background(), []model.OrderLineRequest{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(captured) != 1 || captured[0] != 1 {
		t.Fatalf("expected single deduplicated lookup, got %v", captured)
	}
}

func TestStockLedgerMissingProduct(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	seedProduct(products, 1, 10, false)
	ledger := NewStockLedger(products)

	_, err := ledger.CheckAvailability(context.Background(), []model.OrderLineRequest{
		{ProductID: 999, Quantity: 1},
	})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStockLedgerDeletedProduct(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	seedProduct(products, 7, 10, true)
	ledger := NewStockLedger(products)

	_, err := ledger.CheckAvailability(context.Background(), []model.OrderLineRequest{
		{ProductID: 7, Quantity: 1},
	})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted product, got %v", err)
	}
}

func TestStockLedgerInsufficientStock(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	seedProduct(products, 1, 2, false)
	ledger := NewStockLedger(products)

	_, err := ledger.CheckAvailability(context.Background(), []model.OrderLineRequest{
		{ProductID: 1, Quantity: 5},
	})

	var stockErr *domainErrors.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.ProductID != 1 || stockErr.Requested != 5 || stockErr.Available != 2 {
		t.Fatalf("unexpected error details: %+v", stockErr)
	}
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatal("expected error to match ErrInsufficientStock sentinel")
	}
}

func TestStockLedgerRepositoryError(t *testing.T) {
	products := testhelpers.NewProductRepositoryStub()
	products.Err = context.DeadlineExceeded
	ledger := NewStockLedger(products)

	_, err := ledger.CheckAvailability(context.Background(), []model.OrderLineRequest{
		{ProductID: 1, Quantity: 1},
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
