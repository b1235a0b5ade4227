package repository

import (
	"context"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	// SoftDelete marks a product unavailable without physical removal.
	SoftDelete(ctx context.Context, id int64) error
	// GetByID returns a non-deleted product.
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	// ListByIDs batch-loads products in one lookup, soft-deleted included so
	// callers can distinguish deleted from absent.
	ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	// List returns a page of non-deleted products and the total count.
	List(ctx context.Context, page model.PageRequest) ([]model.Product, int64, error)
}
