package usecase

import (
	"context"
	"log/slog"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/domain/repository"
)

// ProductCache is a read-through cache for single products. Get returns
// (nil, nil) on a miss; cache failures must never fail a catalog read.
type ProductCache interface {
	Get(ctx context.Context, id int64) (*model.Product, error)
	Set(ctx context.Context, product *model.Product) error
	Invalidate(ctx context.Context, id int64) error
}

// ProductUseCase manages the catalog.
type ProductUseCase struct {
	products repository.ProductRepository
	cache    ProductCache
	logger   *slog.Logger
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository, cache ProductCache, logger *slog.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, cache: cache, logger: logger}
}

// Create adds a product to the catalog.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return u.products.Create(ctx, product)
}

// Update persists product changes and drops the stale cache entry.
func (u *ProductUseCase) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	updated, err := u.products.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, updated.ID)
	return updated, nil
}

// Delete soft-deletes a product: it disappears from listings and new orders
// but stays referenced by historical order lines.
func (u *ProductUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.products.SoftDelete(ctx, id); err != nil {
		return err
	}
	u.invalidate(ctx, id)
	return nil
}

// GetByID reads a product, cache first.
func (u *ProductUseCase) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	cached, err := u.cache.Get(ctx, id)
	if err != nil {
		u.logger.Warn("product cache read failed", slog.Int64("product_id", id), slog.String("error", err.Error()))
	} else if cached != nil {
		return cached, nil
	}

	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.cache.Set(ctx, product); err != nil {
		u.logger.Warn("product cache write failed", slog.Int64("product_id", id), slog.String("error", err.Error()))
	}
	return product, nil
}

// List returns a page of non-deleted products with the total count.
func (u *ProductUseCase) List(ctx context.Context, page model.PageRequest) ([]model.Product, int64, error) {
	return u.products.List(ctx, page)
}

func (u *ProductUseCase) invalidate(ctx context.Context, id int64) {
	if err := u.cache.Invalidate(ctx, id); err != nil {
		u.logger.Warn("product cache invalidation failed", slog.Int64("product_id", id), slog.String("error", err.Error()))
	}
}
