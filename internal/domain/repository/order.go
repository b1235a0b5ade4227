package repository

import (
	"context"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create persists the order with its lines and decrements stock for every
	// line in one atomic transaction. The decrement is conditional: it never
	// drives stock negative, failing the whole transaction instead.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64, page model.PageRequest) ([]model.Order, int64, error)
	ListAll(ctx context.Context, page model.PageRequest) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
