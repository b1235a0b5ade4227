package handlers

import (
	"context"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string, role model.UserRole) (*model.User, string, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
}

// ProductFacade encapsulates catalog operations exposed via HTTP.
type ProductFacade interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, page model.PageRequest) ([]model.Product, int64, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, lines []model.OrderLineRequest) (*model.Order, error)
	Order(ctx context.Context, id int64, requester *model.User) (*model.Order, error)
	OrdersForUser(ctx context.Context, userID int64, page model.PageRequest) ([]model.Order, int64, error)
	AllOrders(ctx context.Context, page model.PageRequest) ([]model.Order, int64, error)
	AdvanceOrderStatus(ctx context.Context, orderID int64, next model.OrderStatus) (*model.Order, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	ProductFacade
	OrderFacade
}
