package app

import (
	"context"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/usecase"
)

// CommerceFacade exposes the application operations the HTTP layer consumes.
type CommerceFacade struct {
	auth     *usecase.AuthUseCase
	products *usecase.ProductUseCase
	orders   *usecase.OrderUseCase
}

func NewCommerceFacade(auth *usecase.AuthUseCase, products *usecase.ProductUseCase, orders *usecase.OrderUseCase) *CommerceFacade {
	return &CommerceFacade{auth: auth, products: products, orders: orders}
}

func (f *CommerceFacade) Register(ctx context.Context, username, email, password string, role model.UserRole) (*model.User, string, error) {
	return f.auth.Register(ctx, username, email, password, role)
}

func (f *CommerceFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *CommerceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *CommerceFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *CommerceFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

func (f *CommerceFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Update(ctx, product)
}

func (f *CommerceFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.products.Delete(ctx, id)
}

func (f *CommerceFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.products.GetByID(ctx, id)
}

func (f *CommerceFacade) Products(ctx context.Context, page model.PageRequest) ([]model.Product, int64, error) {
	return f.products.List(ctx, page)
}

func (f *CommerceFacade) PlaceOrder(ctx context.Context, userID int64, lines []model.OrderLineRequest) (*model.Order, error) {
	return f.orders.Place(ctx, userID, lines)
}

func (f *CommerceFacade) Order(ctx context.Context, id int64, requester *model.User) (*model.Order, error) {
	return f.orders.GetByID(ctx, id, requester)
}

func (f *CommerceFacade) OrdersForUser(ctx context.Context, userID int64, page model.PageRequest) ([]model.Order, int64, error) {
	return f.orders.ListByUser(ctx, userID, page)
}

func (f *CommerceFacade) AllOrders(ctx context.Context, page model.PageRequest) ([]model.Order, int64, error) {
	return f.orders.ListAll(ctx, page)
}

func (f *CommerceFacade) AdvanceOrderStatus(ctx context.Context, orderID int64, next model.OrderStatus) (*model.Order, error) {
	return f.orders.AdvanceStatus(ctx, orderID, next)
}
