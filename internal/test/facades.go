package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, model.UserRole) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string, role model.UserRole) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password, role)
	}
	return &model.User{ID: 1, Username: username, Email: email, Role: role}, "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username, Role: model.RoleUser}, "token", nil
}

// ProductFacadeStub provides controllable behaviour for catalog endpoints.
type ProductFacadeStub struct {
	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn func(context.Context, int64) error
	GetFn    func(context.Context, int64) (*model.Product, error)
	ListFn   func(context.Context, model.PageRequest) ([]model.Product, int64, error)
}

// SampleProduct returns a deterministic catalog entry used across tests.
func SampleProduct() *model.Product {
	return &model.Product{
		ID:        1,
		Name:      "Widget",
		Price:     decimal.RequireFromString("19.99"),
		Quantity:  10,
		CreatedAt: time.Unix(0, 0),
		UpdatedAt: time.Unix(0, 0),
	}
}

// CreateProduct delegates to override or echoes the product with an ID.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	created := *p
	created.ID = 1
	return &created, nil
}

// UpdateProduct delegates to override or echoes the product.
func (s ProductFacadeStub) UpdateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return p, nil
}

// DeleteProduct delegates to override or succeeds.
func (s ProductFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// Product returns configured product data.
func (s ProductFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return SampleProduct(), nil
}

// Products returns a single-entry listing.
func (s ProductFacadeStub) Products(ctx context.Context, page model.PageRequest) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, page)
	}
	return []model.Product{*SampleProduct()}, 1, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, int64, []model.OrderLineRequest) (*model.Order, error)
	GetFn     func(context.Context, int64, *model.User) (*model.Order, error)
	ForUserFn func(context.Context, int64, model.PageRequest) ([]model.Order, int64, error)
	AllFn     func(context.Context, model.PageRequest) ([]model.Order, int64, error)
	AdvanceFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// SampleOrder returns a deterministic placed order used across tests.
func SampleOrder() *model.Order {
	return &model.Order{
		ID:       1,
		UserID:   1,
		Username: "alice",
		Status:   model.OrderStatusPending,
		Lines: []model.OrderLine{{
			ProductID:       1,
			ProductName:     "Widget",
			Quantity:        2,
			UnitPrice:       decimal.RequireFromString("19.99"),
			DiscountApplied: decimal.Zero,
			TotalPrice:      decimal.RequireFromString("39.98"),
		}},
		OrderTotal: decimal.RequireFromString("39.98"),
		CreatedAt:  time.Unix(0, 0),
	}
}

// PlaceOrder delegates to override or returns the sample order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, lines []model.OrderLineRequest) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, lines)
	}
	order := SampleOrder()
	order.UserID = userID
	return order, nil
}

// Order delegates to override or returns the sample order.
func (s OrderFacadeStub) Order(ctx context.Context, id int64, requester *model.User) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id, requester)
	}
	return SampleOrder(), nil
}

// OrdersForUser returns a single-entry listing.
func (s OrderFacadeStub) OrdersForUser(ctx context.Context, userID int64, page model.PageRequest) ([]model.Order, int64, error) {
	if s.ForUserFn != nil {
		return s.ForUserFn(ctx, userID, page)
	}
	return []model.Order{*SampleOrder()}, 1, nil
}

// AllOrders returns a single-entry listing.
func (s OrderFacadeStub) AllOrders(ctx context.Context, page model.PageRequest) ([]model.Order, int64, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx, page)
	}
	return []model.Order{*SampleOrder()}, 1, nil
}

// AdvanceOrderStatus delegates to override or echoes the transition.
func (s OrderFacadeStub) AdvanceOrderStatus(ctx context.Context, orderID int64, next model.OrderStatus) (*model.Order, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, orderID, next)
	}
	order := SampleOrder()
	order.ID = orderID
	order.Status = next
	return order, nil
}

// CommerceFacadeStub aggregates facade dependencies for HTTP layer tests.
type CommerceFacadeStub struct {
	AuthFacadeStub
	ProductFacadeStub
	OrderFacadeStub
}

// CacheStub records cache interactions for product use case tests.
type CacheStub struct {
	GetFn        func(context.Context, int64) (*model.Product, error)
	SetFn        func(context.Context, *model.Product) error
	InvalidateFn func(context.Context, int64) error

	Stored      map[int64]*model.Product
	Invalidated []int64
}

// NewCacheStub constructs stub with initialized map.
func NewCacheStub() *CacheStub {
	return &CacheStub{Stored: make(map[int64]*model.Product)}
}

// Get returns cached product or a miss.
func (s *CacheStub) Get(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if p, ok := s.Stored[id]; ok {
		return p, nil
	}
	return nil, nil
}

// Set stores product in the stub map.
func (s *CacheStub) Set(ctx context.Context, p *model.Product) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, p)
	}
	if s.Stored == nil {
		s.Stored = make(map[int64]*model.Product)
	}
	s.Stored[p.ID] = p
	return nil
}

// Invalidate records evictions.
func (s *CacheStub) Invalidate(ctx context.Context, id int64) error {
	if s.InvalidateFn != nil {
		return s.InvalidateFn(ctx, id)
	}
	delete(s.Stored, id)
	s.Invalidated = append(s.Invalidated, id)
	return nil
}
