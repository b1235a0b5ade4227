package test

import (
	"context"
	"sync"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
	"github.com/AbhishekM14/order-management-api/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash string, role model.UserRole) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Username: username, Email: email, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps products in-memory guarded by a mutex so
// concurrent order placement tests exercise stock accounting safely.
type ProductRepositoryStub struct {
	mu       sync.Mutex
	Products map[int64]*model.Product
	Next     int64
	Err      error

	ListByIDsFn func(context.Context, []int64) ([]model.Product, error)
}

// NewProductRepositoryStub constructs stub with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Put seeds or replaces a product.
func (s *ProductRepositoryStub) Put(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Products == nil {
		s.Products = make(map[int64]*model.Product)
	}
	s.Products[p.ID] = p
	if p.ID >= s.Next {
		s.Next = p.ID + 1
	}
}

// Create assigns an identifier and stores the product.
func (s *ProductRepositoryStub) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *p
	created.ID = s.Next
	s.Next++
	s.Products[created.ID] = &created
	return &created, nil
}

// Update replaces stored product fields or returns not found.
func (s *ProductRepositoryStub) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.Products[p.ID]
	if !ok || existing.Deleted {
		return nil, domainErrors.ErrNotFound
	}
	updated := *p
	updated.CreatedAt = existing.CreatedAt
	s.Products[p.ID] = &updated
	return &updated, nil
}

// SoftDelete marks product as deleted.
func (s *ProductRepositoryStub) SoftDelete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.Products[id]
	if !ok || existing.Deleted {
		return domainErrors.ErrNotFound
	}
	existing.Deleted = true
	return nil
}

// GetByID returns an active product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.Products[id]
	if !ok || existing.Deleted {
		return nil, domainErrors.ErrNotFound
	}
	copied := *existing
	return &copied, nil
}

// ListByIDs returns matching products, deleted ones included.
func (s *ProductRepositoryStub) ListByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	if s.ListByIDsFn != nil {
		return s.ListByIDsFn(ctx, ids)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Product
	for _, id := range ids {
		if p, ok := s.Products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

// List returns all active products ordered by identifier insertion.
func (s *ProductRepositoryStub) List(ctx context.Context, page model.PageRequest) ([]model.Product, int64, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []model.Product
	for id := int64(1); id < s.Next; id++ {
		if p, ok := s.Products[id]; ok && !p.Deleted {
			all = append(all, *p)
		}
	}
	total := int64(len(all))
	start := page.Offset()
	if start > len(all) {
		return nil, total, nil
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// reserve decrements stock if enough is available, mirroring the conditional
// update the real repository issues.
func (s *ProductRepositoryStub) reserve(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[productID]
	if !ok || p.Deleted {
		return domainErrors.ErrNotFound
	}
	if p.Quantity < quantity {
		return &domainErrors.InsufficientStockError{ProductID: productID, Requested: quantity, Available: p.Quantity}
	}
	p.Quantity -= quantity
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour. When Stock is set,
// Create reserves inventory atomically the way the real transaction does.
type OrderRepositoryStub struct {
	mu    sync.Mutex
	Stock *ProductRepositoryStub
	Next  int64

	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListByUserFn   func(context.Context, int64, model.PageRequest) ([]model.Order, int64, error)
	ListAllFn      func(context.Context, model.PageRequest) ([]model.Order, int64, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error

	Orders      []model.Order
	UpdateCalls []StatusUpdateCall
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// Create stores the order, reserving stock first when wired.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Stock != nil {
		for _, line := range order.Lines {
			if err := s.Stock.reserve(line.ProductID, line.Quantity); err != nil {
				return nil, err
			}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Next == 0 {
		s.Next = 1
	}
	order.ID = s.Next
	s.Next++
	for i := range order.Lines {
		order.Lines[i].OrderID = order.ID
	}
	s.Orders = append(s.Orders, *order)
	return order, nil
}

// GetByID returns matching order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns stored orders belonging to the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64, page model.PageRequest) ([]model.Order, int64, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID, page)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context, page model.PageRequest) ([]model.Order, int64, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx, page)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order(nil), s.Orders...), int64(len(s.Orders)), nil
}

// UpdateStatus records update invocations.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: orderID, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == orderID {
			s.Orders[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}
