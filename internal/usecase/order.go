package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/domain/repository"
)

// OrderUseCase assembles and queries orders.
type OrderUseCase struct {
	users     repository.UserRepository
	orders    repository.OrderRepository
	ledger    *StockLedger
	discounts *DiscountCalculator
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(users repository.UserRepository, orders repository.OrderRepository, ledger *StockLedger, discounts *DiscountCalculator, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{users: users, orders: orders, ledger: ledger, discounts: discounts, logger: logger}
}

// Place runs the order placement transaction for the acting user: it
// validates stock, snapshots unit prices, computes the aggregate discount,
// redistributes it proportionally across lines, and persists order, lines and
// stock decrements as one atomic unit. Any failure leaves no partial state.
//
// Per-line discount rounding is not reconciled against the aggregate, and the
// order total is computed from the subtotal rather than from the sum of line
// totals. Both values may drift by a cent on fractional subtotals; this
// mirrors the pricing rules the API has always exposed.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, requests []model.OrderLineRequest) (*model.Order, error) {
	if len(requests) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, req := range requests {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: %w", req.ProductID, domainErrors.ErrInvalidQuantity)
		}
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", userID, err)
	}

	products, err := u.ledger.CheckAvailability(ctx, requests)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	lines := make([]model.OrderLine, 0, len(requests))
	for _, req := range requests {
		product := products[req.ProductID]
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
		subtotal = subtotal.Add(lineTotal)

		lines = append(lines, model.OrderLine{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        req.Quantity,
			UnitPrice:       product.Price,
			DiscountApplied: decimal.Zero,
			TotalPrice:      lineTotal,
		})
	}

	discount := u.discounts.Calculate(user.Role, subtotal)

	if discount.IsPositive() {
		// Proportional allocation in input order; each line gets its share of
		// the aggregate, rounded half-up to 2 decimals.
		for i := range lines {
			lineDiscount := discount.Mul(lines[i].TotalPrice).DivRound(subtotal, 2)
			lines[i].DiscountApplied = lineDiscount
			lines[i].TotalPrice = lines[i].TotalPrice.Sub(lineDiscount)
		}
	}

	order := &model.Order{
		UserID:     user.ID,
		Username:   user.Username,
		Status:     model.OrderStatusPending,
		Lines:      lines,
		OrderTotal: subtotal.Sub(discount),
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	u.logger.Info("order placed",
		slog.Int64("order_id", created.ID),
		slog.Int64("user_id", user.ID),
		slog.String("subtotal", subtotal.StringFixed(2)),
		slog.String("discount", discount.StringFixed(2)),
		slog.String("total", created.OrderTotal.StringFixed(2)),
		slog.String("applied", u.discounts.CombinedDescription(user.Role, subtotal)),
	)

	return created, nil
}

// GetByID returns the order only to its owner or an administrator. Anyone
// else gets ErrNotFound so order existence is never leaked.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64, requester *model.User) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != requester.ID && !requester.IsAdmin() {
		return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
	}

	return order, nil
}

// ListByUser returns a page of the user's own orders.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64, page model.PageRequest) ([]model.Order, int64, error) {
	return u.orders.ListByUser(ctx, userID, page)
}

// ListAll returns a page of all orders. Admin gating happens at the router.
func (u *OrderUseCase) ListAll(ctx context.Context, page model.PageRequest) ([]model.Order, int64, error) {
	return u.orders.ListAll(ctx, page)
}

// AdvanceStatus moves an order along its lifecycle, rejecting transitions the
// lifecycle does not allow.
func (u *OrderUseCase) AdvanceStatus(ctx context.Context, orderID int64, next model.OrderStatus) (*model.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("status %q: %w", next, domainErrors.ErrInvalidTransition)
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(next) {
		return nil, fmt.Errorf("%s -> %s: %w", order.Status, next, domainErrors.ErrInvalidTransition)
	}

	if err := u.orders.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}

	order.Status = next
	return order, nil
}
