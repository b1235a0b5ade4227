package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// transitions lists the allowed next statuses. Cancellation is only reachable
// before processing starts; DELIVERED and CANCELLED are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// Valid reports whether the status is a known lifecycle value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether moving to next is allowed from s.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderLineRequest is the caller's input for a single order line.
type OrderLineRequest struct {
	ProductID int64
	Quantity  int
}

// OrderLine snapshots the product price at order time. DiscountApplied and
// TotalPrice are settled during discount allocation and immutable afterwards.
type OrderLine struct {
	ID              int64
	OrderID         int64
	ProductID       int64
	ProductName     string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountApplied decimal.Decimal
	TotalPrice      decimal.Decimal
}

// Order is created atomically with its lines in one transaction. Line order is
// significant: discount allocation rounds per line in input order.
type Order struct {
	ID         int64
	UserID     int64
	Username   string
	Status     OrderStatus
	Lines      []OrderLine
	OrderTotal decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
