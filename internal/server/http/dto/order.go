package dto

import "time"

// OrderItemRequest is a single product/quantity pair in a placement request.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest describes order placement payload.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// StatusUpdateRequest describes an order status transition payload.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse describes a priced order line.
type OrderLineResponse struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	DiscountApplied string `json:"discount_applied"`
	TotalPrice      string `json:"total_price"`
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID         int64               `json:"id"`
	Username   string              `json:"username"`
	Status     string              `json:"status"`
	Lines      []OrderLineResponse `json:"lines"`
	OrderTotal string              `json:"order_total"`
	CreatedAt  time.Time           `json:"created_at"`
}

// PageResponse wraps a paginated listing.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPageResponse assembles a page envelope from query results.
func NewPageResponse[T any](content []T, page, size int, total int64) PageResponse[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
