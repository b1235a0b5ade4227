package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
	limits PageLimits
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, limits PageLimits) *OrderHandler {
	return &OrderHandler{facade: facade, limits: limits}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]model.OrderLineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, model.OrderLineRequest{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), lines)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyOrder), errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			c.JSON(http.StatusConflict, insufficientStockBody(err))
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id, CurrentUser(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Mine handles GET /api/orders.
func (h *OrderHandler) Mine(c *gin.Context) {
	page := PageFromQuery(c, h.limits)

	orders, total, err := h.facade.OrdersForUser(c.Request.Context(), CurrentUserID(c), page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toOrderPage(orders, page, total))
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	page := PageFromQuery(c, h.limits)

	orders, total, err := h.facade.AllOrders(c.Request.Context(), page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, toOrderPage(orders, page, total))
}

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AdvanceOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func insufficientStockBody(err error) gin.H {
	var stockErr *domainErrors.InsufficientStockError
	if errors.As(err, &stockErr) {
		return gin.H{
			"error":      "insufficient stock",
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		}
	}
	return gin.H{"error": "insufficient stock"}
}

func toOrderPage(orders []model.Order, page model.PageRequest, total int64) dto.PageResponse[dto.OrderResponse] {
	content := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		content = append(content, toOrderResponse(&o))
	}
	return dto.NewPageResponse(content, page.Page, page.Size, total)
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice.StringFixed(2),
			DiscountApplied: line.DiscountApplied.StringFixed(2),
			TotalPrice:      line.TotalPrice.StringFixed(2),
		})
	}
	return dto.OrderResponse{
		ID:         order.ID,
		Username:   order.Username,
		Status:     string(order.Status),
		Lines:      lines,
		OrderTotal: order.OrderTotal.StringFixed(2),
		CreatedAt:  order.CreatedAt,
	}
}
