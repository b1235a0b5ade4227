package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/AbhishekM14/order-management-api/internal/domain/errors"
	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade ProductFacade
	limits PageLimits
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade, limits PageLimits) *ProductHandler {
	return &ProductHandler{facade: facade, limits: limits}
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	product, ok := bindProduct(c)
	if !ok {
		return
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), product)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	product, ok := bindProduct(c)
	if !ok {
		return
	}
	product.ID = id

	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	page := PageFromQuery(c, h.limits)

	products, total, err := h.facade.Products(c.Request.Context(), page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	content := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		content = append(content, toProductResponse(&p))
	}

	c.JSON(http.StatusOK, dto.NewPageResponse(content, page.Page, page.Size, total))
}

func bindProduct(c *gin.Context) (*model.Product, bool) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return nil, false
	}
	if req.Name == "" || req.Price.IsNegative() || req.Quantity < 0 {
		c.Status(http.StatusBadRequest)
		return nil, false
	}
	return &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
	}, true
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
