package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AbhishekM14/order-management-api/internal/domain/model"
	"github.com/AbhishekM14/order-management-api/internal/server/http/middleware"
)

// PageLimits bounds pagination parameters parsed from queries.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// CurrentUser extracts authenticated user from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// PageFromQuery reads zero-based page and size query parameters.
func PageFromQuery(c *gin.Context, limits PageLimits) model.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))
	return model.PageRequest{Page: page, Size: size}.Normalize(limits.DefaultSize, limits.MaxSize)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
