package handlers

import (
	"net/http"

	"mozeh-api/config"
	"mozeh-api/middleware"
	"mozeh-api/service"

	"github.com/gin-gonic/gin"
)

// CreateOrder places a new order for the authenticated customer. The customer
// id always comes from the token, never from the request body.
func CreateOrder(c *gin.Context) {
	var req service.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	orders := service.NewOrderService(config.DB)
	order, err := orders.Create(middleware.GetUserID(c), req)
	if err != nil {
		respondServiceError(c, err, "فشل إنشاء الطلب")
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders returns the logged-in customer's own orders
func GetMyOrders(c *gin.Context) {
	orders := service.NewOrderService(config.DB)
	list, err := orders.ListByCustomer(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "فشل تحميل الطلبات")
		return
	}
	c.JSON(http.StatusOK, list)
}
