package handlers

import (
	"net/http"

	"mozeh-api/config"
	"mozeh-api/middleware"
	"mozeh-api/models"
	"mozeh-api/service"

	"github.com/gin-gonic/gin"
)

// DriverGetOrders returns orders assigned to the logged-in driver
func DriverGetOrders(c *gin.Context) {
	orders := service.NewOrderService(config.DB)
	list, err := orders.ListByDriver(middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "Failed to load orders")
		return
	}
	c.JSON(http.StatusOK, list)
}

type AdvanceStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// DriverAdvanceOrderStatus moves an assigned order forward
// (ASSIGNED → PICKED_UP → DELIVERED). It cannot re-assign the order.
func DriverAdvanceOrderStatus(c *gin.Context) {
	advanceOrderStatus(c, middleware.GetUserID(c), models.RoleDriver)
}

func advanceOrderStatus(c *gin.Context, actorID string, actorRole models.UserRole) {
	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Target status is required"})
		return
	}

	orders := service.NewOrderService(config.DB)
	order, err := orders.AdvanceStatus(c.Param("id"), req.Status, actorID, actorRole)
	if err != nil {
		respondServiceError(c, err, "فشل تحديث حالة الطلب")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم تحديث حالة الطلب", "order": order})
}
