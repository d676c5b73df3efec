package handlers

import (
	"net/http"

	"mozeh-api/config"
	"mozeh-api/service"
	"mozeh-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the catalog — public, no auth
func ListProducts(c *gin.Context) {
	products := service.NewProductService(config.DB)
	list, err := products.List()
	if err != nil {
		respondServiceError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetStateMachineInfo exposes the order lifecycle for docs and clients
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	out := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, gin.H{
			"from":  t.From,
			"to":    t.To,
			"actor": t.Actor,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"states":      []string{"PENDING", "ASSIGNED", "PICKED_UP", "DELIVERED", "CANCELLED"},
		"transitions": out,
	})
}
