// internal/handler/dashboard_handler.go
package handler

import (
	"net/http"

	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	service "github.com/betshield/betshield-backend/internal/service/dashboard"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(service service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// GetStats godoc
// @Summary      Dashboard stats
// @Description  Aggregated alerts, achievements, weekly spending and risk events
// @Tags         /api/dashboard
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.DashboardStats}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: stats, Success: true})
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetStats)
}
