// internal/handler/alerts_handler.go
package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	"github.com/betshield/betshield-backend/internal/service/alerts"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type AlertsHandler struct {
	srv *alerts.AlertsService
}

func NewAlertsHandler(srv *alerts.AlertsService) *AlertsHandler {
	return &AlertsHandler{srv: srv}
}

// GetAll godoc
// @Summary      List alerts
// @Tags         /api/alerts
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Alert}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /alerts [get]
func (h *AlertsHandler) GetAll(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	list, err := h.srv.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: list, Success: true})
}

// MarkRead godoc
// @Summary      Mark alert as read
// @Tags         /api/alerts
// @Produce      json
// @Param        id   path      string  true  "Alert ID"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.Alert}
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Router       /alerts/{id}/read [patch]
func (h *AlertsHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	alert, err := h.srv.MarkRead(c.Request.Context(), id, userID)
	if err != nil {
		if err.Error() == "alert not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Alert not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: alert, Success: true})
}

// Delete godoc
// @Summary      Delete alert
// @Tags         /api/alerts
// @Produce      json
// @Param        id   path      string  true  "Alert ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Router       /alerts/{id} [delete]
func (h *AlertsHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid UUID format", Success: false})
		return
	}

	if err := h.srv.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Alert not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Alert deleted successfully", Success: true})
}

func (h *AlertsHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/alerts")
	{
		group.GET("", h.GetAll)
		group.PATCH("/:id/read", h.MarkRead)
		group.DELETE("/:id", h.Delete)
	}
}
