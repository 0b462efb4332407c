// internal/handler/spending_handler.go
package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	service "github.com/betshield/betshield-backend/internal/service/spending"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type SpendingHandler struct {
	service service.SpendingService
}

func NewSpendingHandler(service service.SpendingService) *SpendingHandler {
	return &SpendingHandler{
		service: service,
	}
}

// GetAll godoc
// @Summary      List spending entries
// @Description  All spending entries for the authenticated user, newest first
// @Tags         /api/spending
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.SpendingEntry}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /spending [get]
func (h *SpendingHandler) GetAll(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	entries, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: entries, Success: true})
}

// GetSummary godoc
// @Summary      Spending summary
// @Description  Total, count, average and current-month spending
// @Tags         /api/spending
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.SpendingSummary}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /spending/summary [get]
func (h *SpendingHandler) GetSummary(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: summary, Success: true})
}

// Create godoc
// @Summary      Create spending entry
// @Tags         /api/spending
// @Accept       json
// @Produce      json
// @Param        entry  body      entity.CreateSpendingRequest  true  "Entry data"
// @Success      201    {object}  wrapper.ResponseWrapper{data=entity.SpendingEntry}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      401    {object}  wrapper.ErrorWrapper
// @Router       /spending [post]
func (h *SpendingHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	var req entity.CreateSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Valid amount is required", Success: false})
		return
	}

	entry, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: entry, Success: true})
}

// Update godoc
// @Summary      Update spending entry
// @Tags         /api/spending
// @Accept       json
// @Produce      json
// @Param        id     path      string                        true  "Entry ID"
// @Param        entry  body      entity.UpdateSpendingRequest  true  "Fields to update"
// @Success      200    {object}  wrapper.ResponseWrapper{data=entity.SpendingEntry}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      404    {object}  wrapper.ErrorWrapper
// @Router       /spending/{id} [put]
func (h *SpendingHandler) Update(c *gin.Context) {
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

	var req entity.UpdateSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	entry, err := h.service.Update(c.Request.Context(), id, userID, req)
	if err != nil {
		if err.Error() == "spending entry not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Spending entry not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: entry, Success: true})
}

// Delete godoc
// @Summary      Delete spending entry
// @Tags         /api/spending
// @Produce      json
// @Param        id   path      string  true  "Entry ID"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Router       /spending/{id} [delete]
func (h *SpendingHandler) Delete(c *gin.Context) {
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

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Spending entry not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Spending entry deleted successfully", Success: true})
}

func (h *SpendingHandler) RegisterRoutes(router *gin.RouterGroup) {
	spending := router.Group("/spending")
	{
		spending.GET("", h.GetAll)
		spending.GET("/summary", h.GetSummary)
		spending.POST("", h.Create)
		spending.PUT("/:id", h.Update)
		spending.DELETE("/:id", h.Delete)
	}
}
