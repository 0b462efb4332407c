// internal/handler/scanner_handler.go
package handler

import (
	"net/http"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	service "github.com/betshield/betshield-backend/internal/service/scanner"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
)

type ScannerHandler struct {
	service service.ScannerService
}

func NewScannerHandler(service service.ScannerService) *ScannerHandler {
	return &ScannerHandler{
		service: service,
	}
}

// Scan godoc
// @Summary      Scan URL
// @Description  Check a URL for gambling content and record the result
// @Tags         /api/scanner
// @Accept       json
// @Produce      json
// @Param        scan  body      entity.ScanURLRequest  true  "URL to scan"
// @Success      200   {object}  wrapper.ResponseWrapper{data=entity.ScanURLResponse}
// @Failure      400   {object}  wrapper.ErrorWrapper
// @Router       /scanner [post]
func (h *ScannerHandler) Scan(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	var req entity.ScanURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "URL is required", Success: false})
		return
	}

	result, err := h.service.ScanURL(c.Request.Context(), userID, req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: result, Success: true})
}

// History godoc
// @Summary      Scan history
// @Tags         /api/scanner
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.URLScan}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /scanner/history [get]
func (h *ScannerHandler) History(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	scans, err := h.service.GetHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: scans, Success: true})
}

func (h *ScannerHandler) RegisterRoutes(router *gin.RouterGroup) {
	scanner := router.Group("/scanner")
	{
		scanner.POST("", h.Scan)
		scanner.GET("/history", h.History)
	}
}
