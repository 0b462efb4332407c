// internal/handler/reports_handler.go
package handler

import (
	"net/http"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	service "github.com/betshield/betshield-backend/internal/service/reports"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type ReportsHandler struct {
	service service.ReportsService
}

func NewReportsHandler(service service.ReportsService) *ReportsHandler {
	return &ReportsHandler{
		service: service,
	}
}

// GetAll godoc
// @Summary      List reports
// @Tags         /api/reports
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Report}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /reports [get]
func (h *ReportsHandler) GetAll(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	list, err := h.service.GetAll(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: list, Success: true})
}

// Generate godoc
// @Summary      Generate report
// @Description  Roll up spending over a period into a stored report
// @Tags         /api/reports
// @Accept       json
// @Produce      json
// @Param        report  body      entity.GenerateReportRequest  true  "Report parameters"
// @Success      201     {object}  wrapper.ResponseWrapper{data=entity.Report}
// @Failure      400     {object}  wrapper.ErrorWrapper
// @Router       /reports/generate [post]
func (h *ReportsHandler) Generate(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	var req entity.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	report, err := h.service.Generate(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: report, Success: true})
}

// Download godoc
// @Summary      Download report
// @Tags         /api/reports
// @Produce      json
// @Param        id   path      string  true  "Report ID"
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.ReportDownload}
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Router       /reports/{id}/download [get]
func (h *ReportsHandler) Download(c *gin.Context) {
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

	download, err := h.service.GetDownload(c.Request.Context(), id, userID)
	if err != nil {
		if err.Error() == "report not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "Report not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: download, Success: true})
}

func (h *ReportsHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("", h.GetAll)
		reports.POST("/generate", h.Generate)
		reports.GET("/:id/download", h.Download)
	}
}
