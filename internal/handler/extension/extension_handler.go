// internal/handler/extension_handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/betshield/betshield-backend/internal/entity"
	service "github.com/betshield/betshield-backend/internal/service/extension_log"
	redisService "github.com/betshield/betshield-backend/internal/service/redis"
	"github.com/gin-gonic/gin"
)

const statsCacheTTL = 30 * time.Second

type ExtensionHandler struct {
	service service.ExtensionLogService
	cache   redisService.ServiceInterface
}

// cache may be nil; stats are then recomputed on every request.
func NewExtensionHandler(service service.ExtensionLogService, cache redisService.ServiceInterface) *ExtensionHandler {
	return &ExtensionHandler{
		service: service,
		cache:   cache,
	}
}

// The extension endpoints keep the wire shape the content script expects:
// {ok:true, ...} on success, {ok:false, error} with a 500 status on any
// failure, caller mistakes included.

type logResponse struct {
	Ok    bool             `json:"ok"`
	Entry *entity.LogEntry `json:"entry"`
}

type statsResponse struct {
	Ok    bool                       `json:"ok"`
	Meta  *entity.ExtensionStatsMeta `json:"meta"`
	Stats *entity.ExtensionStats     `json:"stats"`
}

type errResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

// Log godoc
// @Summary      Record an extension event
// @Description  Append one extension event (visit_start, visit_end, time_update, threat) to the log
// @Tags         /api/extension
// @Accept       json
// @Produce      json
// @Param        entry  body      map[string]interface{}  true  "Event payload"
// @Success      200    {object}  logResponse
// @Failure      500    {object}  errResponse
// @Router       /extension/log [post]
func (h *ExtensionHandler) Log(c *gin.Context) {
	var entry entity.LogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, errResponse{Error: err.Error()})
		return
	}

	stored, err := h.service.Append(c.Request.Context(), entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logResponse{Ok: true, Entry: stored})
}

// Stats godoc
// @Summary      Get extension event statistics
// @Description  Per-domain visit and time aggregates over the event log
// @Tags         /api/extension
// @Accept       json
// @Produce      json
// @Param        userId  query     string  false  "Filter to one user's entries"
// @Success      200     {object}  statsResponse
// @Failure      500     {object}  errResponse
// @Router       /extension/stats [get]
func (h *ExtensionHandler) Stats(c *gin.Context) {
	userID := c.Query("userId")

	if h.cache != nil {
		var cached statsResponse
		if err := h.cache.GetExtensionStats(c.Request.Context(), userID, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	stats, meta, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errResponse{Error: err.Error()})
		return
	}

	resp := statsResponse{Ok: true, Meta: meta, Stats: stats}
	if h.cache != nil {
		// Best effort; stale stats expire on their own.
		_ = h.cache.CacheExtensionStats(c.Request.Context(), userID, resp, statsCacheTTL)
	}

	c.JSON(http.StatusOK, resp)
}

// Eval godoc
// @Summary      Record a metric payload
// @Description  Append an arbitrary metric payload to the event log, tagged type:eval
// @Tags         /api/extension
// @Accept       json
// @Produce      json
// @Param        payload  body      map[string]interface{}  true  "Metric payload"
// @Success      200      {object}  logResponse
// @Failure      500      {object}  errResponse
// @Router       /extension/eval [post]
func (h *ExtensionHandler) Eval(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusInternalServerError, errResponse{Error: err.Error()})
		return
	}

	stored, err := h.service.AppendEval(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logResponse{Ok: true, Entry: stored})
}

func (h *ExtensionHandler) RegisterRoutes(router *gin.RouterGroup) {
	extension := router.Group("/extension")
	{
		extension.POST("/log", h.Log)
		extension.GET("/stats", h.Stats)
		extension.POST("/eval", h.Eval)
	}
}
