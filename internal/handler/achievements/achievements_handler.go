// internal/handler/achievements_handler.go
package handler

import (
	"net/http"

	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	"github.com/betshield/betshield-backend/internal/service/achievements"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
)

type AchievementsHandler struct {
	srv *achievements.AchievementsService
}

func NewAchievementsHandler(srv *achievements.AchievementsService) *AchievementsHandler {
	return &AchievementsHandler{srv: srv}
}

// GetAll godoc
// @Summary      List achievements
// @Description  Unlocked achievements for the authenticated user, newest first
// @Tags         /api/achievements
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=[]entity.Achievement}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /achievements [get]
func (h *AchievementsHandler) GetAll(c *gin.Context) {
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

func (h *AchievementsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/achievements", h.GetAll)
}
