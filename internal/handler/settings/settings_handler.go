// internal/handler/settings_handler.go
package handler

import (
	"net/http"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	"github.com/betshield/betshield-backend/internal/service/user"
	"github.com/betshield/betshield-backend/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	srv *user.UserService
}

func NewSettingsHandler(srv *user.UserService) *SettingsHandler {
	return &SettingsHandler{srv: srv}
}

// GetProfile godoc
// @Summary      Get profile
// @Description  Get the authenticated user's profile
// @Tags         /api/settings
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.User}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Failure      404  {object}  wrapper.ErrorWrapper
// @Router       /settings/profile [get]
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	profile, err := h.srv.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "User not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: profile, Success: true})
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Update the authenticated user's name or email
// @Tags         /api/settings
// @Accept       json
// @Produce      json
// @Param        profile  body      entity.UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  wrapper.ResponseWrapper{data=entity.User}
// @Failure      400      {object}  wrapper.ErrorWrapper
// @Failure      401      {object}  wrapper.ErrorWrapper
// @Router       /settings/profile [put]
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	var req entity.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	profile, err := h.srv.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, wrapper.ErrorWrapper{Message: "User not found", Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: profile, Success: true})
}

// UpdatePassword godoc
// @Summary      Update password
// @Description  Change the authenticated user's password
// @Tags         /api/settings
// @Accept       json
// @Produce      json
// @Param        password  body      entity.UpdatePasswordRequest  true  "New password"
// @Success      200       {object}  wrapper.SuccessWrapper
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      401       {object}  wrapper.ErrorWrapper
// @Router       /settings/password [put]
func (h *SettingsHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	var req entity.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Password must be at least 6 characters", Success: false})
		return
	}

	if err := h.srv.UpdatePassword(c.Request.Context(), userID, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Password updated successfully", Success: true})
}

// GetSettings godoc
// @Summary      Get preferences
// @Description  Notification and display preferences; defaults when none were saved
// @Tags         /api/settings
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.UserSettings}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /settings/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	settings, err := h.srv.GetSettings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: settings, Success: true})
}

// UpdateSettings godoc
// @Summary      Update preferences
// @Description  Merge the supplied fields into the stored preferences
// @Tags         /api/settings
// @Accept       json
// @Produce      json
// @Param        settings  body      entity.UpdateSettingsRequest  true  "Preference fields"
// @Success      200       {object}  wrapper.ResponseWrapper{data=entity.UserSettings}
// @Failure      400       {object}  wrapper.ErrorWrapper
// @Failure      401       {object}  wrapper.ErrorWrapper
// @Router       /settings/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	var req entity.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	settings, err := h.srv.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: settings, Success: true})
}

// DeleteAccount godoc
// @Summary      Delete account
// @Description  Permanently delete the authenticated user and all of their data
// @Tags         /api/settings
// @Produce      json
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /settings/account [delete]
func (h *SettingsHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "User not authenticated", Success: false})
		return
	}

	if err := h.srv.DeleteAccount(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Account deleted successfully", Success: true})
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	settings := router.Group("/settings")
	{
		settings.GET("/profile", h.GetProfile)
		settings.PUT("/profile", h.UpdateProfile)
		settings.PUT("/password", h.UpdatePassword)
		settings.GET("/settings", h.GetSettings)
		settings.PUT("/settings", h.UpdateSettings)
		settings.DELETE("/account", h.DeleteAccount)
	}
}
