// internal/handler/auth_handler.go
package handler

import (
	"net/http"
	"strings"

	"github.com/betshield/betshield-backend/internal/entity"
	"github.com/betshield/betshield-backend/internal/model/response/wrapper"
	"github.com/betshield/betshield-backend/internal/service/user"
	"github.com/betshield/betshield-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type AuthHandler struct {
	srv *user.UserService
}

func NewAuthHandler(srv *user.UserService) *AuthHandler {
	return &AuthHandler{srv: srv}
}

// SignUp godoc
// @Summary      Sign up
// @Description  Create a new user account
// @Tags         /api/auth
// @Accept       json
// @Produce      json
// @Param        user  body      entity.SignUpRequest  true  "Credentials"
// @Success      201   {object}  wrapper.ResponseWrapper{data=entity.User}
// @Failure      400   {object}  wrapper.ErrorWrapper
// @Failure      500   {object}  wrapper.ErrorWrapper
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req entity.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	created, err := h.srv.SignUp(c.Request.Context(), req)
	if err != nil {
		if err.Error() == "email already registered" {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusCreated, wrapper.ResponseWrapper{Data: created, Success: true})
}

// SignIn godoc
// @Summary      Sign in
// @Description  Authenticate and receive a bearer token
// @Tags         /api/auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      entity.SignInRequest  true  "Credentials"
// @Success      200          {object}  wrapper.ResponseWrapper{data=entity.AuthResponse}
// @Failure      401          {object}  wrapper.ErrorWrapper
// @Failure      500          {object}  wrapper.ErrorWrapper
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req entity.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	auth, err := h.srv.SignIn(c.Request.Context(), req)
	if err != nil {
		if err.Error() == "invalid credentials" {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: auth, Success: true})
}

// AdminSignIn godoc
// @Summary      Admin sign in
// @Description  Authenticate an admin account
// @Tags         /api/auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      entity.SignInRequest  true  "Credentials"
// @Success      200          {object}  wrapper.ResponseWrapper{data=entity.AuthResponse}
// @Failure      401          {object}  wrapper.ErrorWrapper
// @Failure      403          {object}  wrapper.ErrorWrapper
// @Router       /auth/admin/signin [post]
func (h *AuthHandler) AdminSignIn(c *gin.Context) {
	var req entity.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{Message: "Invalid request body: " + err.Error(), Success: false})
		return
	}

	auth, err := h.srv.SignIn(c.Request.Context(), req)
	if err != nil {
		if err.Error() == "invalid credentials" {
			c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{Message: err.Error(), Success: false})
		return
	}

	if auth.User.Role != entity.RoleAdmin {
		c.JSON(http.StatusForbidden, wrapper.ErrorWrapper{Message: "Admin access required", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: auth, Success: true})
}

// SignOut godoc
// @Summary      Sign out
// @Description  Sign out the current session (stateless tokens, client discards)
// @Tags         /api/auth
// @Produce      json
// @Success      200  {object}  wrapper.SuccessWrapper
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, wrapper.SuccessWrapper{Message: "Signed out successfully", Success: true})
}

// Verify godoc
// @Summary      Verify token
// @Description  Validate a bearer token and return the account it belongs to
// @Tags         /api/auth
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.User}
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "No token provided", Success: false})
		return
	}

	claims, err := utils.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid token", Success: false})
		return
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.FromString(rawID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid token", Success: false})
		return
	}

	profile, err := h.srv.GetProfile(c.Request.Context(), userID)
	if err != nil {
		// a token for a since-deleted account is invalid too
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{Message: "Invalid token", Success: false})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: profile, Success: true})
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/admin/signin", h.AdminSignIn)
		auth.POST("/signout", h.SignOut)
		auth.GET("/verify", h.Verify)
	}
}
