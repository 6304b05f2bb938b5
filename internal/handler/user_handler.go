package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperr "ecomshop/internal/errors"
	"ecomshop/internal/service"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ProfileResponse is the public view of a user.
type ProfileResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.MessageResponse{Message: "Invalid token"})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.JSON(http.StatusUnauthorized, apperr.MessageResponse{Message: "Invalid token"})
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return c.JSON(http.StatusUnauthorized, apperr.MessageResponse{Message: "Invalid token"})
	}

	user, err := h.userService.FindByUsername(c.Request().Context(), username)
	if err != nil {
		if err == apperr.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, apperr.MessageResponse{Message: "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, apperr.MessageResponse{Message: "Error fetching profile"})
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	})
}
