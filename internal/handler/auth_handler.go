package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ecomshop/internal/auth"
	apperr "ecomshop/internal/errors"
	"ecomshop/internal/model"
	"ecomshop/internal/service"
)

// AuthHandler handles registration, login and token validation endpoints.
type AuthHandler struct {
	userService  service.UserService
	tokenService *auth.TokenService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService service.UserService, tokenService *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: err.Error()})
	}

	ctx := c.Request().Context()

	// Pre-checks give the specific conflict message; the unique indexes
	// backstop them if two registrations race.
	if taken, err := h.userService.UsernameExists(ctx, req.Username); err == nil && taken {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Username already exists"})
	}
	if taken, err := h.userService.EmailExists(ctx, req.Email); err == nil && taken {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Email already exists"})
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}
	saved, err := h.userService.Register(ctx, user, req.Password)
	if err != nil {
		switch err {
		case apperr.ErrUsernameTaken:
			return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Username already exists"})
		case apperr.ErrEmailTaken:
			return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Failed to register user"})
		}
	}

	token, err := h.tokenService.Issue(saved.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Failed to issue token"})
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		Username: saved.Username,
		Message:  "Registration successful",
	})
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: err.Error()})
	}

	// Unknown user and wrong password get the same message so usernames
	// cannot be enumerated.
	user, err := h.userService.FindByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Invalid username or password"})
	}
	if !h.userService.ValidatePassword(req.Password, user.PasswordHash) {
		return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Invalid username or password"})
	}

	token, err := h.tokenService.Issue(user.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, AuthResponse{Message: "Failed to issue token"})
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		Username: user.Username,
		Message:  "Login successful",
	})
}

// Validate godoc
// @Summary Validate a bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 400 {object} AuthResponse
// @Security BearerAuth
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		token := strings.TrimPrefix(header, "Bearer ")
		if h.tokenService.Validate(token) {
			username, err := h.tokenService.ExtractUsername(token)
			if err == nil {
				return c.JSON(http.StatusOK, AuthResponse{
					Token:    token,
					Username: username,
					Message:  "Token is valid",
				})
			}
		}
	}
	return c.JSON(http.StatusBadRequest, AuthResponse{Message: "Invalid token"})
}
