package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
	"github.com/Jonboyweb/MM-br3-sub001/internal/repository"
	"github.com/Jonboyweb/MM-br3-sub001/internal/utils"
)

// StaffStore is the staff lookup the login handler depends on.
type StaffStore interface {
	GetActiveByEmail(ctx context.Context, email string) (*model.StaffUser, error)
}

// AuthHandler serves the staff login.  Staff accounts are provisioned in
// the store; there is no self-registration.
type AuthHandler struct {
	Staff        StaffStore
	JWTSecret    string
	AccessTTLMin int
	Log          *slog.Logger
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(staff StaffStore, jwtSecret string, accessTTLMin int, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Staff: staff, JWTSecret: jwtSecret, AccessTTLMin: accessTTLMin, Log: log}
}

// Login handles POST /api/auth/login.  Unknown accounts and wrong
// passwords produce the same 401 so account existence is not leaked.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	staff, err := h.Staff.GetActiveByEmail(c.Request().Context(), body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		h.Log.Error("staff lookup failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if !utils.VerifyPassword(staff.PasswordHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewAccessToken(h.JWTSecret, staff.ID, staff.Role, h.AccessTTLMin)
	if err != nil {
		h.Log.Error("token signing failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"accessToken": tok.Token,
		"expiresAt":   tok.Exp,
	})
}
