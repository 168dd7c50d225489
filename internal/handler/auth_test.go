package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jonboyweb/MM-br3-sub001/internal/model"
	"github.com/Jonboyweb/MM-br3-sub001/internal/repository"
)

type fakeStaffStore struct {
	staff *model.StaffUser
	err   error
}

func (f *fakeStaffStore) GetActiveByEmail(ctx context.Context, email string) (*model.StaffUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.staff, nil
}

func postLogin(t *testing.T, h *AuthHandler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Login(e.NewContext(req, rec)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func staffWithPassword(t *testing.T, password string) *model.StaffUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.StaffUser{
		ID:           "staff-1",
		Email:        "manager@example.com",
		PasswordHash: string(hash),
		Role:         "MANAGER",
		IsActive:     true,
	}
}

func TestLoginSuccess(t *testing.T) {
	h := NewAuthHandler(&fakeStaffStore{staff: staffWithPassword(t, "hunter2")}, "test-secret", 15, testLog())

	rec, out := postLogin(t, h, `{"email": "manager@example.com", "password": "hunter2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, out, "accessToken")
	require.Contains(t, out, "expiresAt")

	tok, err := jwt.Parse(out["accessToken"].(string), func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "staff-1", claims["sub"])
	assert.Equal(t, "MANAGER", claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(&fakeStaffStore{staff: staffWithPassword(t, "hunter2")}, "test-secret", 15, testLog())

	rec, out := postLogin(t, h, `{"email": "manager@example.com", "password": "letmein"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", out["error"])
}

func TestLoginUnknownAccountSameAnswer(t *testing.T) {
	h := NewAuthHandler(&fakeStaffStore{err: repository.ErrStaffNotFound}, "test-secret", 15, testLog())

	rec, out := postLogin(t, h, `{"email": "nobody@example.com", "password": "whatever"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", out["error"], "unknown accounts are indistinguishable from bad passwords")
}

func TestLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeStaffStore{}, "test-secret", 15, testLog())

	for _, body := range []string{`{}`, `{"email": "a@b.com"}`, `{"password": "x"}`} {
		rec, _ := postLogin(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}
