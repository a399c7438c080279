package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func createValidJWT(userID, email, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, _ := token.SignedString([]byte("test-secret"))
	return tokenString
}

func testConfig() JWTConfig {
	return JWTConfig{
		Secret: "test-secret",
		Logger: zap.NewNop(),
	}
}

func TestJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(testConfig())

	handler := middleware(func(c echo.Context) error {
		user, err := GetUserFromContext(c)
		assert.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", user.UserID)
		assert.Equal(t, "owner@example.com", user.Email)
		assert.Equal(t, "authenticated", user.Role)
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+createValidJWT("550e8400-e29b-41d4-a716-446655440000", "owner@example.com", "authenticated"))
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware_MissingAuthorizationHeader(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(testConfig())

	handler := middleware(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(testConfig())

	handler := middleware(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", createValidJWT("user-1", "a@b.com", ""))
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_WrongSecret(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(JWTConfig{Secret: "different-secret", Logger: zap.NewNop()})

	handler := middleware(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+createValidJWT("user-1", "a@b.com", ""))
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(testConfig())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte("test-secret"))

	handler := middleware(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_MissingSubClaim(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(testConfig())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, _ := token.SignedString([]byte("test-secret"))

	handler := middleware(func(c echo.Context) error {
		t.Fatal("handler should not be reached")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	e := echo.New()
	middleware := JWTMiddleware(JWTConfig{
		Secret:    "test-secret",
		Logger:    zap.NewNop(),
		SkipPaths: []string{"/health"},
	})

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	err := handler(e.NewContext(req, rec))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
