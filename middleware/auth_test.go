package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, id uint, role string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", ValidateToken(testSecret), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", ValidateToken(testSecret), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestValidateTokenMissingHeader(t *testing.T) {
	w := doRequest(newTestRouter(), "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenGarbage(t *testing.T) {
	w := doRequest(newTestRouter(), "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token := signToken(t, "some-other-secret", 1, "buyer", time.Hour)
	w := doRequest(newTestRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenExpired(t *testing.T) {
	token := signToken(t, testSecret, 1, "buyer", -time.Hour)
	w := doRequest(newTestRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenAcceptsBearerAndBare(t *testing.T) {
	token := signToken(t, testSecret, 7, "buyer", time.Hour)

	w := doRequest(newTestRouter(), "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)

	w = doRequest(newTestRouter(), "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsBuyer(t *testing.T) {
	token := signToken(t, testSecret, 2, "buyer", time.Hour)
	w := doRequest(newTestRouter(), "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	token := signToken(t, testSecret, 3, "admin", time.Hour)
	w := doRequest(newTestRouter(), "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
