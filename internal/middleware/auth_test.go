package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackr/budget-ledger/internal/core/domain"
	"github.com/fintrackr/budget-ledger/internal/middleware"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, subject, department, role string, expiry time.Duration) string {
	t.Helper()
	claims := middleware.IdentityClaims{
		Department: department,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authTestRouter(capture *domain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		identity, ok := middleware.GetIdentityFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		*capture = identity
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	var identity domain.Identity
	r := authTestRouter(&identity)

	token := signedToken(t, "user-42", "dept-eng", "FINANCE_HEAD", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", identity.UserID)
	assert.Equal(t, "dept-eng", identity.DepartmentID)
	assert.Equal(t, domain.RoleFinanceHead, identity.Role)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	var identity domain.Identity
	r := authTestRouter(&identity)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	var identity domain.Identity
	r := authTestRouter(&identity)

	token := signedToken(t, "user-42", "dept-eng", "ADMIN", -time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_UnknownRole(t *testing.T) {
	var identity domain.Identity
	r := authTestRouter(&identity)

	token := signedToken(t, "user-42", "dept-eng", "SUPERUSER", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "role")
}
