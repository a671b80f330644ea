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

	"brainhealth/internal/authz"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware())
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/dashboard", func(c *gin.Context) {
		userID := c.GetInt("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	r.GET("/caregiver/patients", RequireRoles(authz.RoleCaregiver), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func signToken(t *testing.T, userID, roleID int, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware_PublicPathsSkipToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 42, authz.RolePatient, time.Now().Add(15*time.Minute)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthMiddleware_ExpiredBeyondLeeway(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 42, authz.RolePatient, time.Now().Add(-10*time.Minute)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_PatientCannotUseCaregiverRoutes(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/caregiver/patients", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 42, authz.RolePatient, time.Now().Add(15*time.Minute)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles_CaregiverAllowed(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/caregiver/patients", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 43, authz.RoleCaregiver, time.Now().Add(15*time.Minute)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
