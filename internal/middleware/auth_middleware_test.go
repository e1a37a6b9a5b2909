package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santanu2402/Alumni-Management-System/internal/app/models"
	"github.com/santanu2402/Alumni-Management-System/internal/app/models/dto"
	"github.com/santanu2402/Alumni-Management-System/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(jwtService *auth.JWTService, roles ...models.Role) *gin.Engine {
	m := NewAuthMiddleware(jwtService)
	router := gin.New()

	group := router.Group("/protected", m.JWTAuth())
	if len(roles) > 0 {
		group.Use(m.RoleRequired(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"accountID": c.GetString(ContextAccountID),
			"role":      c.GetString(ContextRole),
		})
	})
	return router
}

func testJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "middleware-test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := newTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := newTestRouter(testJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInvalidToken, resp.Error.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)
	router := newTestRouter(svc)

	token, _, err := svc.GenerateToken("abc", "alumni")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeExpiredToken, resp.Error.Code)
}

func TestJWTAuth_ValidTokenSetsIdentity(t *testing.T) {
	svc := testJWTService(time.Hour)
	router := newTestRouter(svc)

	token, _, err := svc.GenerateToken("account-1", "student")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "account-1", body["accountID"])
	assert.Equal(t, "student", body["role"])
}

func TestJWTAuth_LegacyHeader(t *testing.T) {
	svc := testJWTService(time.Hour)
	router := newTestRouter(svc)

	token, _, err := svc.GenerateToken("account-1", "alumni")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("auth-token", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequired(t *testing.T) {
	svc := testJWTService(time.Hour)
	router := newTestRouter(svc, models.RoleAdmin, models.RoleAlumni)

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"alumni", http.StatusOK},
		{"student", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			token, _, err := svc.GenerateToken("account-1", tc.role)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
		})
	}
}
