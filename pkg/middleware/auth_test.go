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

	"dashboard_back/pkg/service"
)

const testSecret = "test-jwt-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func mintToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()

	claims := service.SessionClaims{
		TelegramID: 4242,
		Role:       "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			Audience:  jwt.ClaimStrings{"dashboard"},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        "test-session",
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProbeRouter() *gin.Engine {
	router := gin.New()
	router.GET("/probe", AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, _ := UserIdFromContext(c)
		telegramID := c.GetInt64(TelegramIdCtx)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "telegram_id": telegramID})
	})
	return router
}

func doProbe(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_Valid(t *testing.T) {
	router := newProbeRouter()
	token := mintToken(t, testSecret, time.Now().Add(time.Hour))

	w := doProbe(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"telegram_id":4242}`, w.Body.String())
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := doProbe(newProbeRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	w := doProbe(newProbeRouter(), "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token := mintToken(t, "other-secret", time.Now().Add(time.Hour))
	w := doProbe(newProbeRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_Expired(t *testing.T) {
	token := mintToken(t, testSecret, time.Now().Add(-time.Hour))
	w := doProbe(newProbeRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_Garbage(t *testing.T) {
	w := doProbe(newProbeRouter(), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
