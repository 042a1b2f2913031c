package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dashboard_back/pkg/service"
)

const (
	UserIdCtx     = "userId"
	TelegramIdCtx = "telegramId"
	RoleCtx       = "userRole"
)

// AuthMiddleware проверяет bearer-токен сессии и кладёт данные пользователя в контекст.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		claims, err := service.ParseSessionToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		userID, err := service.UserIdFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(UserIdCtx, userID)
		c.Set(TelegramIdCtx, claims.TelegramID)
		c.Set(RoleCtx, claims.Role)
		c.Next()
	}
}

// UserIdFromContext достаёт id пользователя, положенный AuthMiddleware.
func UserIdFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIdCtx)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
