package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"dashboard_back/models"
	"dashboard_back/pkg/middleware"
	"dashboard_back/pkg/service"
)

// Login — вход по initData из Telegram.WebApp.
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginRequest

	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.service.Authorization.LoginWithInitData(input.InitData)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			newErrorResponse(c, http.StatusUnauthorized, "invalid init data signature")
		case errors.Is(err, service.ErrMissingUserData):
			newErrorResponse(c, http.StatusBadRequest, "missing user data")
		default:
			newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		}
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// BotAuth — вход через бота: generate_token выдаёт одноразовый токен,
// verify_token гасит его и выдаёт сессию.
func (h *Handler) BotAuth(c *gin.Context) {
	var input models.BotAuthRequest

	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	switch input.Action {
	case "generate_token":
		token, err := h.service.Authorization.GenerateBotToken()
		if err != nil {
			newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
			return
		}
		wrapOkJSON(c, map[string]interface{}{
			"token":      token.Token,
			"expires_at": token.ExpiresAt.Format(time.RFC3339),
		})

	case "verify_token":
		user, accessToken, err := h.service.Authorization.VerifyBotToken(input)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenInvalidOrExpired):
				newErrorResponse(c, http.StatusBadRequest, "invalid or expired token")
			case errors.Is(err, service.ErrMissingUserData):
				newErrorResponse(c, http.StatusBadRequest, "missing user data")
			default:
				newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
			}
			return
		}
		wrapOkJSON(c, map[string]interface{}{
			"user":         user,
			"access_token": accessToken,
		})

	default:
		newErrorResponse(c, http.StatusBadRequest, "unknown action")
	}
}

func (h *Handler) GetMe(c *gin.Context) {
	v, ok := c.Get(middleware.TelegramIdCtx)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	telegramID, ok := v.(int64)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.service.Authorization.GetUserByTelegramId(telegramID)
	if err != nil {
		newErrorResponse(c, http.StatusUnauthorized, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"user": user,
	})
}
