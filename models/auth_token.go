package models

import "time"

type AuthToken struct {
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	Used      bool      `json:"-" db:"used"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

type LoginRequest struct {
	InitData string `json:"initData" binding:"required"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type BotAuthRequest struct {
	Action     string `json:"action" binding:"required"`
	Token      string `json:"token"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}
