package models

import "time"

type Notification struct {
	Id        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateNotificationInput struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}
