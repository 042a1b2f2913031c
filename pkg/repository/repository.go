package repository

import (
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"dashboard_back/models"
)

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrTokenConsumed — одноразовый токен уже использован, просрочен или не существует.
	ErrTokenConsumed = errors.New("auth token consumed or expired")
)

type Authorization interface {
	GetUserByTelegramId(telegramID int64) (models.User, error)
	CreateUser(user models.User) (int64, error)
	UpdateUserProfile(user models.User) error

	CreateAuthToken(token models.AuthToken) error
	// ConsumeAuthToken атомарно помечает токен использованным.
	// Ровно один из конкурентных вызовов получает nil, остальные — ErrTokenConsumed.
	ConsumeAuthToken(token string, now time.Time) error
}

type Task interface {
	CreateTask(task models.Task) (int64, error)
	GetTasks(userID int64) ([]models.Task, error)
	GetTaskById(userID, taskID int64) (models.Task, error)
	UpdateTask(userID, taskID int64, input models.UpdateTaskInput) error
	DeleteTask(userID, taskID int64) error
}

type Notification interface {
	CreateNotification(n models.Notification) (int64, error)
	GetNotifications(userID int64) ([]models.Notification, error)
	MarkNotificationRead(userID, notificationID int64) error
}

type Repository struct {
	Authorization
	Task
	Notification
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Authorization: NewAuthPostgres(db),
		Task:          NewTaskPostgres(db),
		Notification:  NewNotificationPostgres(db),
	}
}
