package service

import (
	"time"

	"dashboard_back/models"
	"dashboard_back/pkg/repository"
	"dashboard_back/pkg/telegram"
)

type AuthConfig struct {
	BotToken    string
	JWTSecret   string
	SessionTTL  time.Duration // 24h
	BotTokenTTL time.Duration // 10m
}

type Authorization interface {
	LoginWithInitData(initData string) (models.User, string, error)
	GenerateBotToken() (models.AuthToken, error)
	VerifyBotToken(req models.BotAuthRequest) (models.User, string, error)
	GetUserByTelegramId(telegramID int64) (models.User, error)
}

type Task interface {
	CreateTask(userID int64, input models.CreateTaskInput) (int64, error)
	GetTasks(userID int64) ([]models.Task, error)
	GetTaskById(userID, taskID int64) (models.Task, error)
	UpdateTask(userID, taskID int64, input models.UpdateTaskInput) error
	DeleteTask(userID, taskID int64) error
}

type Notification interface {
	GetNotifications(userID int64) ([]models.Notification, error)
	MarkNotificationRead(userID, notificationID int64) error
}

type Service struct {
	Authorization
	Task
	Notification
}

func NewService(repos *repository.Repository, cfg AuthConfig, bot *telegram.BotClient) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Authorization, repos.Notification, cfg, bot),
		Task:          NewTaskService(repos.Task),
		Notification:  NewNotificationService(repos.Notification),
	}
}
