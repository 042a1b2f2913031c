package service

import (
	"dashboard_back/models"
	"dashboard_back/pkg/repository"
)

type NotificationService struct {
	repos repository.Notification
}

func NewNotificationService(repos repository.Notification) *NotificationService {
	return &NotificationService{
		repos: repos,
	}
}

func (s *NotificationService) GetNotifications(userID int64) ([]models.Notification, error) {
	return s.repos.GetNotifications(userID)
}

func (s *NotificationService) MarkNotificationRead(userID, notificationID int64) error {
	return s.repos.MarkNotificationRead(userID, notificationID)
}
