package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"dashboard_back/models"
)

type NotificationPostgres struct {
	db *sqlx.DB
}

func NewNotificationPostgres(db *sqlx.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

func (r *NotificationPostgres) CreateNotification(n models.Notification) (int64, error) {
	var id int64
	query := `
        INSERT INTO notifications (user_id, title, body, is_read)
        VALUES ($1, $2, $3, FALSE)
        RETURNING id
    `
	err := r.db.QueryRow(query, n.UserID, n.Title, n.Body).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "create notification")
	}
	return id, nil
}

func (r *NotificationPostgres) GetNotifications(userID int64) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	query := `
        SELECT id, user_id, title, body, is_read, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	if err := r.db.Select(&notifications, query, userID); err != nil {
		return nil, errors.Wrap(err, "get notifications")
	}
	return notifications, nil
}

func (r *NotificationPostgres) MarkNotificationRead(userID, notificationID int64) error {
	res, err := r.db.Exec(`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return errors.Wrap(err, "mark notification read")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "mark notification read")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
