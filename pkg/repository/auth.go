package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"dashboard_back/models"
)

type AuthPostgres struct {
	db *sqlx.DB
}

func NewAuthPostgres(db *sqlx.DB) *AuthPostgres {
	return &AuthPostgres{db: db}
}

func (r *AuthPostgres) GetUserByTelegramId(telegramID int64) (models.User, error) {
	var user models.User
	query := `SELECT id, telegram_id, username, first_name, last_name, full_name, role, created_at
	          FROM users WHERE telegram_id = $1`
	err := r.db.Get(&user, query, telegramID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (r *AuthPostgres) CreateUser(user models.User) (int64, error) {
	var id int64
	query := `
        INSERT INTO users (telegram_id, username, first_name, last_name, full_name, role)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(
		query,
		user.TelegramID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.FullName,
		user.Role,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "create user")
	}
	return id, nil
}

func (r *AuthPostgres) UpdateUserProfile(user models.User) error {
	query := `
        UPDATE users
        SET username = $1, first_name = $2, last_name = $3, full_name = $4
        WHERE telegram_id = $5
    `
	res, err := r.db.Exec(query, user.Username, user.FirstName, user.LastName, user.FullName, user.TelegramID)
	if err != nil {
		return errors.Wrap(err, "update user profile")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update user profile")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AuthPostgres) CreateAuthToken(token models.AuthToken) error {
	query := `
        INSERT INTO auth_tokens (token, expires_at, used)
        VALUES ($1, $2, FALSE)
    `
	_, err := r.db.Exec(query, token.Token, token.ExpiresAt)
	if err != nil {
		return errors.Wrap(err, "create auth token")
	}
	return nil
}

// ConsumeAuthToken — одиночный условный UPDATE, а не select+update:
// иначе два конкурентных verify могли бы пройти по одному токену.
func (r *AuthPostgres) ConsumeAuthToken(token string, now time.Time) error {
	query := `
        UPDATE auth_tokens
        SET used = TRUE
        WHERE token = $1 AND used = FALSE AND expires_at > $2
        RETURNING token
    `
	var consumed string
	err := r.db.QueryRow(query, token, now).Scan(&consumed)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTokenConsumed
	}
	if err != nil {
		return errors.Wrap(err, "consume auth token")
	}
	return nil
}
