package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"dashboard_back/models"
)

type TaskPostgres struct {
	db *sqlx.DB
}

func NewTaskPostgres(db *sqlx.DB) *TaskPostgres {
	return &TaskPostgres{db: db}
}

func (r *TaskPostgres) CreateTask(task models.Task) (int64, error) {
	var id int64
	query := `
        INSERT INTO tasks (user_id, title, description, status, due_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(query, task.UserID, task.Title, task.Description, task.Status, task.DueDate).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "create task")
	}
	return id, nil
}

func (r *TaskPostgres) GetTasks(userID int64) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	query := `
        SELECT id, user_id, title, description, status, due_date, created_at, updated_at
        FROM tasks
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	if err := r.db.Select(&tasks, query, userID); err != nil {
		return nil, errors.Wrap(err, "get tasks")
	}
	return tasks, nil
}

func (r *TaskPostgres) GetTaskById(userID, taskID int64) (models.Task, error) {
	var task models.Task
	query := `
        SELECT id, user_id, title, description, status, due_date, created_at, updated_at
        FROM tasks
        WHERE id = $1 AND user_id = $2
    `
	err := r.db.Get(&task, query, taskID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrNotFound
	}
	if err != nil {
		return models.Task{}, errors.Wrap(err, "get task by id")
	}
	return task, nil
}

func (r *TaskPostgres) UpdateTask(userID, taskID int64, input models.UpdateTaskInput) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if input.Title != nil {
		setValues = append(setValues, fmt.Sprintf("title = $%d", argID))
		args = append(args, *input.Title)
		argID++
	}
	if input.Description != nil {
		setValues = append(setValues, fmt.Sprintf("description = $%d", argID))
		args = append(args, *input.Description)
		argID++
	}
	if input.Status != nil {
		setValues = append(setValues, fmt.Sprintf("status = $%d", argID))
		args = append(args, *input.Status)
		argID++
	}
	if input.DueDate != nil {
		setValues = append(setValues, fmt.Sprintf("due_date = $%d", argID))
		args = append(args, *input.DueDate)
		argID++
	}
	setValues = append(setValues, "updated_at = now()")

	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d`,
		strings.Join(setValues, ", "), argID, argID+1)
	args = append(args, taskID, userID)

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return errors.Wrap(err, "update task")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "update task")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskPostgres) DeleteTask(userID, taskID int64) error {
	res, err := r.db.Exec(`DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return errors.Wrap(err, "delete task")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete task")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
