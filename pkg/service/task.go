package service

import (
	"github.com/pkg/errors"

	"dashboard_back/models"
	"dashboard_back/pkg/repository"
)

var ErrBadTaskStatus = errors.New("unknown task status")

type TaskService struct {
	repos repository.Task
}

func NewTaskService(repos repository.Task) *TaskService {
	return &TaskService{
		repos: repos,
	}
}

func (s *TaskService) CreateTask(userID int64, input models.CreateTaskInput) (int64, error) {
	task := models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      "new",
		DueDate:     input.DueDate,
	}
	return s.repos.CreateTask(task)
}

func (s *TaskService) GetTasks(userID int64) ([]models.Task, error) {
	return s.repos.GetTasks(userID)
}

func (s *TaskService) GetTaskById(userID, taskID int64) (models.Task, error) {
	return s.repos.GetTaskById(userID, taskID)
}

func (s *TaskService) UpdateTask(userID, taskID int64, input models.UpdateTaskInput) error {
	if input.Status != nil {
		switch *input.Status {
		case "new", "in_progress", "done":
		default:
			return ErrBadTaskStatus
		}
	}
	return s.repos.UpdateTask(userID, taskID, input)
}

func (s *TaskService) DeleteTask(userID, taskID int64) error {
	return s.repos.DeleteTask(userID, taskID)
}
