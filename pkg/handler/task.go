package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"dashboard_back/models"
	"dashboard_back/pkg/middleware"
	"dashboard_back/pkg/repository"
	"dashboard_back/pkg/service"
)

func (h *Handler) GetTasks(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	tasks, err := h.service.Task.GetTasks(userID)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"tasks": tasks,
	})
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input models.CreateTaskInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.Task.CreateTask(userID, input)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "cannot create task")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"id": id,
	})
}

func (h *Handler) GetTaskById(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid task id")
		return
	}

	task, err := h.service.Task.GetTaskById(userID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "task not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"task": task,
	})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid task id")
		return
	}

	var input models.UpdateTaskInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Task.UpdateTask(userID, taskID, input); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			newErrorResponse(c, http.StatusNotFound, "task not found")
		case errors.Is(err, service.ErrBadTaskStatus):
			newErrorResponse(c, http.StatusBadRequest, "unknown task status")
		default:
			newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		}
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"status": "ok",
	})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := middleware.UserIdFromContext(c)
	if !ok {
		newErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.service.Task.DeleteTask(userID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "task not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"status": "ok",
	})
}
