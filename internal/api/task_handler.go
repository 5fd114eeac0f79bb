package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/COMS4153EcommerceProject/Order-Service/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTaskStatus handles GET /tasks/:id/status
func (h *TaskHandler) GetTaskStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return validationFailed(c, err.Error())
	}

	task, err := h.taskService.GetTaskStatus(id)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}
