package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "todolist-api.com/todolist-api/internal/data_models"
	apperrors "todolist-api.com/todolist-api/internal/errors"
	model "todolist-api.com/todolist-api/internal/models"
	"todolist-api.com/todolist-api/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var task model.Task
	if err := c.Bind(&task); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to create task: "+err.Error()))
	}

	created, err := h.taskService.SaveTask(c.Request().Context(), &task)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to create task: "+err.Error()))
	}

	return c.JSON(http.StatusOK, dto.Success("Task created successfully", created))
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.GetAllTasks(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to retrieve tasks: "+err.Error()))
	}

	return c.JSON(http.StatusOK, dto.Success("Tasks retrieved successfully", tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTaskByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to retrieve task: "+err.Error()))
	}
	if task == nil {
		return c.JSON(http.StatusNotFound, dto.Failure("Task not found"))
	}

	return c.JSON(http.StatusOK, dto.Success("Task retrieved successfully", task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var details model.Task
	if err := c.Bind(&details); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to update task: "+err.Error()))
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &details)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, dto.Failure("Task not found"))
		}
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to update task: "+err.Error()))
	}

	return c.JSON(http.StatusOK, dto.Success("Task updated successfully", task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, dto.Failure("Task not found"))
		}
		return c.JSON(http.StatusInternalServerError, dto.Failure("Failed to delete task: "+err.Error()))
	}

	return c.JSON(http.StatusOK, dto.Success("Task deleted successfully", nil))
}

// parseTaskID rejects a non-integer path segment before the service is
// ever called; the 400 comes straight from echo, not the envelope.
func parseTaskID(c echo.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(apperrors.ErrInvalidTaskID.StatusCode, apperrors.ErrInvalidTaskID.Message)
	}
	return int32(id), nil
}
