package handlers

import (
	"errors"
	"net/http"

	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/task"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/consite-dev/consite-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	service *application.TaskService
	cfg     *config.Config
}

func NewTaskHandler(service *application.TaskService, cfg *config.Config) *TaskHandler {
	return &TaskHandler{service: service, cfg: cfg}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	tasks, err := h.service.ListTasks(claims.Role, claims.UserID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input task.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide all required fields"})
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.service.CreateTask(caller, input)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid task id"})
		return
	}

	var input task.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.service.UpdateTask(caller, id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrNotTaskAssignee):
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrFieldNotAllowed), errors.Is(err, task.ErrVerifyNotAllowed):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, task.ErrInvalidTransition), errors.Is(err, task.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			internalError(c, h.cfg, err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
