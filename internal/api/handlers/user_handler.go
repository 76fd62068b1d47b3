package handlers

import (
	"errors"
	"net/http"

	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/consite-dev/consite-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users     *application.UserService
	analytics *application.AnalyticsService
	cfg       *config.Config
}

func NewUserHandler(users *application.UserService, analytics *application.AnalyticsService, cfg *config.Config) *UserHandler {
	return &UserHandler{users: users, analytics: analytics, cfg: cfg}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	page, limit := utils.ParsePaging(c, 10)
	q := user.ListUsersQuery{
		Role:   c.Query("role"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	users, total, err := h.users.ListUsers(q)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, response.PagedResponse{
		Data:       users,
		Pagination: response.NewPagination(page, limit, total),
	})
}

func (h *UserHandler) GetWorkerAnalytics(c *gin.Context) {
	stats, err := h.analytics.Analytics()
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) GetWorkerByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid worker ID"})
		return
	}

	detail, err := h.analytics.WorkerDetail(id)
	if err != nil {
		if errors.Is(err, application.ErrWorkerNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Worker not found"})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *UserHandler) AddWorker(c *gin.Context) {
	var input user.AddWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide name, email, and daily wage"})
		return
	}

	created, err := h.users.AddWorker(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: "A user with this email already exists"})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: created.Profile()})
}
