package handlers

import (
	"net/http"

	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/blueprint"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/consite-dev/consite-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type BlueprintHandler struct {
	service *application.BlueprintService
	cfg     *config.Config
}

func NewBlueprintHandler(service *application.BlueprintService, cfg *config.Config) *BlueprintHandler {
	return &BlueprintHandler{service: service, cfg: cfg}
}

func (h *BlueprintHandler) GetBlueprints(c *gin.Context) {
	var projectID *uint
	if id, err := utils.ParseQueryUintParam(c, "projectId"); err == nil {
		projectID = &id
	}

	blueprints, err := h.service.ListBlueprints(projectID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, blueprints)
}

func (h *BlueprintHandler) Upload(c *gin.Context) {
	var input blueprint.UploadBlueprintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide title, project, and image"})
		return
	}

	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.service.Upload(callerID, input)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}
