package handlers

import (
	"net/http"

	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// internalError writes a 500 with a generic message. Diagnostic detail is
// echoed only outside production.
func internalError(c *gin.Context, cfg *config.Config, err error) {
	resp := response.ErrorResponse{Error: "internal server error"}
	if !cfg.IsProduction() {
		resp.Detail = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
