package handlers

import (
	"errors"
	"net/http"

	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/invoice"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/consite-dev/consite-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service *application.InvoiceService
	cfg     *config.Config
}

func NewInvoiceHandler(service *application.InvoiceService, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{service: service, cfg: cfg}
}

func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoices, err := h.service.ListInvoices(claims.Role, claims.UserID)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var input invoice.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide title, amount, and image"})
		return
	}

	callerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.service.CreateInvoice(callerID, input)
	if err != nil {
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid invoice id"})
		return
	}

	var input invoice.UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.service.UpdateStatus(id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, invoice.ErrInvalidStatus), errors.Is(err, invoice.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			internalError(c, h.cfg, err)
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}
