package handlers

import (
	"errors"
	"net/http"

	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/domain/user"
	"github.com/consite-dev/consite-go/pkg/googleauth"
	"github.com/consite-dev/consite-go/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *application.UserService
	cfg     *config.Config
}

func NewAuthHandler(service *application.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{service: service, cfg: cfg}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var input user.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide name, email, and password"})
		return
	}

	usr, token, err := h.service.Signup(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusCreated, response.TokenResponse{Token: token, User: usr.Profile()})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide email and password"})
		return
	}

	usr, token, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, User: usr.Profile()})
}

// Register is the admin-only variant of signup: any role may be assigned and
// no session token is issued for the new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Please provide name, email, phone, and password"})
		return
	}

	usr, err := h.service.AdminRegister(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{Data: usr.Profile()})
}

func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var input user.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Google token is required"})
		return
	}

	usr, token, err := h.service.GoogleLogin(c.Request.Context(), input.Token)
	if err != nil {
		if errors.Is(err, googleauth.ErrNotConfigured) {
			resp := response.ErrorResponse{Error: "Google OAuth is not configured"}
			if !h.cfg.IsProduction() {
				resp.Detail = "set GOOGLE_CLIENT_ID in the environment"
			}
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		if errors.Is(err, application.ErrInvalidGoogleToken) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
		internalError(c, h.cfg, err)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, User: usr.Profile()})
}

func (h *AuthHandler) Me(c *gin.Context) {
	usr, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Not authorized"})
		return
	}
	c.JSON(http.StatusOK, usr.Profile())
}
