package handlers

import (
	"github.com/consite-dev/consite-go/internal/application"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth         *AuthHandler
	Task         *TaskHandler
	Invoice      *InvoiceHandler
	Blueprint    *BlueprintHandler
	Notification *NotificationHandler
	User         *UserHandler
	Router       *gin.Engine
}

func New(svc *application.Services, cfg *config.Config, router *gin.Engine) *Handlers {
	h := &Handlers{
		Auth:         NewAuthHandler(svc.User, cfg),
		Task:         NewTaskHandler(svc.Task, cfg),
		Invoice:      NewInvoiceHandler(svc.Invoice, cfg),
		Blueprint:    NewBlueprintHandler(svc.Blueprint, cfg),
		Notification: NewNotificationHandler(svc.Notification, cfg),
		User:         NewUserHandler(svc.User, svc.Analytics, cfg),
		Router:       router,
	}
	return h
}
