package application

import (
	"github.com/consite-dev/consite-go/internal/api/middleware"
	"github.com/consite-dev/consite-go/internal/config"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/pkg/googleauth"
	"go.uber.org/zap"
)

type Services struct {
	User         *UserService
	Task         *TaskService
	Invoice      *InvoiceService
	Blueprint    *BlueprintService
	Notification *NotificationService
	Analytics    *AnalyticsService
}

func New(repos *repository.Repos, cfg *config.Config, jwt *middleware.JWT, google googleauth.Verifier, log *zap.Logger) *Services {
	notifications := NewNotificationService(repos, log)
	return &Services{
		User:         NewUserService(repos, cfg, jwt, google),
		Task:         NewTaskService(repos, notifications),
		Invoice:      NewInvoiceService(repos),
		Blueprint:    NewBlueprintService(repos),
		Notification: notifications,
		Analytics:    NewAnalyticsService(repos),
	}
}
