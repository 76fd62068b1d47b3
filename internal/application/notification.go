package application

import (
	"errors"

	"github.com/consite-dev/consite-go/internal/domain/notification"
	"github.com/consite-dev/consite-go/internal/repository"
	"go.uber.org/zap"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	Repos *repository.Repos
	log   *zap.Logger
}

func NewNotificationService(repos *repository.Repos, log *zap.Logger) *NotificationService {
	return &NotificationService{Repos: repos, log: log}
}

// Create persists a notification. It is internal only; there is no public
// endpoint that creates notifications.
func (s *NotificationService) Create(recipientID, senderID uint, typ notification.Type, title, message string, relatedTaskID *uint, priority notification.Priority) error {
	if !notification.ValidType(typ) {
		return notification.ErrInvalidType
	}
	if len(title) > notification.MaxTitleLen {
		return notification.ErrTitleTooLong
	}
	if len(message) > notification.MaxMessageLen {
		return notification.ErrMessageTooLong
	}
	if priority == "" {
		priority = notification.PriorityMedium
	}

	n := notification.Notification{
		RecipientID:   recipientID,
		SenderID:      senderID,
		Type:          typ,
		Title:         title,
		Message:       message,
		RelatedTaskID: relatedTaskID,
		Priority:      priority,
	}
	return s.Repos.Notification.CreateNotification(&n)
}

// Notify attempts Create exactly once and absorbs any failure, logging it
// instead. A secondary effect must never block the primary operation.
func (s *NotificationService) Notify(recipientID, senderID uint, typ notification.Type, title, message string, relatedTaskID *uint, priority notification.Priority) {
	if err := s.Create(recipientID, senderID, typ, title, message, relatedTaskID, priority); err != nil {
		s.log.Warn("notification dispatch failed",
			zap.Uint("recipient", recipientID),
			zap.String("type", string(typ)),
			zap.Error(err),
		)
	}
}

type NotificationPage struct {
	Items       []notification.Notification
	Total       int64
	UnreadCount int64
}

func (s *NotificationService) List(recipientID uint, q notification.ListQuery) (NotificationPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}

	items, total, err := s.Repos.Notification.ListByRecipient(recipientID, q)
	if err != nil {
		return NotificationPage{}, err
	}

	// Unread count is live and independent of the unreadOnly page filter.
	unread, err := s.Repos.Notification.CountUnread(recipientID)
	if err != nil {
		return NotificationPage{}, err
	}

	return NotificationPage{Items: items, Total: total, UnreadCount: unread}, nil
}

func (s *NotificationService) MarkRead(id, recipientID uint) error {
	rows, err := s.Repos.Notification.MarkRead(id, recipientID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	return s.Repos.Notification.MarkAllRead(recipientID)
}

func (s *NotificationService) Delete(id, recipientID uint) error {
	rows, err := s.Repos.Notification.DeleteOwned(id, recipientID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
