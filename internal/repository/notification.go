package repository

import (
	"github.com/consite-dev/consite-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	CreateNotification(n *notification.Notification) error
	ListByRecipient(recipientID uint, q notification.ListQuery) ([]notification.Notification, int64, error)
	CountUnread(recipientID uint) (int64, error)
	// MarkRead and DeleteOwned report the number of rows touched; zero means the
	// notification does not exist or belongs to someone else.
	MarkRead(id, recipientID uint) (int64, error)
	MarkAllRead(recipientID uint) error
	DeleteOwned(id, recipientID uint) (int64, error)
	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) CreateNotification(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) ListByRecipient(recipientID uint, q notification.ListQuery) ([]notification.Notification, int64, error) {
	var items []notification.Notification
	var total int64

	query := r.db.Model(&notification.Notification{}).Where("recipient_id = ?", recipientID)
	if q.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (q.Page - 1) * q.Limit
	err := query.
		Preload("Sender").Preload("RelatedTask").
		Order("created_at desc").
		Offset(offset).Limit(q.Limit).
		Find(&items).Error
	return items, total, err
}

func (r *DBNotificationRepo) CountUnread(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&notification.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

func (r *DBNotificationRepo) MarkRead(id, recipientID uint) (int64, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) MarkAllRead(recipientID uint) error {
	return r.db.Model(&notification.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}

func (r *DBNotificationRepo) DeleteOwned(id, recipientID uint) (int64, error) {
	res := r.db.Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&notification.Notification{})
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	if tx == nil {
		return r
	}
	return &DBNotificationRepo{db: tx}
}
