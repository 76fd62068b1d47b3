package application

import (
	"strings"
	"testing"

	"github.com/consite-dev/consite-go/internal/domain/notification"
	"github.com/consite-dev/consite-go/internal/repository"
	"github.com/consite-dev/consite-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// --------------------- Setup ---------------------
func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotif := mock.NewMockNotificationRepo(ctrl)
	repos := &repository.Repos{
		Notification: mockNotif,
	}
	svc := NewNotificationService(repos, zap.NewNop())
	return svc, mockNotif
}

// --------------------- Create ---------------------
func TestCreateNotification_RejectsUnknownType(t *testing.T) {
	svc, _ := setupNotificationServiceMocks(t)

	err := svc.Create(1, 2, "carrier_pigeon", "Title", "Message", nil, notification.PriorityLow)
	assert.Equal(t, notification.ErrInvalidType, err)
}

func TestCreateNotification_RejectsOversizedTitleAndMessage(t *testing.T) {
	svc, _ := setupNotificationServiceMocks(t)

	longTitle := strings.Repeat("t", notification.MaxTitleLen+1)
	err := svc.Create(1, 2, notification.TypeSystem, longTitle, "Message", nil, "")
	assert.Equal(t, notification.ErrTitleTooLong, err)

	longMessage := strings.Repeat("m", notification.MaxMessageLen+1)
	err = svc.Create(1, 2, notification.TypeSystem, "Title", longMessage, nil, "")
	assert.Equal(t, notification.ErrMessageTooLong, err)
}

func TestCreateNotification_DefaultsPriorityMedium(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		assert.Equal(t, notification.PriorityMedium, n.Priority)
		return nil
	})

	err := svc.Create(1, 2, notification.TypeSystem, "Title", "Message", nil, "")
	assert.NoError(t, err)
}

// --------------------- List ---------------------
func TestListNotifications_UnreadCountIgnoresFilter(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	q := notification.ListQuery{Page: 1, Limit: 20, UnreadOnly: true}
	mockNotif.EXPECT().ListByRecipient(uint(7), q).Return([]notification.Notification{{ID: 1}}, int64(1), nil)
	mockNotif.EXPECT().CountUnread(uint(7)).Return(int64(4), nil)

	page, err := svc.List(7, q)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, int64(4), page.UnreadCount)
}

func TestListNotifications_DefaultsPaging(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().
		ListByRecipient(uint(7), notification.ListQuery{Page: 1, Limit: 20}).
		Return(nil, int64(0), nil)
	mockNotif.EXPECT().CountUnread(uint(7)).Return(int64(0), nil)

	_, err := svc.List(7, notification.ListQuery{})
	assert.NoError(t, err)
}

// --------------------- MarkRead / Delete ---------------------
func TestMarkRead_ForeignNotificationIsNotFound(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().MarkRead(uint(3), uint(7)).Return(int64(0), nil)

	err := svc.MarkRead(3, 7)
	assert.Equal(t, ErrNotificationNotFound, err)
}

func TestMarkRead_Success(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().MarkRead(uint(3), uint(7)).Return(int64(1), nil)

	assert.NoError(t, svc.MarkRead(3, 7))
}

func TestDelete_ForeignNotificationIsNotFound(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().DeleteOwned(uint(3), uint(7)).Return(int64(0), nil)

	err := svc.Delete(3, 7)
	assert.Equal(t, ErrNotificationNotFound, err)
}

func TestMarkAllRead(t *testing.T) {
	svc, mockNotif := setupNotificationServiceMocks(t)

	mockNotif.EXPECT().MarkAllRead(uint(7)).Return(nil)

	assert.NoError(t, svc.MarkAllRead(7))
}
