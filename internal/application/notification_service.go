package application

import (
	"sort"

	"go.uber.org/zap"

	"github.com/bnema/toll-backoffice/internal/domain"
)

// NotificationService projects and clears owner notifications. Recording
// happens inside the owner aggregate as a side effect of mutations.
type NotificationService struct {
	log *zap.Logger
}

func NewNotificationService(log *zap.Logger) *NotificationService {
	return &NotificationService{log: log}
}

// For returns the owner's notifications newest first.
func (s *NotificationService) For(owner *domain.Owner) []domain.Notification {
	notifications := owner.Notifications()
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].At.After(notifications[j].At)
	})
	return notifications
}

// Clear removes every notification; reports whether any existed.
func (s *NotificationService) Clear(owner *domain.Owner) bool {
	cleared := owner.ClearNotifications()
	if cleared {
		s.log.Info("notifications cleared", zap.String("owner_id", owner.ID))
	}
	return cleared
}
