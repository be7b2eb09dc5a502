// api/util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/flexpass/api/logging"
)

type NotificationService struct {
	// A message queue client or email provider client would live here.
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendPasswordReset dispatches a password-reset message for the given
// address. The actual delivery is handled by the identity provider; this
// service only hands the request off.
func (n *NotificationService) SendPasswordReset(ctx context.Context, email string) error {
	logger.Info("Dispatching password reset",
		zap.String("recipient", email))
	return nil
}

// NotifyAdmins alerts system administrators, e.g. on repeated denials.
func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
