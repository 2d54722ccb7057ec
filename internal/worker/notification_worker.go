package worker

import (
	"github.com/jontropati/storefront/internal/service"
)

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
